package mail

import (
	"fmt"
	"html"
	"time"
)

// stationZone is the station's local timezone, stamped on every signal
// report. Falls back to UTC if tzdata is unavailable.
var stationZone = func() *time.Location {
	loc, err := time.LoadLocation("America/Toronto")
	if err != nil {
		return time.UTC
	}
	return loc
}()

const feedbackSubject = "[Void Space Plan] Signal Received from Thunder Bay Station"

// FeedbackMessage builds the signal-report email for a feedback form
// submission. senderEmail may be blank; freeform text is escaped before it
// lands in the HTML body.
func FeedbackMessage(from, to, senderEmail, text string) Message {
	if senderEmail == "" {
		senderEmail = "Unknown"
	}
	if text == "" {
		text = "No message provided"
	}
	localTime := time.Now().In(stationZone).Format("2006-01-02, 3:04:05 p.m.")

	body := fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <h3 style="color: #2c3e50; border-bottom: 1px solid #eee; padding-bottom: 10px; font-size: 18px; margin: 0 0 15px 0;">Signal Report</h3>
  <p style="font-size: 14px;"><strong>From:</strong> %s</p>
  <div style="background: #f4f4f4; padding: 15px; border-left: 4px solid #3498db; margin: 15px 0;">
    <p style="margin: 0; font-weight: bold; font-size: 13px; color: #555;">MESSAGE CONTENT:</p>
    <p style="margin: 10px 0 0; white-space: pre-wrap;">%s</p>
  </div>
  <p style="font-size: 11px; color: #888;">
    Sent from Thunder Bay Station | Local Time: %s
  </p>
</div>`,
		html.EscapeString(senderEmail), html.EscapeString(text), localTime)

	return Message{
		From:    from,
		To:      to,
		Subject: feedbackSubject,
		HTML:    body,
	}
}
