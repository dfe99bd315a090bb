// Package mail sends outbound transactional email through a Resend-style
// HTTP API.
package mail

import "context"

// Message is one outbound email.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
	ReplyTo string
}

// Sender delivers messages and returns the provider's message id.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}
