package identity

import (
	"testing"
	"time"
)

func TestSessionCookieRoundTrip(t *testing.T) {
	in := Session{
		AccessToken:  "access-abc",
		RefreshToken: "refresh-def",
		ExpiresAt:    time.Now().Add(time.Hour).Truncate(time.Second),
		User:         User{ID: "u1", Email: "a@lakeheadu.ca"},
	}

	out, err := DecodeSession(EncodeSession(in))
	if err != nil {
		t.Fatalf("DecodeSession: %v", err)
	}
	if out.AccessToken != in.AccessToken || out.RefreshToken != in.RefreshToken {
		t.Errorf("tokens changed: %+v", out)
	}
	if !out.ExpiresAt.Equal(in.ExpiresAt) {
		t.Errorf("expiry = %v, want %v", out.ExpiresAt, in.ExpiresAt)
	}
	if out.User != in.User {
		t.Errorf("user = %+v", out.User)
	}
}

func TestDecodeSessionGarbage(t *testing.T) {
	for _, v := range []string{"", "not-base64!!!", "bm90IGpzb24="} {
		if _, err := DecodeSession(v); err == nil {
			t.Errorf("DecodeSession(%q) should fail", v)
		}
	}
}

func TestExpiresWithin(t *testing.T) {
	s := Session{ExpiresAt: time.Now().Add(2 * time.Minute)}
	if !s.ExpiresWithin(5 * time.Minute) {
		t.Error("session expiring in 2m is within 5m")
	}
	if s.ExpiresWithin(time.Minute) {
		t.Error("session expiring in 2m is not within 1m")
	}
}
