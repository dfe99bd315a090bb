package internal

import (
	"github.com/azurtoy/voidstation/internal/identity"
	"github.com/azurtoy/voidstation/internal/mail"
)

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config   *Config
	provider identity.Provider
	sender   mail.Sender
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithIdentityProvider overrides the identity provider client.
// Used by tests to substitute a fake.
func WithIdentityProvider(p identity.Provider) Option {
	return func(a *application) {
		a.provider = p
	}
}

// WithMailSender overrides the outbound mail sender.
func WithMailSender(s mail.Sender) Option {
	return func(a *application) {
		a.sender = s
	}
}
