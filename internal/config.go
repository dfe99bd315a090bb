// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config represents the application configuration.
//
// Secrets (site password, unlock code, API keys) are carried in this struct
// and injected at startup; nothing below the entry point reads the process
// environment directly.
type Config struct {
	App      ApplicationConfig `yaml:"app"`
	SQLite   SQLiteConfig      `yaml:"sqlite"`
	Gate     GateConfig        `yaml:"gate"`
	Identity IdentityConfig    `yaml:"identity"`
	Mail     MailConfig        `yaml:"mail"`
	Signup   SignupConfig      `yaml:"signup"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.SQLite.Validate(); err != nil {
		return err
	}
	if err := c.Gate.Validate(); err != nil {
		return err
	}
	if err := c.Identity.Validate(); err != nil {
		return err
	}
	if err := c.Mail.Validate(); err != nil {
		return err
	}
	return c.Signup.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	HTTP     HTTPConfig `yaml:"http"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return c.HTTP.Validate()
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// SQLiteConfig holds SQLite database configuration.
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the SQLite configuration.
func (c *SQLiteConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// GateConfig holds the access-gate secrets and cookie policy.
//
// SitePassword is the single shared secret guarding the whole study area.
// UnlockCode is the second shared secret that flips the per-user physics
// unlock flag. SecureCookies should be true in production so the auth
// cookie is never sent over plaintext.
type GateConfig struct {
	SitePassword  string `yaml:"site_password"`
	UnlockCode    string `yaml:"unlock_code"`
	CookieTTLDays int    `yaml:"cookie_ttl_days"`
	SecureCookies bool   `yaml:"secure_cookies"`
}

// CookieTTL returns the auth cookie lifetime.
func (c *GateConfig) CookieTTL() time.Duration {
	return time.Duration(c.CookieTTLDays) * 24 * time.Hour
}

// Validate validates the gate configuration.
func (c *GateConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.SitePassword, validation.Required),
		validation.Field(&c.UnlockCode, validation.Required),
		validation.Field(&c.CookieTTLDays, validation.Required, validation.Min(1)),
	)
}

// IdentityConfig holds the identity-provider client configuration.
type IdentityConfig struct {
	BaseURL           string `yaml:"base_url"`
	APIKey            string `yaml:"api_key"`
	TimeoutSeconds    int    `yaml:"timeout_seconds"`
	RefreshWithinSecs int    `yaml:"refresh_within_seconds"`
}

// Timeout returns the per-call budget for identity-provider requests.
func (c *IdentityConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RefreshWithin returns how close to expiry a session must be before the
// refresh middleware renews it.
func (c *IdentityConfig) RefreshWithin() time.Duration {
	return time.Duration(c.RefreshWithinSecs) * time.Second
}

// Validate validates the identity configuration.
func (c *IdentityConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, validation.Required),
		validation.Field(&c.APIKey, validation.Required),
	)
}

// MailConfig holds the outbound transactional email configuration.
// To is the fixed recipient of feedback signals (the site owner).
type MailConfig struct {
	BaseURL        string `yaml:"base_url"`
	APIKey         string `yaml:"api_key"`
	From           string `yaml:"from"`
	To             string `yaml:"to"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the per-call budget for outbound mail requests.
func (c *MailConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Validate validates the mail configuration.
func (c *MailConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.APIKey, validation.Required),
		validation.Field(&c.From, validation.Required),
		validation.Field(&c.To, validation.Required),
	)
}

// SignupConfig holds signup form validation rules.
type SignupConfig struct {
	EmailDomain string `yaml:"email_domain"`
	NicknameMin int    `yaml:"nickname_min"`
	NicknameMax int    `yaml:"nickname_max"`
}

// Validate validates the signup configuration.
func (c *SignupConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.EmailDomain, validation.Required),
	); err != nil {
		return err
	}
	if c.NicknameMin < 1 || c.NicknameMax < c.NicknameMin {
		return fmt.Errorf("signup: invalid nickname bounds [%d, %d]", c.NicknameMin, c.NicknameMax)
	}
	return nil
}

// NewDefaultConfig returns a new Config with sensible default values.
// Secrets have no defaults and must come from the config file or environment.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			HTTP: HTTPConfig{
				Port: 8080,
			},
		},
		SQLite: SQLiteConfig{
			Path: "./voidstation.db",
		},
		Gate: GateConfig{
			CookieTTLDays: 7,
		},
		Identity: IdentityConfig{
			TimeoutSeconds:    10,
			RefreshWithinSecs: 300,
		},
		Mail: MailConfig{
			BaseURL:        "https://api.resend.com",
			TimeoutSeconds: 10,
		},
		Signup: SignupConfig{
			EmailDomain: "lakeheadu.ca",
			NicknameMin: 2,
			NicknameMax: 24,
		},
	}
}
