package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/azurtoy/voidstation/internal/api"
	"github.com/azurtoy/voidstation/internal/gate"
	"github.com/azurtoy/voidstation/internal/identity"
	"github.com/azurtoy/voidstation/internal/mail"
	"github.com/azurtoy/voidstation/internal/profile"
)

// Run starts the application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("sqlite_path", cfg.SQLite.Path),
		slog.String("log_level", cfg.App.LogLevel.String()))

	// Initialize profile store.
	profiles, err := profile.Open(cfg.SQLite.Path)
	if err != nil {
		return fmt.Errorf("init profile store: %w", err)
	}
	defer profiles.Close()

	// Access gate.
	g, err := gate.New(gate.Config{
		SitePassword:  cfg.Gate.SitePassword,
		UnlockCode:    cfg.Gate.UnlockCode,
		CookieTTL:     cfg.Gate.CookieTTL(),
		SecureCookies: cfg.Gate.SecureCookies,
	}, profiles)
	if err != nil {
		return fmt.Errorf("init gate: %w", err)
	}

	// Identity provider client (tests inject a fake).
	provider := app.provider
	if provider == nil {
		provider, err = identity.NewClient(identity.ClientConfig{
			BaseURL: cfg.Identity.BaseURL,
			APIKey:  cfg.Identity.APIKey,
			Timeout: cfg.Identity.Timeout(),
		})
		if err != nil {
			return fmt.Errorf("init identity client: %w", err)
		}
	}

	// Outbound mail client.
	sender := app.sender
	if sender == nil {
		sender, err = mail.NewClient(mail.ClientConfig{
			BaseURL: cfg.Mail.BaseURL,
			APIKey:  cfg.Mail.APIKey,
			Timeout: cfg.Mail.Timeout(),
		})
		if err != nil {
			return fmt.Errorf("init mail client: %w", err)
		}
	}

	// Build API handler and router.
	h := api.NewHandler(g, profiles, provider, sender, api.SignupPolicy{
		EmailDomain: cfg.Signup.EmailDomain,
		NicknameMin: cfg.Signup.NicknameMin,
		NicknameMax: cfg.Signup.NicknameMax,
	}, cfg.Mail.From, cfg.Mail.To)
	apiRouter := api.NewRouter(h, g, provider, cfg.Identity.RefreshWithin(), logger)

	// Build chi router.
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoints (unauthenticated).
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Mount API routes under /api.
	r.Mount("/api", apiRouter)

	httpServer := &http.Server{
		Addr:    cfg.App.HTTP.Address(),
		Handler: r,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g2, gCtx := errgroup.WithContext(ctx)

	// Start HTTP server.
	g2.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g2.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g2.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}
