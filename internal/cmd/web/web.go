// Package web bootstraps the browser-facing donation web service.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"

	platformconfig "github.com/buymeapencil/web/internal/platform/config"
	platformotel "github.com/buymeapencil/web/internal/platform/otel"
	"github.com/buymeapencil/web/internal/web"
	"github.com/buymeapencil/web/internal/web/backend"
	"github.com/buymeapencil/web/internal/web/platform/requestmeta"
	"github.com/buymeapencil/web/internal/web/session"
	"github.com/buymeapencil/web/internal/web/storage/sqlite"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr string `env:"PENCIL_WEB_HTTP_ADDR" envDefault:"localhost:3000"`
	// APIBaseURL is the external backend the site fronts.
	APIBaseURL string `env:"PENCIL_API_BASE_URL" envDefault:"http://localhost:3002"`
	// AppBaseURL overrides the request-derived origin in donation links.
	AppBaseURL string `env:"PENCIL_APP_BASE_URL"`
	// DBPath locates the SQLite session store.
	DBPath string `env:"PENCIL_WEB_DB_PATH" envDefault:"web-sessions.db"`
	// TrustForwardedProto honors X-Forwarded-Proto behind a TLS proxy.
	TrustForwardedProto bool `env:"PENCIL_WEB_TRUST_FORWARDED_PROTO"`
}

// ParseConfig loads configuration from the environment, then applies flag
// overrides.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformconfig.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.APIBaseURL, "api-base-url", cfg.APIBaseURL, "backend API base URL")
	fs.StringVar(&cfg.AppBaseURL, "app-base-url", cfg.AppBaseURL, "public base URL for donation links")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "session store SQLite path")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "trust X-Forwarded-Proto from the proxy")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server and blocks until the context ends.
func Run(ctx context.Context, cfg Config) error {
	shutdownTracing, err := platformotel.Setup(ctx, "web")
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Printf("shutdown tracing: %v", err)
		}
	}()

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close session store: %v", err)
		}
	}()

	policy := requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto}
	server, err := web.NewServer(web.Config{
		HTTPAddr:            cfg.HTTPAddr,
		AppBaseURL:          cfg.AppBaseURL,
		TrustForwardedProto: cfg.TrustForwardedProto,
	}, backend.New(cfg.APIBaseURL), session.NewManager(store, policy))
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}
