// Package web assembles the HTTP surface of the donation site: module
// routes, static assets, and the server lifecycle.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/buymeapencil/web/internal/platform/timeouts"
	"github.com/buymeapencil/web/internal/web/backend"
	"github.com/buymeapencil/web/internal/web/module"
	"github.com/buymeapencil/web/internal/web/modules/auth"
	"github.com/buymeapencil/web/internal/web/modules/donate"
	"github.com/buymeapencil/web/internal/web/modules/panel"
	"github.com/buymeapencil/web/internal/web/modules/public"
	"github.com/buymeapencil/web/internal/web/platform/httpx"
	"github.com/buymeapencil/web/internal/web/platform/requestmeta"
	"github.com/buymeapencil/web/internal/web/routepath"
	"github.com/buymeapencil/web/internal/web/session"
	"github.com/buymeapencil/web/internal/web/static"
)

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr string
	// AppBaseURL overrides the request-derived origin when building
	// shareable donation links. Empty means derive per request.
	AppBaseURL string
	// TrustForwardedProto honors X-Forwarded-Proto when deciding cookie
	// security, for deployments behind a TLS-terminating proxy.
	TrustForwardedProto bool
}

// NewHandler builds the full route table over the backend client and
// session manager.
func NewHandler(config Config, client *backend.Client, sessions *session.Manager) (http.Handler, error) {
	if client == nil {
		return nil, errors.New("backend client is required")
	}
	if sessions == nil {
		return nil, errors.New("session manager is required")
	}
	policy := requestmeta.SchemePolicy{TrustForwardedProto: config.TrustForwardedProto}

	mux := http.NewServeMux()
	mux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServerFS(static.FS)))

	mods := []module.Module{
		public.New(client),
		auth.New(client, sessions, policy),
		panel.New(client, sessions, policy, config.AppBaseURL),
		donate.New(client),
	}
	for _, mod := range mods {
		mount, err := mod.Mount()
		if err != nil {
			return nil, fmt.Errorf("mount %s module: %w", mod.ID(), err)
		}
		for _, prefix := range mount.Prefixes {
			mux.Handle(prefix, mount.Handler)
		}
	}

	return httpx.Chain(mux, httpx.RequestID(), httpx.RecoverPanic()), nil
}

// Server hosts the web HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewServer builds a server around the assembled handler.
func NewServer(config Config, client *backend.Client, sessions *session.Manager) (*Server, error) {
	handler, err := NewHandler(config, client, sessions)
	if err != nil {
		return nil, err
	}
	return &Server{
		httpAddr: config.HTTPAddr,
		httpServer: &http.Server{
			Addr:              config.HTTPAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
