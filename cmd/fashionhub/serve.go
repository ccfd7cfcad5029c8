package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/Bahjat/fashionhub-e2e/internal/analyzer"
	"github.com/Bahjat/fashionhub-e2e/internal/platform/middleware"
)

const shutdownTimeout = 15 * time.Second

func (a *app) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve POST /links/check on PORT",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ln, err := net.Listen("tcp", ":"+a.cfg.Port)
			if err != nil {
				return err
			}
			return a.serve(cmd.Context(), ln)
		},
	}
}

func (a *app) handler() http.Handler {
	svc := analyzer.NewService(a.httpEngine(), a.logger)
	mux := http.NewServeMux()
	analyzer.NewTransport(svc, a.logger).RegisterRoutes(mux)
	return middleware.RequestID(middleware.Logging(a.logger)(mux))
}

// serve runs the HTTP endpoint on ln until ctx is done, then drains
// in-flight checks.
func (a *app) serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           a.handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	a.logger.Info("listening", "addr", ln.Addr().String())

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
