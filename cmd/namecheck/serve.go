package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/namecheck-ai/namecheck/internal/adapters/env"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(flags *rootFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, app, logger, err := setup(cmd, flags)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}

			r := chi.NewRouter()
			r.Use(middleware.StripSlashes)
			r.Use(middleware.RequestID)
			r.Use(middleware.Logger)
			r.Use(middleware.Recoverer)

			srv := &http.Server{
				Addr:              cfg.Addr,
				Handler:           app.Wrap(r),
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("server listening", zap.String("addr", cfg.Addr), zap.String("mode", cfg.Mode.String()))
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", env.DefaultAddr, "listen address (default $NAMECHECK_ADDR or :8501)")
	cmd.Flags().BoolVar(&flags.dev, "dev", false, "show error details on error pages")
	return cmd
}
