package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/dayplan/internal/config"
	"github.com/Makepad-fr/dayplan/internal/logger"
	"github.com/Makepad-fr/dayplan/internal/server"
	"github.com/Makepad-fr/dayplan/internal/ui"
)

func (a *app) serveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the planner over HTTP",
		Args:  exactArgs(0, "usage: dayplan serve [--addr HOST:PORT]"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx, a.cfg.Addr)
		},
	}
	cmd.Flags().String(config.KeyAddr, "127.0.0.1:8080", "listen address")
	return cmd
}

// serve blocks until ctx is done, then drains in-flight requests.
func (a *app) serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           server.NewRouter(a.planner, a.now),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info(ctx, "http listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()
	ui.OK("serving on http://" + addr)

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info(ctx, "http stopped")
	return nil
}
