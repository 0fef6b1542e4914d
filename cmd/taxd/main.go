package main

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
	"go.uber.org/zap"

	"taxcalc/internal/app"
	"taxcalc/internal/httpapi"
)

const shutdownTimeout = 5 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "taxd",
		Short:        "Serve the tax calculator over HTTP",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			engine, log, err := app.NewEngine(cfg, os.Stderr)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			return serve(cmd.Context(), cfg.Addr, httpapi.Handler(engine, log), log)
		},
	}
	cmd.Flags().String(app.KeyAddr, ":8080", "listen address")
	cmd.Flags().String(app.KeyHome, "", "config dir (default ~/.taxcalc)")
	cmd.Flags().String(app.KeyBrackets, "", "YAML file with extra bracket tables")
	cmd.Flags().String(app.KeyLogLevel, "info", "diagnostics level: debug, info, warn, error")
	return cmd
}

// serve runs the server until ctx is done, then drains in-flight requests.
func serve(ctx context.Context, addr string, h http.Handler, log *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("taxd listening", zap.String("addr", addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen %s: %w", addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Info("taxd shutting down")
	return srv.Shutdown(shutdownCtx)
}
