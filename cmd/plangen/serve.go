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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/aretw0/plangen"
	httpAdapter "github.com/aretw0/plangen/pkg/adapters/http"
	"github.com/aretw0/plangen/pkg/observability"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Serves encodings over HTTP:

  GET /v1/{domain}/{size}?mode=&format=
  GET /v1/domains
  GET /health
  GET /metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := a.cfg.Listen
			if cmd.Flags().Changed("listen") {
				addr, _ = cmd.Flags().GetString("listen")
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			gen := a.generator(plangen.WithMetrics(observability.NewMetrics(reg)))

			srv := &http.Server{
				Addr:              addr,
				Handler:           httpAdapter.NewHandler(gen, a.maxSize(cmd), reg, a.logger),
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			// Channel to listen for errors coming from the listener.
			serverErrors := make(chan error, 1)
			go func() {
				a.logger.Info("Starting plangen server", "address", srv.Addr)
				serverErrors <- srv.ListenAndServe()
			}()

			select {
			case err := <-serverErrors:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("server error: %w", err)

			case <-ctx.Done():
				a.logger.Info("Start shutdown")

				// Give outstanding requests a deadline for completion.
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()

				if err := srv.Shutdown(shutdownCtx); err != nil {
					srv.Close()
					return fmt.Errorf("graceful shutdown did not complete: %w", err)
				}
				a.logger.Info("plangen server stopped gracefully")
				return nil
			}
		},
	}
	cmd.Flags().StringP("listen", "l", "", "Address to listen on (default from config, :8080)")
	cmd.Flags().Int("max-size", 0, "Largest size served, 0 for no limit (default from config: 20)")
	return cmd
}
