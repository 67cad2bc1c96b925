package cli

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"faraid-engine/internal/config"
	"faraid-engine/internal/handler"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(load func() (*config.Config, error)) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculation API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}

			log, err := cfg.Server.Logger()
			if err != nil {
				return fmt.Errorf("building logger: %w", err)
			}
			defer log.Sync() //nolint:errcheck

			ln, err := net.Listen("tcp", ":"+strconv.Itoa(cfg.Server.Port))
			if err != nil {
				return fmt.Errorf("listening on port %d: %w", cfg.Server.Port, err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, ln, cfg, log)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 8080, "listen port (overrides config)")
	return cmd
}

// serve runs the API on ln until ctx is done, then shuts down gracefully.
func serve(ctx context.Context, ln net.Listener, cfg *config.Config, log *zap.Logger) error {
	h := handler.New(cfg.Calc.Calculator(), log)
	srv := &fasthttp.Server{
		Handler:      h.Handle,
		Name:         "faraid-engine",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("faraid engine starting", zap.String("addr", ln.Addr().String()), zap.Bool("spouse_radd", cfg.Calc.SpouseRadd))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.ShutdownWithContext(shutdownCtx); err != nil {
		return err
	}
	// Serve may not have registered ln yet; closing it unblocks Accept either way.
	_ = ln.Close()
	return <-errCh
}
