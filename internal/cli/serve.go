package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/yankh764/cookies-analyzer/internal/cache"
	"github.com/yankh764/cookies-analyzer/internal/config"
	"github.com/yankh764/cookies-analyzer/internal/logging"
	"github.com/yankh764/cookies-analyzer/internal/service"
	"github.com/yankh764/cookies-analyzer/internal/web"
)

type serveOptions struct {
	addr string
	dir  string
}

func newServeCommand(cfg *config.Config) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve most-active queries over HTTP",
		Long: `serve starts an HTTP API answering most-active queries for logs in a
directory (GET /api/logs/{name}/most-active?date=) or sent as the request body
(POST /api/most-active?date=). It stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			serveCfg, err := opts.apply(*cfg)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, serveCfg)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", cfg.Server.Addr(), "listen address as host:port")
	cmd.Flags().StringVar(&opts.dir, "dir", cfg.Logs.Dir, "directory holding cookie logs")
	return cmd
}

// apply returns a copy of cfg with the flag values applied.
func (o *serveOptions) apply(cfg config.Config) (*config.Config, error) {
	host, portStr, err := net.SplitHostPort(o.addr)
	if err != nil {
		return nil, fmt.Errorf("invalid addr %q: %w", o.addr, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port < 0 || port > 65535 {
		return nil, fmt.Errorf("invalid addr %q: port must be 0-65535", o.addr)
	}
	if o.dir == "" {
		return nil, errors.New("invalid dir: must not be empty")
	}

	cfg.Server.Host = host
	cfg.Server.Port = port
	cfg.Logs.Dir = o.dir
	return &cfg, nil
}

// runServe serves until ctx is cancelled, then shuts down within the
// configured timeout.
func runServe(ctx context.Context, cfg *config.Config) error {
	logger := logging.FromContext(ctx)
	logger.Debug("configuration loaded", "config", cfg.String())

	cacheCfg := cache.Config{}
	if cfg.Cache.Enabled {
		cacheCfg = cache.Config{
			NumCounters: cfg.Cache.NumCounters,
			MaxCost:     cfg.Cache.MaxCost,
			BufferItems: cfg.Cache.BufferItems,
		}
	}
	results, err := cache.New(cacheCfg)
	if err != nil {
		return err
	}
	defer results.Close()

	limiter := service.NewLimiter(cfg.Upload.MaxConcurrent, cfg.Upload.MaxWaitTime)
	server := web.NewServer(service.New(results, limiter), cfg)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
