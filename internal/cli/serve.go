package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/tzgrid/tianzige/internal/server"
	"github.com/tzgrid/tianzige/pkg/cache"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr     string
	redis    string
	cacheDir string
	cacheTTL time.Duration
	noCache  bool
}

// serveCommand creates the serve command, which exposes grid generation
// over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve tianzige grids over HTTP",
		Long: `Start an HTTP server that renders grids on demand.

GET /grid.pdf accepts the same parameters as the generate command
(page, color, size, min-horizontal, min-vertical, margin-top,
margin-bottom, margin-left, margin-right, inner-grid) and responds
with the rendered PDF. Rendered grids are cached in memory, on disk
when --cache-dir is given, or in Redis when --redis is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8475", "address to listen on")
	cmd.Flags().StringVar(&opts.redis, "redis", "", "Redis address for the render cache (host:port)")
	cmd.Flags().StringVar(&opts.cacheDir, "cache-dir", "", "directory for a disk-backed render cache")
	cmd.Flags().DurationVar(&opts.cacheTTL, "cache-ttl", server.DefaultCacheTTL, "how long rendered grids stay cached")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	store, err := c.newServeCache(ctx, opts)
	if err != nil {
		return err
	}
	defer store.Close()

	srv := server.New(c.newRunner(), store, c.Logger, opts.cacheTTL)
	httpServer := &http.Server{
		Addr:              opts.addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Infof("Listening on %s", opts.addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			c.Logger.Warnf("Shutdown: %v", err)
		}
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// newServeCache picks the cache backend from the serve flags.
func (c *CLI) newServeCache(ctx context.Context, opts serveOpts) (cache.Cache, error) {
	switch {
	case opts.noCache:
		return cache.NewNullCache(), nil
	case opts.redis != "":
		c.Logger.Debugf("Using Redis cache at %s", opts.redis)
		return cache.NewRedisCache(ctx, opts.redis, appName)
	case opts.cacheDir != "":
		c.Logger.Debugf("Using disk cache at %s", opts.cacheDir)
		return cache.NewFileCache(opts.cacheDir)
	default:
		return cache.NewMemoryCache(), nil
	}
}
