package cli

import (
	"context"
	stderrors "errors"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/canvas2svg/pkg/api"
	"github.com/matzehuels/canvas2svg/pkg/cache"
	"github.com/matzehuels/canvas2svg/pkg/pipeline"
)

const (
	defaultAddr     = ":8080"
	shutdownTimeout = 5 * time.Second
	redisURLEnv     = "CANVAS2SVG_REDIS_URL"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr     string
	redisURL string
	noCache  bool
	maxBody  int64
}

// serveCommand creates the serve command running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		flags optionFlags
		opts  = serveOpts{addr: defaultAddr, maxBody: api.DefaultMaxBodyBytes}
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the conversion API over HTTP",
		Long: `Serve the conversion API over HTTP.

Rendered artifacts are cached in Redis when --redis (or ` + redisURLEnv + `) is set,
and in the local cache directory otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults, err := flags.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			if opts.redisURL == "" {
				opts.redisURL = os.Getenv(redisURLEnv)
			}
			return c.runServe(cmd.Context(), opts, defaults)
		},
	}

	flags.register(cmd.Flags(), false)
	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redisURL, "redis", "", "Redis URL for the artifact cache (redis://host:6379/0)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().Int64Var(&opts.maxBody, "max-body", opts.maxBody, "maximum request body size in bytes")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts, defaults pipeline.Options) error {
	logger := loggerFromContext(ctx)

	ch, backend, err := newServerCache(ctx, opts)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(ch, logger)
	defer runner.Close()

	handler := api.NewRouter(runner, logger,
		api.WithMaxBodyBytes(opts.maxBody),
		api.WithDefaults(defaults))

	ln, err := net.Listen("tcp", opts.addr)
	if err != nil {
		return err
	}
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	printSuccess("Listening on %s", ln.Addr())
	printDetail("Cache: %s", backend)
	logger.Info("server started", "addr", ln.Addr().String(), "cache", backend, "style", defaults.Style)

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()

	select {
	case err := <-errc:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return ctx.Err()
}

// newServerCache picks the artifact cache for the server and describes it.
func newServerCache(ctx context.Context, opts serveOpts) (cache.Cache, string, error) {
	switch {
	case opts.noCache:
		return cache.NewNullCache(), "disabled", nil
	case opts.redisURL != "":
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{URL: opts.redisURL})
		if err != nil {
			return nil, "", err
		}
		return rc, "redis", nil
	default:
		ch, err := newCache(false)
		if err != nil {
			return nil, "", err
		}
		if fc, ok := ch.(*cache.FileCache); ok {
			return fc, "file " + fc.Dir(), nil
		}
		return ch, "disabled", nil
	}
}
