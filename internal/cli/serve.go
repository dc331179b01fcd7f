package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/boxkit/internal/server"
	"github.com/matzehuels/boxkit/pkg/cache"
	"github.com/matzehuels/boxkit/pkg/pipeline"
	"github.com/matzehuels/boxkit/pkg/store"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr         string // listen address
	cacheBackend string // cache backend: file, redis, none
	redisURL     string // redis connection URL for --cache redis
	storeBackend string // store backend: memory, file, mongo
	storeDir     string // directory for --store file
	mongoURI     string // connection URI for --store mongo
	mongoDB      string // database name for --store mongo
}

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:         ":8080",
		cacheBackend: cache.BackendFile,
		redisURL:     "redis://localhost:6379/0",
		storeBackend: "memory",
		mongoURI:     "mongodb://localhost:27017",
		mongoDB:      appName,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP rendering API",
		Long: `Serve exposes the rendering pipeline and document store over HTTP.

The render cache defaults to the local file cache; use --cache redis to
share it across instances. Documents are stored in memory unless --store
selects the file or mongo backend.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.cacheBackend, "cache", opts.cacheBackend, "cache backend: file (default), redis, none")
	cmd.Flags().StringVar(&opts.redisURL, "redis-url", opts.redisURL, "redis URL for --cache redis")
	cmd.Flags().StringVar(&opts.storeBackend, "store", opts.storeBackend, "document store: memory (default), file, mongo")
	cmd.Flags().StringVar(&opts.storeDir, "store-dir", "", "directory for --store file (default: ~/.config/boxkit/documents)")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", opts.mongoURI, "MongoDB URI for --store mongo")
	cmd.Flags().StringVar(&opts.mongoDB, "mongo-db", opts.mongoDB, "MongoDB database for --store mongo")

	return cmd
}

// runServe wires the cache, store, and pipeline into the HTTP server and
// blocks until the context is cancelled.
func (c *CLI) runServe(ctx context.Context, opts *serveOpts) error {
	ca, err := c.openCache(opts)
	if err != nil {
		return err
	}

	st, err := openStore(ctx, opts)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close(context.Background()) }()

	runner := pipeline.NewRunner(ca, c.Logger)
	defer runner.Close()

	srv := server.New(server.Config{
		Addr:   opts.addr,
		Runner: runner,
		Store:  st,
		Logger: c.Logger,
	})

	c.Logger.Info("starting server",
		"addr", opts.addr,
		"cache", opts.cacheBackend,
		"store", opts.storeBackend)
	return srv.ListenAndServe(ctx)
}

func (c *CLI) openCache(opts *serveOpts) (cache.Cache, error) {
	target := ""
	switch opts.cacheBackend {
	case cache.BackendFile:
		dir, err := cacheDir()
		if err != nil {
			return nil, fmt.Errorf("resolve cache dir: %w", err)
		}
		target = dir
	case cache.BackendRedis:
		target = opts.redisURL
	}
	return cache.Open(opts.cacheBackend, target)
}

func openStore(ctx context.Context, opts *serveOpts) (store.Store, error) {
	switch opts.storeBackend {
	case "memory":
		return store.NewMemoryStore(), nil
	case "file":
		return store.NewFileStore(opts.storeDir)
	case "mongo":
		return store.NewMongoStore(ctx, opts.mongoURI, opts.mongoDB)
	default:
		return nil, fmt.Errorf("unknown store backend %q", opts.storeBackend)
	}
}
