// Package portfolio parses portfolio command flags and composes the web
// server and static exporter.
package portfolio

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	entrypoint "github.com/paul-wang1/portfolio/internal/platform/cmd"
	"github.com/paul-wang1/portfolio/internal/platform/logging"
	"github.com/paul-wang1/portfolio/internal/platform/otel"
	server "github.com/paul-wang1/portfolio/internal/services/portfolio"
	"github.com/paul-wang1/portfolio/internal/services/portfolio/content"
	"github.com/paul-wang1/portfolio/internal/services/portfolio/export"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Config holds serve command configuration.
type Config struct {
	HTTPAddr   string `env:"PORTFOLIO_HTTP_ADDR"   envDefault:"localhost:8080"`
	ContentDir string `env:"PORTFOLIO_CONTENT_DIR"`
	Watch      bool   `env:"PORTFOLIO_WATCH"`
	AssetsDir  string `env:"PORTFOLIO_ASSETS_DIR"`
	LogLevel   string `env:"PORTFOLIO_LOG_LEVEL"   envDefault:"info"`
	Telemetry  otel.Settings
}

// ExportConfig holds export command configuration.
type ExportConfig struct {
	OutDir     string `env:"PORTFOLIO_EXPORT_DIR"  envDefault:"dist"`
	ContentDir string `env:"PORTFOLIO_CONTENT_DIR"`
	AssetsDir  string `env:"PORTFOLIO_ASSETS_DIR"`
	LogLevel   string `env:"PORTFOLIO_LOG_LEVEL"   envDefault:"info"`
	Strict     bool   `env:"PORTFOLIO_EXPORT_STRICT"`
	Telemetry  otel.Settings
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.ContentDir, "content-dir", cfg.ContentDir, "content directory (empty uses embedded content)")
	fs.BoolVar(&cfg.Watch, "watch", cfg.Watch, "reload content when files under content-dir change")
	fs.StringVar(&cfg.AssetsDir, "assets-dir", cfg.AssetsDir, "directory holding public files/ and images/")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.Watch && strings.TrimSpace(cfg.ContentDir) == "" {
		return Config{}, errors.New("watch requires a content directory")
	}
	return cfg, nil
}

// ParseExportConfig parses environment and flags into an ExportConfig.
func ParseExportConfig(fs *flag.FlagSet, args []string) (ExportConfig, error) {
	var cfg ExportConfig
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return ExportConfig{}, err
	}

	fs.StringVar(&cfg.OutDir, "out", cfg.OutDir, "output directory")
	fs.StringVar(&cfg.ContentDir, "content-dir", cfg.ContentDir, "content directory (empty uses embedded content)")
	fs.StringVar(&cfg.AssetsDir, "assets-dir", cfg.AssetsDir, "directory holding public files/ and images/")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.Strict, "strict", cfg.Strict, "fail when the navigation check finds problems")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return ExportConfig{}, err
	}
	return cfg, nil
}

// Run serves the site until ctx ends. With Watch set the content directory is
// reloaded on change alongside the server.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServicePortfolio, cfg.Telemetry, entrypoint.RunOptions{Logger: logger}, func(ctx context.Context) error {
		store, watched, err := openStore(cfg.ContentDir, cfg.Watch, logger)
		if err != nil {
			return err
		}
		srv, err := server.NewServer(ctx, server.Config{
			HTTPAddr:  cfg.HTTPAddr,
			AssetsDir: cfg.AssetsDir,
			Store:     store,
			Logger:    logger,
		})
		if err != nil {
			return fmt.Errorf("init portfolio server: %w", err)
		}
		defer srv.Close()

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			logger.Info("portfolio listening", zap.String("addr", srv.Addr()))
			return srv.ListenAndServe(gctx)
		})
		if watched != nil {
			g.Go(func() error {
				return watched.Watch(gctx)
			})
		}
		if err := g.Wait(); err != nil {
			return fmt.Errorf("serve portfolio: %w", err)
		}
		return nil
	})
}

// Export renders the site into cfg.OutDir.
func Export(ctx context.Context, cfg ExportConfig) error {
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceExport, cfg.Telemetry, entrypoint.RunOptions{Logger: logger}, func(ctx context.Context) error {
		store, _, err := openStore(cfg.ContentDir, false, logger)
		if err != nil {
			return err
		}
		handler, err := server.NewHandler(server.Config{Store: store, Logger: logger})
		if err != nil {
			return fmt.Errorf("compose portfolio handler: %w", err)
		}
		if _, err := export.Run(ctx, export.Options{
			OutDir:    cfg.OutDir,
			AssetsDir: cfg.AssetsDir,
			Strict:    cfg.Strict,
			Handler:   handler,
			Site:      store.Portfolio(),
			Logger:    logger,
		}); err != nil {
			return fmt.Errorf("export portfolio: %w", err)
		}
		return nil
	})
}

// openStore loads content from dir, or the embedded content when dir is
// empty. The watched store is returned separately so callers can run it.
func openStore(dir string, watch bool, logger *zap.Logger) (content.Store, *content.WatchedStore, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		site, err := content.Load(content.Embedded())
		if err != nil {
			return nil, nil, fmt.Errorf("load embedded content: %w", err)
		}
		return content.NewStaticStore(site), nil, nil
	}
	if watch {
		store, err := content.NewWatchedStore(dir, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("load content %s: %w", dir, err)
		}
		return store, store, nil
	}
	site, err := content.Load(os.DirFS(dir))
	if err != nil {
		return nil, nil, fmt.Errorf("load content %s: %w", dir, err)
	}
	return content.NewStaticStore(site), nil, nil
}
