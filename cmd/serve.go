package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/devankur/portfolio/internal/analytics"
	"github.com/devankur/portfolio/internal/cache"
	"github.com/devankur/portfolio/internal/config"
	"github.com/devankur/portfolio/internal/content"
	"github.com/devankur/portfolio/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio over HTTP",
	Long: `serve renders the portfolio and answers the page's navigation, menu and
reveal requests. With --watch the content file is reloaded whenever it changes.
The server stops gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	addServeFlags(serveCmd)
	rootCmd.AddCommand(serveCmd)
}

func addServeFlags(cmd *cobra.Command) {
	cmd.Flags().Int("port", 8080, "port to listen on")
	cmd.Flags().String("content", "", "content file (default is the built-in content)")
	cmd.Flags().Bool("watch", false, "reload the content file when it changes")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log := appConfig, logger
	if !cfg.Dev {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := content.NewStore(cfg.ContentFile, log.Named("content"))
	if err != nil {
		return err
	}

	pages := openCache(cfg, log.Named("cache"))
	defer pages.Close()

	opts := server.Options{
		Content:    store,
		Pages:      pages,
		Retention:  cfg.Retention,
		ResumeFile: cfg.ResumeFile,
		StaticDir:  cfg.StaticDir,
		Logger:     log.Named("server"),
	}

	if cfg.DatabasePath != "" {
		alog := log.Named("analytics")
		metrics, err := analytics.Open(ctx, cfg.DatabasePath, alog)
		if err != nil {
			return err
		}
		defer metrics.Close()
		if _, err := metrics.Cleanup(ctx, cfg.Retention); err != nil {
			alog.Warn("privacy cleanup failed", zap.Error(err))
		}

		tracker, err := analytics.NewTracker(metrics, alog)
		if err != nil {
			return err
		}
		defer tracker.Close()

		user, pass, usingDefaults := cfg.AdminCredentials()
		if usingDefaults {
			log.Warn("using default admin credentials, set ADMIN_USERNAME and ADMIN_PASSWORD")
		}
		opts.Tracker = tracker
		opts.AdminUsername, opts.AdminPassword = user, pass
	}

	srv, err := server.New(opts)
	if err != nil {
		return err
	}

	watchDone := make(chan struct{})
	if cfg.Watch {
		go func() {
			defer close(watchDone)
			if err := store.Watch(ctx); err != nil {
				log.Error("content watcher stopped", zap.Error(err))
			}
		}()
	} else {
		close(watchDone)
	}

	err = srv.Run(ctx, cfg.Addr())
	stop()
	<-watchDone
	return err
}

// openCache falls back to no caching when Redis is not configured or not
// reachable.
func openCache(cfg *config.Config, log *zap.Logger) cache.Pages {
	if cfg.RedisURL == "" {
		return cache.Nop{}
	}
	r, err := cache.NewRedis(cfg.RedisURL, cfg.CacheTTL, log)
	if err != nil {
		log.Warn("page cache disabled", zap.Error(err))
		return cache.Nop{}
	}
	return r
}
