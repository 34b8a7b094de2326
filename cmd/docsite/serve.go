package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eringen/docsite"
)

var (
	addr          string
	watchConfig   bool
	statsEnabled  bool
	statsDB       string
	cookieSecure  bool
	sessionSecret = docsite.EnvOr("DOCSITE_SESSION_SECRET", "")
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site over HTTP",
	Long: `Serves the landing page, the users page and their language-prefixed
variants under the configured base URL, plus sitemap.xml and robots.txt.

Example:
  docsite serve --config site.yaml --addr :3000 --watch`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", docsite.EnvOr("DOCSITE_ADDR", ":3000"), "Listen address")
	serveCmd.Flags().BoolVar(&watchConfig, "watch", false, "Reload the site configuration when it changes")
	serveCmd.Flags().BoolVar(&statsEnabled, "stats", false, "Count page views in SQLite")
	serveCmd.Flags().StringVar(&statsDB, "stats-db", docsite.EnvOr("DOCSITE_STATS_DB", "data/stats.db"), "Stats database path")
	serveCmd.Flags().BoolVar(&cookieSecure, "secure-cookies", false, "Mark the language cookie Secure (HTTPS only)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := docsite.New(docsite.Config{
		SitePath:          configPath,
		StaticDir:         staticDir,
		Addr:              addr,
		Watch:             watchConfig,
		SessionSecret:     sessionSecret,
		CookieSecure:      cookieSecure,
		StatsEnabled:      statsEnabled,
		StatsDatabasePath: statsDB,
	}, docsite.WithLogger(logger))
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn("close", zap.Error(err))
		}
	}()

	if err := app.Start(ctx); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
