package docsite

import (
	"time"

	"go.uber.org/zap"

	"github.com/eringen/docsite/site"
)

// Config holds the server and build settings. Site content lives in the
// file named by SitePath.
type Config struct {
	SitePath  string // Site config file (default "site.yaml")
	StaticDir string // Static files, img/ served under the base URL (default "static")
	Addr      string // Listen address (default ":3000")

	CacheTTL time.Duration // Rendered page cache TTL (default 5min, negative disables)
	Watch    bool          // Reload the site config when its file changes

	SessionSecret string // Signs the language preference cookie; random per process when empty
	CookieSecure  bool   // Set true for HTTPS

	StatsEnabled      bool          // Count page views
	StatsDatabasePath string        // Stats SQLite path (default "data/stats.db")
	StatsRetention    time.Duration // Drop views older than this (default 365 days)
}

func (c *Config) setDefaults() {
	if c.SitePath == "" {
		c.SitePath = "site.yaml"
	}
	if c.StaticDir == "" {
		c.StaticDir = "static"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.CacheTTL == 0 {
		c.CacheTTL = 5 * time.Minute
	}
	if c.StatsDatabasePath == "" {
		c.StatsDatabasePath = "data/stats.db"
	}
	if c.StatsRetention == 0 {
		c.StatsRetention = 365 * 24 * time.Hour
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithLogger sets the application logger (default zap.NewNop).
func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}

// WithSite uses cfg instead of loading Config.SitePath. Reload becomes a
// no-op for such apps.
func WithSite(cfg *site.Config) Option {
	return func(a *App) {
		a.site.Store(cfg)
		a.fixedSite = true
	}
}

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App after the built-in routes are set up.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}
