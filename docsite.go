// Package docsite serves and builds a documentation site's landing page:
// a hero splash, feature grids and a showcase of the project's users,
// rendered with templ from a site configuration file.
//
// The same App either serves pages over HTTP with Echo (Start) or writes
// them to a directory as a static site (Build).
package docsite

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/docsite/site"
	"github.com/eringen/docsite/stats"
	"github.com/eringen/docsite/watch"
)

// App is the central docsite application. It wires together the site
// configuration, page cache, stats store, handlers and middleware.
type App struct {
	Config Config
	Echo   *echo.Echo
	Logger *zap.Logger
	Cache  *PageCache
	Stats  *stats.Store

	site         atomic.Pointer[site.Config]
	fixedSite    bool
	viewLimiter  *Limiter
	stopCleanup  func()
	customRoutes []func(*App)
	ready        bool
}

// New creates an App with the given configuration.
func New(cfg Config, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Logger: zap.NewNop(),
		Cache:  NewPageCache(cfg.CacheTTL),
	}
	a.Echo.HideBanner = true
	a.Echo.HidePort = true

	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Site returns the current site configuration.
func (a *App) Site() *site.Config {
	return a.site.Load()
}

// Reload re-reads the site configuration file and drops cached pages.
// On error the previous configuration stays in place.
func (a *App) Reload() error {
	if a.fixedSite {
		return nil
	}
	cfg, err := site.Load(a.Config.SitePath)
	if err != nil {
		return fmt.Errorf("docsite: reload: %w", err)
	}
	a.site.Store(cfg)
	a.Cache.Invalidate()
	a.Logger.Info("site config loaded",
		zap.String("path", a.Config.SitePath),
		zap.String("title", cfg.Title),
		zap.Int("users", len(cfg.Users)),
		zap.Strings("languages", cfg.Languages))
	return nil
}

// Setup loads the site configuration, opens the stats store when enabled,
// and registers middleware and routes. Start calls it; tests call it
// directly and drive a.Echo as an http.Handler.
func (a *App) Setup() error {
	if a.ready {
		return nil
	}
	if a.Site() == nil {
		if err := a.Reload(); err != nil {
			return err
		}
	}

	if a.Config.SessionSecret == "" {
		secret, err := randomSecret()
		if err != nil {
			return fmt.Errorf("docsite: session secret: %w", err)
		}
		a.Config.SessionSecret = secret
		a.Logger.Warn("no session secret configured, language preferences will not survive restarts")
	}

	if a.Config.StatsEnabled {
		store, err := stats.NewStore(a.Config.StatsDatabasePath)
		if err != nil {
			return fmt.Errorf("docsite: init stats: %w", err)
		}
		a.Stats = store
		a.viewLimiter = NewLimiter(30, time.Minute)
		a.stopCleanup = store.StartCleanup(a.Config.StatsRetention, 24*time.Hour, func(err error) {
			a.Logger.Warn("stats cleanup failed", zap.Error(err))
		})
	}

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.ready = true
	return nil
}

// Start sets the app up and serves HTTP until ctx is cancelled.
func (a *App) Start(ctx context.Context) error {
	if err := a.Setup(); err != nil {
		return err
	}

	if a.Config.Watch && !a.fixedSite {
		w, err := watch.New(a.Config.SitePath, func() {
			if err := a.Reload(); err != nil {
				a.Logger.Warn("site config reload failed", zap.Error(err))
			}
		}, watch.WithErrorHandler(func(err error) {
			a.Logger.Warn("site config watcher", zap.Error(err))
		}))
		if err != nil {
			return fmt.Errorf("docsite: watch: %w", err)
		}
		if err := w.Start(ctx); err != nil {
			return fmt.Errorf("docsite: watch: %w", err)
		}
		defer w.Stop()
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := a.Echo.Shutdown(shutdownCtx); err != nil {
			a.Logger.Warn("shutdown", zap.Error(err))
		}
	}()

	a.Logger.Info("listening", zap.String("addr", a.Config.Addr), zap.String("base", a.Site().BaseURL))
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("docsite: serve: %w", err)
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo
	cfg := a.Site()

	e.GET("/healthz", handleHealth)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	if a.Stats != nil {
		e.GET("/api/stats", a.handleStats)
	}

	// Routes hang off the base URL the site is published under. Changing
	// baseUrl therefore needs a restart; other fields reload live.
	g := e.Group(strings.TrimSuffix(cfg.BaseURL, "/"))
	g.GET("/", a.handleIndex)
	g.GET("/users.html", a.handleUsers)
	g.GET("/css/main.css", handleStylesheet)
	g.Static("/img", a.Config.StaticDir+"/img")
	g.GET("/lang/:lang", a.handleSetLanguage)
	g.GET("/:lang/", a.handleIndex)
	g.GET("/:lang/users.html", a.handleUsers)
}

// Close releases the stats store and background workers.
func (a *App) Close() error {
	if a.stopCleanup != nil {
		a.stopCleanup()
	}
	if a.viewLimiter != nil {
		a.viewLimiter.Close()
	}
	if a.Stats != nil {
		return a.Stats.Close()
	}
	return nil
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", b), nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
