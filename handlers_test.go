package docsite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/docsite/site"
	"github.com/eringen/docsite/stats"
)

func testSite() *site.Config {
	return (&site.Config{
		Title:     "Handbook",
		Tagline:   "Everything we know",
		BaseURL:   "/handbook/",
		URL:       "https://example.org",
		Languages: []string{"en", "fr"},
		Users: []site.User{
			{Image: "/img/acme.png", Caption: "Acme", InfoLink: "https://acme.example", Pinned: true},
			{Image: "/img/initech.png", Caption: "Initech", InfoLink: "https://initech.example"},
		},
	}).Normalize()
}

func newTestApp(t *testing.T, cfg Config, s *site.Config) *App {
	t.Helper()
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = "test-secret-test-secret-test-sec"
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = t.TempDir()
	}
	a := New(cfg, WithSite(s))
	require.NoError(t, a.Setup())
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func serve(a *App, method, target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)
	return rec
}

func TestIndexRendersLandingPage(t *testing.T) {
	a := newTestApp(t, Config{}, testSite())

	rec := serve(a, http.MethodGet, "/handbook/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")

	body := rec.Body.String()
	assert.Contains(t, body, `<h2 class="projectTitle">Handbook<small>Everything we know</small></h2>`)
	assert.Contains(t, body, `href="/handbook/docs/get-started"`)
	assert.Contains(t, body, "Who is Using This?")
	assert.Contains(t, body, `href="/handbook/users.html"`)
	assert.Contains(t, body, `<link rel="canonical" href="https://example.org/handbook/">`)
	assert.Contains(t, body, `href="/handbook/lang/fr"`)
	assert.NotContains(t, body, "Initech", "only pinned users appear in the showcase")
}

func TestIndexForLanguage(t *testing.T) {
	a := newTestApp(t, Config{}, testSite())

	rec := serve(a, http.MethodGet, "/handbook/fr/")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `href="/handbook/docs/fr/get-started"`)
	assert.Contains(t, body, `href="/handbook/fr/users.html"`)
	assert.Contains(t, body, `<html lang="fr">`)
}

func TestIndexUnknownLanguageIsNotFound(t *testing.T) {
	a := newTestApp(t, Config{}, testSite())

	rec := serve(a, http.MethodGet, "/handbook/de/")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page not found")
}

func TestIndexAddsTrailingSlash(t *testing.T) {
	a := newTestApp(t, Config{}, testSite())

	rec := serve(a, http.MethodGet, "/handbook/fr")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/handbook/fr/", rec.Header().Get(echo.HeaderLocation))
}

func TestTrailingSlashOnlyForSitePaths(t *testing.T) {
	a := New(Config{SessionSecret: "secret", StaticDir: t.TempDir()},
		WithSite(testSite()),
		WithCustomRoutes(func(a *App) {
			a.Echo.GET("/handbook/about", func(c echo.Context) error {
				return c.String(http.StatusOK, "about")
			})
		}))
	require.NoError(t, a.Setup())
	t.Cleanup(func() { _ = a.Close() })

	rec := serve(a, http.MethodGet, "/handbook")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/handbook/", rec.Header().Get(echo.HeaderLocation))

	rec = serve(a, http.MethodGet, "/handbook/about")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "about", rec.Body.String())

	rec = serve(a, http.MethodGet, "/handbook/de")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUsersPageListsEveryUser(t *testing.T) {
	a := newTestApp(t, Config{}, testSite())

	rec := serve(a, http.MethodGet, "/handbook/users.html")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Acme")
	assert.Contains(t, rec.Body.String(), "Initech")

	rec = serve(a, http.MethodGet, "/handbook/en/users.html")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(a, http.MethodGet, "/handbook/xx/users.html")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLanguagePreferenceRedirects(t *testing.T) {
	a := newTestApp(t, Config{}, testSite())

	rec := serve(a, http.MethodGet, "/handbook/lang/fr")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/handbook/fr/", rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	rec = serve(a, http.MethodGet, "/handbook/", cookies...)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/handbook/fr/", rec.Header().Get(echo.HeaderLocation))

	rec = serve(a, http.MethodGet, "/handbook/lang/default", cookies...)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/handbook/", rec.Header().Get(echo.HeaderLocation))

	rec = serve(a, http.MethodGet, "/handbook/", rec.Result().Cookies()...)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLanguagePreferenceReplacesCookieFromOtherSecret(t *testing.T) {
	before := newTestApp(t, Config{SessionSecret: "secret-before-restart"}, testSite())
	rec := serve(before, http.MethodGet, "/handbook/lang/fr")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	stale := rec.Result().Cookies()
	require.NotEmpty(t, stale)

	after := newTestApp(t, Config{SessionSecret: "secret-after-restart"}, testSite())

	rec = serve(after, http.MethodGet, "/handbook/", stale...)
	assert.Equal(t, http.StatusOK, rec.Code, "an undecodable cookie means no preference")

	rec = serve(after, http.MethodGet, "/handbook/lang/en", stale...)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/handbook/en/", rec.Header().Get(echo.HeaderLocation))
	fresh := rec.Result().Cookies()
	require.NotEmpty(t, fresh)

	rec = serve(after, http.MethodGet, "/handbook/", fresh...)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/handbook/en/", rec.Header().Get(echo.HeaderLocation))
}

func TestLanguagePreferenceRejectsUnknownLanguage(t *testing.T) {
	a := newTestApp(t, Config{}, testSite())

	rec := serve(a, http.MethodGet, "/handbook/lang/de")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStylesheet(t *testing.T) {
	a := newTestApp(t, Config{}, testSite())

	rec := serve(a, http.MethodGet, "/handbook/css/main.css")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/css")
	assert.Contains(t, rec.Body.String(), ".homeContainer")
	assert.Equal(t, "public, max-age=86400", rec.Header().Get("Cache-Control"))
}

func TestStaticImages(t *testing.T) {
	static := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(static, "img"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(static, "img", "logo.svg"), []byte("<svg/>"), 0o644))

	a := newTestApp(t, Config{StaticDir: static}, testSite())

	rec := serve(a, http.MethodGet, "/handbook/img/logo.svg")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<svg/>", rec.Body.String())
}

func TestSitemapListsEveryLanguage(t *testing.T) {
	a := newTestApp(t, Config{}, testSite())

	rec := serve(a, http.MethodGet, "/sitemap.xml")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "application/xml")

	body := rec.Body.String()
	for _, loc := range []string{
		"https://example.org/handbook/",
		"https://example.org/handbook/users.html",
		"https://example.org/handbook/en/",
		"https://example.org/handbook/fr/users.html",
	} {
		assert.Contains(t, body, "<loc>"+loc+"</loc>")
	}
}

func TestSitemapFallsBackToRequestHost(t *testing.T) {
	s := testSite()
	s.URL = ""
	a := newTestApp(t, Config{}, s)

	rec := serve(a, http.MethodGet, "/sitemap.xml")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<loc>http://example.com/handbook/</loc>")
}

func TestRobots(t *testing.T) {
	a := newTestApp(t, Config{}, testSite())

	rec := serve(a, http.MethodGet, "/robots.txt")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "User-agent: *")
	assert.Contains(t, rec.Body.String(), "Sitemap: https://example.org/sitemap.xml")
}

func TestHealth(t *testing.T) {
	a := newTestApp(t, Config{}, testSite())

	rec := serve(a, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestSecurityHeadersAndRequestID(t *testing.T) {
	a := newTestApp(t, Config{}, testSite())

	rec := serve(a, http.MethodGet, "/handbook/")
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	assert.Equal(t, "public, max-age=3600", rec.Header().Get("Cache-Control"))
}

func TestRenderedPagesAreCached(t *testing.T) {
	a := newTestApp(t, Config{}, testSite())

	serve(a, http.MethodGet, "/handbook/")
	serve(a, http.MethodGet, "/handbook/fr/")
	assert.Equal(t, 2, a.Cache.Len())

	_, ok := a.Cache.Get(pageIndex, "fr")
	assert.True(t, ok)
}

func TestReloadSwapsSiteAndInvalidatesCache(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: First\n"), 0o644))

	a := New(Config{SitePath: path, SessionSecret: "secret", StaticDir: dir})
	require.NoError(t, a.Setup())
	t.Cleanup(func() { _ = a.Close() })

	rec := serve(a, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "First")

	require.NoError(t, os.WriteFile(path, []byte("title: Second\n"), 0o644))
	require.NoError(t, a.Reload())
	assert.Zero(t, a.Cache.Len())

	rec = serve(a, http.MethodGet, "/")
	assert.Contains(t, rec.Body.String(), "Second")
	assert.NotContains(t, rec.Body.String(), "First")
}

func TestReloadKeepsPreviousSiteOnError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: First\n"), 0o644))

	a := New(Config{SitePath: path})
	require.NoError(t, a.Reload())

	require.NoError(t, os.WriteFile(path, []byte("tagline: no title\n"), 0o644))
	err := a.Reload()
	require.Error(t, err)
	assert.ErrorIs(t, err, site.ErrInvalidConfig)
	assert.Equal(t, "First", a.Site().Title)
}

func TestSetupFailsWithoutSiteFile(t *testing.T) {
	a := New(Config{SitePath: filepath.Join(t.TempDir(), "missing.yaml")})
	err := a.Setup()
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "docsite: reload:"))
}

func TestStatsRecordsViews(t *testing.T) {
	a := newTestApp(t, Config{
		StatsEnabled:      true,
		StatsDatabasePath: filepath.Join(t.TempDir(), "stats.db"),
	}, testSite())

	serve(a, http.MethodGet, "/handbook/")
	serve(a, http.MethodGet, "/handbook/fr/")
	serve(a, http.MethodGet, "/handbook/fr/")

	rec := serve(a, http.MethodGet, "/api/stats")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var sum stats.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sum))
	assert.Equal(t, 3, sum.Total)
	require.NotEmpty(t, sum.Pages)
	assert.Equal(t, stats.PageCount{Path: "/handbook/fr/", Views: 2}, sum.Pages[0])

	rec = serve(a, http.MethodGet, "/api/stats?limit=zero")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatsEndpointAbsentWhenDisabled(t *testing.T) {
	a := newTestApp(t, Config{}, testSite())

	rec := serve(a, http.MethodGet, "/api/stats")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCustomRoutes(t *testing.T) {
	a := New(Config{SessionSecret: "secret", StaticDir: t.TempDir()},
		WithSite(testSite()),
		WithCustomRoutes(func(a *App) {
			a.Echo.GET("/ping", func(c echo.Context) error {
				return c.String(http.StatusOK, "pong")
			})
		}))
	require.NoError(t, a.Setup())
	t.Cleanup(func() { _ = a.Close() })

	rec := serve(a, http.MethodGet, "/ping")
	assert.Equal(t, "pong", rec.Body.String())
}
