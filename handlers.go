package docsite

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/docsite/stats"
	"github.com/eringen/docsite/views"
)

func (a *App) handleIndex(c echo.Context) error {
	lang, err := a.langParam(c)
	if err != nil {
		return err
	}
	if lang == "" {
		cfg := a.Site()
		c.Response().Header().Add(echo.HeaderVary, echo.HeaderCookie)
		if pref := PreferredLanguage(c); pref != "" && cfg.HasLanguage(pref) {
			c.Response().Header().Set("Cache-Control", "private, no-cache")
			return c.Redirect(http.StatusFound, cfg.PageURL("", pref))
		}
	}
	return a.renderPage(c, pageIndex, lang)
}

func (a *App) handleUsers(c echo.Context) error {
	lang, err := a.langParam(c)
	if err != nil {
		return err
	}
	return a.renderPage(c, pageUsers, lang)
}

// langParam returns the :lang path parameter, or "" on unprefixed routes.
// Unknown languages are a 404.
func (a *App) langParam(c echo.Context) (string, error) {
	lang := c.Param("lang")
	if lang == "" {
		return "", nil
	}
	if !a.Site().HasLanguage(lang) {
		return "", echo.ErrNotFound
	}
	return lang, nil
}

func (a *App) handleSetLanguage(c echo.Context) error {
	cfg := a.Site()
	lang := c.Param("lang")
	switch {
	case lang == defaultLanguage:
		lang = ""
	case !cfg.HasLanguage(lang):
		return echo.ErrNotFound
	}
	if err := setPreferredLanguage(c, lang); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, cfg.PageURL("", lang))
}

func (a *App) renderPage(c echo.Context, page, lang string) error {
	a.recordView(c, lang)

	if body, ok := a.Cache.Get(page, lang); ok {
		return c.HTMLBlob(http.StatusOK, body)
	}
	gen := a.Cache.Generation()
	cfg := a.Site()
	body, err := renderBytes(c.Request().Context(), pageComponent(cfg, page, pageMeta(cfg, page, lang, linkServed)))
	if err != nil {
		return err
	}
	a.Cache.Put(page, lang, gen, body)
	return c.HTMLBlob(http.StatusOK, body)
}

func (a *App) recordView(c echo.Context, lang string) {
	if a.Stats == nil || !a.viewLimiter.Allow(c.RealIP()) {
		return
	}
	req := c.Request()
	err := a.Stats.RecordView(req.Context(), stats.View{
		Path:     req.URL.Path,
		Lang:     lang,
		Referrer: req.Referer(),
		Bot:      stats.IsBot(req.UserAgent()),
	})
	if err != nil {
		a.Logger.Warn("record view", zap.Error(err))
	}
}

func (a *App) handleStats(c echo.Context) error {
	limit := 20
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = n
	}
	sum, err := a.Stats.Summarize(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sum)
}

func handleStylesheet(c echo.Context) error {
	css, err := EmbeddedAssets.ReadFile(stylesheetPath)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "text/css; charset=utf-8", css)
}

func handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func (a *App) handleRobots(c echo.Context) error {
	return c.String(http.StatusOK, robotsTxt(a.origin(c)+"/sitemap.xml"))
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c, a.origin(c))
}

// origin is the configured site URL, or the request's scheme and host when
// none is configured.
func (a *App) origin(c echo.Context) string {
	if u := a.Site().URL; u != "" {
		return u
	}
	return c.Scheme() + "://" + c.Request().Host
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	cfg := a.Site()
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(cfg))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Logger.Error("server error",
			zap.Error(err),
			zap.String("uri", c.Request().RequestURI),
			zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)))
		_ = RenderStatus(c, code, views.ServerError(cfg))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
