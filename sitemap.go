package docsite

import (
	"encoding/xml"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/docsite/site"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

// sitemapURLs lists every page in the default language and in each
// configured language, joined to origin.
func sitemapURLs(origin string, cfg *site.Config) []sitemapURL {
	var urls []sitemapURL
	for _, lang := range pageLangs(cfg) {
		for _, page := range sitePages {
			urls = append(urls, sitemapURL{Loc: origin + cfg.PageURL(page, lang)})
		}
	}
	return urls
}

func writeSitemap(w io.Writer, origin string, cfg *site.Config) error {
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  sitemapURLs(origin, cfg),
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	return enc.Encode(sitemap)
}

func (a *App) renderSitemap(c echo.Context, origin string) error {
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return writeSitemap(c.Response(), origin, a.Site())
}

// robotsTxt allows every crawler and points at sitemapURL when known.
func robotsTxt(sitemapURL string) string {
	var b strings.Builder
	b.WriteString("User-agent: *\nAllow: /\n")
	if sitemapURL != "" {
		b.WriteString("\nSitemap: " + sitemapURL + "\n")
	}
	return b.String()
}
