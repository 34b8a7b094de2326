package views

import (
	"context"
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/eringen/docsite/site"
)

// Layout wraps body in the HTML document: head metadata, header with the
// language switcher, and footer.
func Layout(cfg *site.Config, meta PageMeta, body templ.Component) templ.Component {
	lang := meta.Lang
	if lang == "" {
		lang = "en"
	}
	description := meta.Description
	if description == "" {
		description = cfg.Description
	}
	ogType := meta.OGType
	if ogType == "" {
		ogType = "website"
	}
	return group(
		templ.Raw("<!DOCTYPE html>"),
		el("html", attrs(at("lang", lang)),
			el("head", nil,
				el("meta", attrs(at("charset", "utf-8"))),
				el("meta", attrs(at("name", "viewport"), at("content", "width=device-width, initial-scale=1.0"))),
				el("title", nil, text(meta.Title)),
				el("meta", attrs(at("name", "description"), at("content", description))),
				canonical(meta.URL),
				el("meta", attrs(at("property", "og:title"), at("content", meta.Title))),
				el("meta", attrs(at("property", "og:type"), at("content", ogType))),
				el("meta", attrs(at("property", "og:description"), at("content", description))),
				el("link", attrs(at("rel", "stylesheet"), at("href", cfg.BaseURL+"css/main.css"))),
				jsonLD(WebsiteJSONLD(cfg)),
			),
			el("body", nil,
				header(cfg, meta),
				el("div", attrs(at("class", "navPusher")),
					body,
					footer(cfg),
				),
			),
		),
	)
}

func canonical(url string) templ.Component {
	if url == "" {
		return nil
	}
	return group(
		el("link", attrs(at("rel", "canonical"), at("href", url))),
		el("meta", attrs(at("property", "og:url"), at("content", url))),
	)
}

func header(cfg *site.Config, meta PageMeta) templ.Component {
	var nav templ.Component
	if len(meta.Languages) > 0 {
		items := make([]templ.Component, 0, len(meta.Languages))
		for _, l := range meta.Languages {
			items = append(items, el("li", attrs(at("class", when(l.Active, "siteNavItemActive"))),
				el("a", attrs(at("href", l.Href), at("hreflang", l.Tag)), text(l.Tag)),
			))
		}
		nav = el("nav", attrs(at("class", "slidingNav")),
			el("ul", attrs(at("class", "nav-site nav-site-internal")), items...),
		)
	}
	return el("div", attrs(at("class", "fixedHeaderContainer")),
		el("div", attrs(at("class", "headerWrapper wrapper")),
			el("header", nil,
				el("a", attrs(at("href", cfg.PageURL("", meta.Lang))),
					el("h2", attrs(at("class", "headerTitle")), text(cfg.Title)),
				),
				nav,
			),
		),
	)
}

func footer(cfg *site.Config) templ.Component {
	copyright := cfg.Copyright
	if copyright == "" {
		copyright = "Copyright © " + strconv.Itoa(time.Now().Year()) + " " + cfg.Title
	}
	return el("footer", attrs(at("class", "nav-footer"), at("id", "footer")),
		el("section", attrs(at("class", "copyright")), text(copyright)),
	)
}

// jsonLD embeds a JSON-LD document. json.Marshal escapes <, > and & so the
// payload cannot terminate the script element.
func jsonLD(payload string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<script type="application/ld+json">`+payload+`</script>`)
		return err
	})
}

// WebsiteJSONLD returns a Schema.org WebSite document for cfg.
func WebsiteJSONLD(cfg *site.Config) string {
	data := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     cfg.Title,
		"url":      cfg.CanonicalURL(cfg.BaseURL),
	}
	if cfg.Description != "" {
		data["description"] = cfg.Description
	} else if cfg.Tagline != "" {
		data["description"] = cfg.Tagline
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
