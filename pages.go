package docsite

import (
	"github.com/a-h/templ"

	"github.com/eringen/docsite/site"
	"github.com/eringen/docsite/views"
)

// Page files rendered for every language. The empty name is the index.
const (
	pageIndex = ""
	pageUsers = "users.html"
)

// defaultLanguage names the unprefixed pages in the language switcher.
const defaultLanguage = "default"

var sitePages = []string{pageIndex, pageUsers}

// linkMode selects how the language switcher links are built. Served sites
// route through /lang/:lang so the choice is remembered; exported sites link
// straight to the prefixed pages.
type linkMode int

const (
	linkServed linkMode = iota
	linkStatic
)

func pageMeta(cfg *site.Config, page, lang string, mode linkMode) views.PageMeta {
	meta := views.PageMeta{
		Lang: lang,
	}
	if cfg.URL != "" {
		meta.URL = cfg.CanonicalURL(cfg.PageURL(page, lang))
	}
	if len(cfg.Languages) == 0 {
		return meta
	}
	for _, tag := range append([]string{defaultLanguage}, cfg.Languages...) {
		pageLang := tag
		if tag == defaultLanguage {
			pageLang = ""
		}
		href := cfg.PageURL("", pageLang)
		if mode == linkServed {
			href = cfg.BaseURL + "lang/" + tag
		}
		meta.Languages = append(meta.Languages, views.LanguageLink{
			Tag:    tag,
			Href:   href,
			Active: pageLang == lang,
		})
	}
	return meta
}

func pageComponent(cfg *site.Config, page string, meta views.PageMeta) templ.Component {
	if page == pageUsers {
		return views.UsersPage(cfg, meta)
	}
	return views.IndexPage(cfg, meta)
}

// pageLangs returns the default (unprefixed) language followed by every
// configured language.
func pageLangs(cfg *site.Config) []string {
	return append([]string{""}, cfg.Languages...)
}
