package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/docsite/site"
)

// Index is the landing page body: the splash followed by the configured
// sections and the showcase.
func Index(cfg *site.Config, lang string) templ.Component {
	sections := make([]templ.Component, 0, len(cfg.Sections)+1)
	for _, b := range cfg.Sections {
		sections = append(sections, Section(cfg, b))
	}
	sections = append(sections, Showcase(cfg, lang))
	return el("div", nil,
		HomeSplash(cfg, lang),
		el("div", attrs(at("class", "mainContainer")), sections...),
	)
}

// IndexPage is Index wrapped in the full document layout.
func IndexPage(cfg *site.Config, meta PageMeta) templ.Component {
	if meta.Title == "" {
		meta.Title = cfg.Title
		if cfg.Tagline != "" {
			meta.Title += " · " + cfg.Tagline
		}
	}
	return Layout(cfg, meta, Index(cfg, meta.Lang))
}

// UsersPage is Users wrapped in the full document layout.
func UsersPage(cfg *site.Config, meta PageMeta) templ.Component {
	if meta.Title == "" {
		meta.Title = "Users · " + cfg.Title
	}
	return Layout(cfg, meta, Users(cfg, meta.Lang))
}
