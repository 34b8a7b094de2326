package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/docsite/site"
)

// Button renders a call-to-action link. An empty target opens in the same
// frame.
func Button(href, target, label string) templ.Component {
	if target == "" {
		target = "_self"
	}
	return el("div", attrs(at("class", "pluginWrapper buttonWrapper")),
		el("a", attrs(at("class", "button"), at("href", href), at("target", target)), text(label)),
	)
}

// SplashContainer wraps the hero banner content.
func SplashContainer(children ...templ.Component) templ.Component {
	return el("div", attrs(at("class", "homeContainer")),
		el("div", attrs(at("class", "homeSplashFade")),
			el("div", attrs(at("class", "wrapper homeWrapper")), children...),
		),
	)
}

// ProjectTitle renders the site title with its tagline.
func ProjectTitle(cfg *site.Config) templ.Component {
	return el("h2", attrs(at("class", "projectTitle")),
		text(cfg.Title),
		el("small", nil, text(cfg.Tagline)),
	)
}

// PromoSection lays out a row of buttons.
func PromoSection(children ...templ.Component) templ.Component {
	return el("div", attrs(at("class", "section promoSection")),
		el("div", attrs(at("class", "promoRow")),
			el("div", attrs(at("class", "pluginRowBlock")), children...),
		),
	)
}

// HomeSplash is the hero banner: title, tagline and the splash buttons with
// documentation links for lang.
func HomeSplash(cfg *site.Config, lang string) templ.Component {
	buttons := make([]templ.Component, 0, len(cfg.Splash.Buttons))
	for _, b := range cfg.Splash.Buttons {
		buttons = append(buttons, Button(splashHref(cfg, b, lang), b.Target, b.Label))
	}
	return SplashContainer(
		el("div", attrs(at("class", "inner")),
			ProjectTitle(cfg),
			PromoSection(buttons...),
		),
	)
}

func splashHref(cfg *site.Config, b site.Link, lang string) string {
	if b.Href != "" {
		return cfg.Resolve(b.Href)
	}
	return cfg.DocURL(b.Doc, lang)
}
