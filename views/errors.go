package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/docsite/site"
)

// NotFound is the 404 page.
func NotFound(cfg *site.Config) templ.Component {
	return errorPage(cfg, "Page not found", "The page you were looking for does not exist.")
}

// ServerError is the 5xx page.
func ServerError(cfg *site.Config) templ.Component {
	return errorPage(cfg, "Something went wrong", "Please try again in a moment.")
}

func errorPage(cfg *site.Config, heading, message string) templ.Component {
	meta := PageMeta{Title: heading + " · " + cfg.Title}
	return Layout(cfg, meta,
		el("div", attrs(at("class", "mainContainer")),
			Container("both", "", "",
				el("h1", nil, text(heading)),
				el("p", nil, text(message)),
				Button(cfg.BaseURL, "", "Back to "+cfg.Title),
			),
		),
	)
}
