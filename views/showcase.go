package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/docsite/site"
)

// Showcase renders the pinned users' logos and a link to the full users
// page. It renders nothing when the site has no users at all.
func Showcase(cfg *site.Config, lang string) templ.Component {
	if len(cfg.Users) == 0 {
		return templ.NopComponent
	}
	return el("div", attrs(at("class", "productShowcaseSection paddingBottom")),
		el("h2", nil, text("Who is Using This?")),
		el("p", nil, text("This project is used by all these people")),
		logos(cfg.PinnedUsers()),
		el("div", attrs(at("class", "more-users")),
			el("a", attrs(at("class", "button"), at("href", cfg.PageURL("users.html", lang))),
				text("More "+cfg.Title+" Users"),
			),
		),
	)
}

func logos(users []site.User) templ.Component {
	links := make([]templ.Component, 0, len(users))
	for _, u := range users {
		links = append(links, el("a", attrs(at("href", u.InfoLink)),
			el("img", attrs(at("src", u.Image), atKeep("alt", u.Caption), at("title", u.Caption))),
		))
	}
	return el("div", attrs(at("class", "logos")), links...)
}

// Users is the body of users.html: every configured user, pinned or not.
func Users(cfg *site.Config, lang string) templ.Component {
	return el("div", attrs(at("class", "mainContainer")),
		Container("both", "users", "",
			el("div", attrs(at("class", "showcaseSection")),
				el("div", attrs(at("class", "prose")),
					el("h1", nil, text("Who is Using This?")),
					el("p", nil, text("This project is used by many folks")),
				),
				logos(cfg.Users),
				el("p", nil,
					el("a", attrs(at("class", "button"), at("href", cfg.PageURL("", lang))),
						text("Back to "+cfg.Title),
					),
				),
			),
		),
	)
}
