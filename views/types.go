package views

// PageMeta carries per-page SEO metadata and the language switcher links
// into the document head and header.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" by default
	Lang        string
	Languages   []LanguageLink
}

// LanguageLink is one entry of the header language switcher.
type LanguageLink struct {
	Tag    string
	Href   string
	Active bool
}
