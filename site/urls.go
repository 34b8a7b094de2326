package site

import (
	"net/url"
	"strings"
)

// ImgURL returns the URL of an image under the site's img/ directory.
func (c *Config) ImgURL(img string) string {
	return c.BaseURL + "img/" + img
}

// DocURL returns the URL of a documentation page, prefixed with lang when
// lang is non-empty.
func (c *Config) DocURL(doc, lang string) string {
	return c.BaseURL + "docs/" + langPrefix(lang) + doc
}

// PageURL returns the URL of a site page, prefixed with lang when lang is
// non-empty.
func (c *Config) PageURL(page, lang string) string {
	return c.BaseURL + langPrefix(lang) + page
}

// Resolve makes link absolute against the base URL. Links that already carry
// a scheme are returned unchanged.
func (c *Config) Resolve(link string) string {
	if link == "" {
		return ""
	}
	if u, err := url.Parse(link); err == nil && u.Scheme != "" {
		return link
	}
	return c.BaseURL + strings.TrimPrefix(link, "/")
}

// CanonicalURL joins the configured origin with a site-relative URL such as
// the ones PageURL returns.
func (c *Config) CanonicalURL(rel string) string {
	return c.URL + rel
}

func langPrefix(lang string) string {
	if lang == "" {
		return ""
	}
	return lang + "/"
}

// AssetURL resolves an image reference from the configuration. Bare file
// names live under img/; absolute paths and full URLs are used as given.
func (c *Config) AssetURL(img string) string {
	if img == "" || strings.HasPrefix(img, "/") {
		return img
	}
	if u, err := url.Parse(img); err == nil && u.Scheme != "" {
		return img
	}
	return c.ImgURL(img)
}
