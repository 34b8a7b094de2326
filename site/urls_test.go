package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocURL(t *testing.T) {
	cfg := (&Config{Title: "T", BaseURL: "/project/"}).Normalize()
	tests := []struct {
		doc, lang, want string
	}{
		{"get-started", "", "/project/docs/get-started"},
		{"get-started", "en", "/project/docs/en/get-started"},
		{"what-is-this", "fr", "/project/docs/fr/what-is-this"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cfg.DocURL(tt.doc, tt.lang), "DocURL(%q, %q)", tt.doc, tt.lang)
	}
}

func TestPageURL(t *testing.T) {
	cfg := (&Config{Title: "T"}).Normalize()
	assert.Equal(t, "/users.html", cfg.PageURL("users.html", ""))
	assert.Equal(t, "/de/users.html", cfg.PageURL("users.html", "de"))
	assert.Equal(t, "/de/", cfg.PageURL("", "de"))
}

func TestImgURL(t *testing.T) {
	cfg := (&Config{Title: "T", BaseURL: "site"}).Normalize()
	assert.Equal(t, "/site/img/connect.png", cfg.ImgURL("connect.png"))
}

func TestResolve(t *testing.T) {
	cfg := (&Config{Title: "T", BaseURL: "/b/"}).Normalize()
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"/", "/b/"},
		{"docs/ux-intro", "/b/docs/ux-intro"},
		{"/docs/ux-intro", "/b/docs/ux-intro"},
		{"https://example.com/x", "https://example.com/x"},
		{"mailto:hi@example.com", "mailto:hi@example.com"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cfg.Resolve(tt.in), "Resolve(%q)", tt.in)
	}
}

func TestAssetURL(t *testing.T) {
	cfg := (&Config{Title: "T", BaseURL: "/b/"}).Normalize()
	assert.Equal(t, "/b/img/dev.png", cfg.AssetURL("dev.png"))
	assert.Equal(t, "/static/dev.png", cfg.AssetURL("/static/dev.png"))
	assert.Equal(t, "https://cdn.example.com/dev.png", cfg.AssetURL("https://cdn.example.com/dev.png"))
	assert.Equal(t, "", cfg.AssetURL(""))
}

func TestCanonicalURL(t *testing.T) {
	cfg := (&Config{Title: "T", URL: "https://example.org/", BaseURL: "/b/"}).Normalize()
	assert.Equal(t, "https://example.org/b/en/users.html", cfg.CanonicalURL(cfg.PageURL("users.html", "en")))
}
