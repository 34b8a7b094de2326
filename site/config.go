// Package site holds the site configuration that drives every rendered page:
// title, tagline, base URL, the users shown in the showcase, and the content
// sections of the landing page.
package site

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidConfig is wrapped by every Validate failure.
	ErrInvalidConfig = errors.New("site: invalid config")
	// ErrUnsupportedFormat is returned by Load for unknown file extensions.
	ErrUnsupportedFormat = errors.New("site: unsupported config format")
)

// Config is the read-only site configuration. A Config must not be mutated
// once handed to a renderer; reloads replace it wholesale.
type Config struct {
	Title       string   `json:"title" yaml:"title" toml:"title"`
	Tagline     string   `json:"tagline" yaml:"tagline" toml:"tagline"`
	BaseURL     string   `json:"baseUrl" yaml:"baseUrl" toml:"baseUrl"`
	URL         string   `json:"url" yaml:"url" toml:"url"`
	Description string   `json:"description" yaml:"description" toml:"description"`
	Copyright   string   `json:"copyright" yaml:"copyright" toml:"copyright"`
	Languages   []string `json:"languages" yaml:"languages" toml:"languages"`
	Users       []User   `json:"users" yaml:"users" toml:"users"`
	Splash      Splash   `json:"splash" yaml:"splash" toml:"splash"`
	Sections    []Block  `json:"sections" yaml:"sections" toml:"sections"`
}

// User is an adopter shown in the showcase.
type User struct {
	Image    string `json:"image" yaml:"image" toml:"image"`
	Caption  string `json:"caption" yaml:"caption" toml:"caption"`
	InfoLink string `json:"infoLink" yaml:"infoLink" toml:"infoLink"`
	Pinned   bool   `json:"pinned" yaml:"pinned" toml:"pinned"`
}

// Splash configures the hero banner buttons.
type Splash struct {
	Buttons []Link `json:"buttons" yaml:"buttons" toml:"buttons"`
}

// Link is a splash button. Doc names a documentation page and is resolved
// with the page language; Href, when set, wins and is resolved against the
// base URL instead.
type Link struct {
	Label  string `json:"label" yaml:"label" toml:"label"`
	Doc    string `json:"doc" yaml:"doc" toml:"doc"`
	Href   string `json:"href" yaml:"href" toml:"href"`
	Target string `json:"target" yaml:"target" toml:"target"`
}

// Block is one padded landing-page section holding a grid of items.
type Block struct {
	ID         string     `json:"id" yaml:"id" toml:"id"`
	Padding    string     `json:"padding" yaml:"padding" toml:"padding"`          // "top", "bottom" or "both"
	Background string     `json:"background" yaml:"background" toml:"background"` // "", "light", "dark", "highlight"
	Layout     string     `json:"layout" yaml:"layout" toml:"layout"`             // "twoColumn", "threeColumn", "fourColumn"
	Align      string     `json:"align" yaml:"align" toml:"align"`
	Items      []GridItem `json:"items" yaml:"items" toml:"items"`
}

// GridItem is a single cell of a grid block. Content is markdown.
type GridItem struct {
	Title      string `json:"title" yaml:"title" toml:"title"`
	Content    string `json:"content" yaml:"content" toml:"content"`
	Image      string `json:"image" yaml:"image" toml:"image"`
	ImageAlign string `json:"imageAlign" yaml:"imageAlign" toml:"imageAlign"`
	ImageLink  string `json:"imageLink" yaml:"imageLink" toml:"imageLink"`
}

// Normalize fills defaults in place and returns c for chaining.
func (c *Config) Normalize() *Config {
	base := strings.TrimSpace(c.BaseURL)
	if !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	c.BaseURL = base
	c.URL = strings.TrimSuffix(strings.TrimSpace(c.URL), "/")
	if c.Users == nil {
		c.Users = []User{}
	}
	if len(c.Splash.Buttons) == 0 {
		c.Splash.Buttons = DefaultButtons()
	}
	if len(c.Sections) == 0 {
		c.Sections = DefaultSections()
	}
	return c
}

var (
	validLayouts     = map[string]bool{"": true, "twoColumn": true, "threeColumn": true, "fourColumn": true}
	validBackgrounds = map[string]bool{"": true, "light": true, "dark": true, "highlight": true}
	validPadding     = map[string]bool{"": true, "top": true, "bottom": true, "both": true}

	// ReservedSegments are path segments under the base URL that the site
	// serves itself and therefore cannot be language tags.
	ReservedSegments = []string{"lang", "css", "img", "docs", "default"}
)

// Validate reports the first structural problem in c.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidConfig)
	}
	for _, lang := range c.Languages {
		if lang == "" || strings.ContainsAny(lang, "/.?#") {
			return fmt.Errorf("%w: invalid language tag %q", ErrInvalidConfig, lang)
		}
		for _, seg := range ReservedSegments {
			if lang == seg {
				return fmt.Errorf("%w: language tag %q collides with a reserved path", ErrInvalidConfig, lang)
			}
		}
	}
	for i, b := range c.Sections {
		if !validLayouts[b.Layout] {
			return fmt.Errorf("%w: sections[%d]: unknown layout %q", ErrInvalidConfig, i, b.Layout)
		}
		if !validBackgrounds[b.Background] {
			return fmt.Errorf("%w: sections[%d]: unknown background %q", ErrInvalidConfig, i, b.Background)
		}
		if !validPadding[b.Padding] {
			return fmt.Errorf("%w: sections[%d]: unknown padding %q", ErrInvalidConfig, i, b.Padding)
		}
	}
	return nil
}

// PinnedUsers returns the users flagged for the landing page showcase,
// in configuration order.
func (c *Config) PinnedUsers() []User {
	var pinned []User
	for _, u := range c.Users {
		if u.Pinned {
			pinned = append(pinned, u)
		}
	}
	return pinned
}

// HasLanguage reports whether lang is one of the configured languages.
func (c *Config) HasLanguage(lang string) bool {
	for _, l := range c.Languages {
		if l == lang {
			return true
		}
	}
	return false
}
