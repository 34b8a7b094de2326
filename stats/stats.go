// Package stats counts landing page views per path and language.
// No personal data is stored: the client is reduced to a bot flag and a
// referrer domain.
package stats

import (
	"regexp"
	"strings"
	"time"
)

// View is a single page view.
type View struct {
	Path      string
	Lang      string
	Referrer  string
	Bot       bool
	Timestamp time.Time
}

// PageCount is the number of views for one path.
type PageCount struct {
	Path  string `json:"path"`
	Views int    `json:"views"`
}

// LangCount is the number of views for one language. The default language
// is reported as "".
type LangCount struct {
	Lang  string `json:"lang"`
	Views int    `json:"views"`
}

// Summary is the payload served by the stats endpoint.
type Summary struct {
	Total     int         `json:"total"`
	Bots      int         `json:"bots"`
	Pages     []PageCount `json:"pages"`
	Languages []LangCount `json:"languages"`
}

var botMarkers = []string{
	"bot", "crawler", "spider", "crawl", "slurp", "scrape",
	"googlebot", "bingbot", "yandex", "baidu", "duckduckbot",
	"facebookexternalhit", "twitterbot", "linkedinbot",
	"ahrefsbot", "semrushbot", "mj12bot", "dotbot",
}

// IsBot reports whether the user agent looks like a crawler.
func IsBot(ua string) bool {
	ua = strings.ToLower(ua)
	for _, m := range botMarkers {
		if strings.Contains(ua, m) {
			return true
		}
	}
	return false
}

var referrerDomain = regexp.MustCompile(`^https?://(?:www\.)?([^/:?#]+)`)

// CleanReferrer reduces a referrer URL to its domain, or "Direct" when empty.
func CleanReferrer(ref string) string {
	if ref == "" {
		return "Direct"
	}
	if m := referrerDomain.FindStringSubmatch(ref); len(m) > 1 {
		return strings.ToLower(m[1])
	}
	return "Other"
}
