// Package markdown renders the small markdown dialect used by grid-block
// content: paragraphs, headings, lists, fenced code and inline emphasis,
// code, links and images.
package markdown

import (
	"context"
	"html"
	"io"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

var (
	reBold       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBoldAlt    = regexp.MustCompile(`__(.+?)__`)
	reItalic     = regexp.MustCompile(`\*([^*]+)\*`)
	reItalicAlt  = regexp.MustCompile(`\b_([^_]+)_\b`)
	reCode       = regexp.MustCompile("`([^`]+)`")
	reImage      = regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`)
	reLink       = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
	reOrderedRow = regexp.MustCompile(`^\d+\.\s`)
)

// Markdown returns a component that writes md as HTML.
func Markdown(md string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, ToHTML(md))
		return err
	})
}

type blockKind int

const (
	blockNone blockKind = iota
	blockPara
	blockList
	blockOrdered
	blockCode
)

// ToHTML converts md to HTML. All text is escaped; only the markup produced
// by the converter itself is emitted raw.
func ToHTML(md string) string {
	var b strings.Builder
	open := blockNone

	closeBlock := func() {
		switch open {
		case blockPara:
			b.WriteString("</p>")
		case blockList:
			b.WriteString("</ul>")
		case blockOrdered:
			b.WriteString("</ol>")
		case blockCode:
			b.WriteString("</code></pre>")
		}
		open = blockNone
	}
	openBlock := func(k blockKind, tag string) {
		if open == k {
			return
		}
		closeBlock()
		b.WriteString(tag)
		open = k
	}

	for _, raw := range strings.Split(md, "\n") {
		line := strings.TrimRight(raw, "\r")

		if strings.HasPrefix(line, "```") {
			if open == blockCode {
				closeBlock()
				continue
			}
			closeBlock()
			if lang := strings.TrimSpace(line[3:]); lang != "" {
				b.WriteString(`<pre><code class="language-` + html.EscapeString(lang) + `">`)
			} else {
				b.WriteString("<pre><code>")
			}
			open = blockCode
			continue
		}
		if open == blockCode {
			b.WriteString(html.EscapeString(line))
			b.WriteByte('\n')
			continue
		}

		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			closeBlock()
		case trimmed == "---":
			closeBlock()
			b.WriteString("<hr/>")
		case strings.HasPrefix(trimmed, "### "):
			closeBlock()
			b.WriteString("<h3>" + Inline(trimmed[4:]) + "</h3>")
		case strings.HasPrefix(trimmed, "## "):
			closeBlock()
			b.WriteString("<h2>" + Inline(trimmed[3:]) + "</h2>")
		case strings.HasPrefix(trimmed, "# "):
			closeBlock()
			b.WriteString("<h1>" + Inline(trimmed[2:]) + "</h1>")
		case strings.HasPrefix(trimmed, "- "), strings.HasPrefix(trimmed, "* "):
			openBlock(blockList, "<ul>")
			b.WriteString("<li>" + Inline(trimmed[2:]) + "</li>")
		case reOrderedRow.MatchString(trimmed):
			openBlock(blockOrdered, "<ol>")
			b.WriteString("<li>" + Inline(reOrderedRow.ReplaceAllString(trimmed, "")) + "</li>")
		default:
			if open == blockPara {
				b.WriteByte(' ')
			} else {
				openBlock(blockPara, "<p>")
			}
			b.WriteString(Inline(trimmed))
		}
	}
	closeBlock()
	return b.String()
}

// Inline formats a single line: images, links, inline code, bold and italic.
func Inline(s string) string {
	escaped := html.EscapeString(s)

	// Inline code is swapped for placeholders so emphasis never applies
	// inside backticks.
	var codes []string
	escaped = reCode.ReplaceAllStringFunc(escaped, func(m string) string {
		codes = append(codes, "<code>"+reCode.FindStringSubmatch(m)[1]+"</code>")
		return "\x00" + strconv.Itoa(len(codes)-1) + "\x00"
	})

	escaped = reImage.ReplaceAllStringFunc(escaped, func(m string) string {
		match := reImage.FindStringSubmatch(m)
		src := SafeURL(match[2])
		if src == "" {
			return match[1]
		}
		return `<img src="` + src + `" alt="` + match[1] + `"/>`
	})
	escaped = reLink.ReplaceAllStringFunc(escaped, func(m string) string {
		match := reLink.FindStringSubmatch(m)
		href := SafeURL(match[2])
		if href == "" {
			return match[1]
		}
		return `<a href="` + href + `">` + match[1] + `</a>`
	})

	escaped = outsideTags(escaped, func(seg string) string {
		seg = reBold.ReplaceAllString(seg, "<strong>$1</strong>")
		seg = reBoldAlt.ReplaceAllString(seg, "<strong>$1</strong>")
		seg = reItalic.ReplaceAllString(seg, "<em>$1</em>")
		seg = reItalicAlt.ReplaceAllString(seg, "<em>$1</em>")
		return seg
	})

	for i, code := range codes {
		escaped = strings.Replace(escaped, "\x00"+strconv.Itoa(i)+"\x00", code, 1)
	}
	return escaped
}

// outsideTags applies fn to the text between HTML tags so emphasis patterns
// never rewrite attribute values such as hrefs.
func outsideTags(s string, fn func(string) string) string {
	var b strings.Builder
	for len(s) > 0 {
		lt := strings.IndexByte(s, '<')
		if lt < 0 {
			b.WriteString(fn(s))
			break
		}
		b.WriteString(fn(s[:lt]))
		gt := strings.IndexByte(s[lt:], '>')
		if gt < 0 {
			b.WriteString(s[lt:])
			break
		}
		b.WriteString(s[lt : lt+gt+1])
		s = s[lt+gt+1:]
	}
	return b.String()
}

// SafeURL returns raw escaped for an attribute when it is site-relative or
// uses an allowed scheme, and "" otherwise.
func SafeURL(raw string) string {
	val := strings.TrimSpace(html.UnescapeString(raw))
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") || strings.HasPrefix(val, "./") {
		return html.EscapeString(val)
	}
	parsed, err := url.Parse(val)
	if err != nil {
		return ""
	}
	if parsed.Scheme == "" {
		// Relative page reference such as "docs/intro".
		if strings.Contains(val, ":") {
			return ""
		}
		return html.EscapeString(val)
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto":
		return html.EscapeString(val)
	default:
		return ""
	}
}
