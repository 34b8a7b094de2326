package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// attr is a single HTML attribute. Attributes with an empty value are
// dropped unless keep is set.
type attr struct {
	key, val string
	keep     bool
}

func at(key, val string) attr { return attr{key: key, val: val} }

// atKeep emits the attribute even when val is empty (alt="").
func atKeep(key, val string) attr { return attr{key: key, val: val, keep: true} }

func attrs(a ...attr) []attr { return a }

var voidElements = map[string]bool{
	"img": true, "meta": true, "link": true, "br": true, "hr": true,
}

// el renders <tag attrs>children</tag>. href and src values go through
// templ.URL so unsafe schemes are neutralized.
func el(tag string, as []attr, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteByte('<')
		b.WriteString(tag)
		for _, a := range as {
			if a.val == "" && !a.keep {
				continue
			}
			val := a.val
			if a.key == "href" || a.key == "src" {
				val = string(templ.URL(val))
			}
			b.WriteByte(' ')
			b.WriteString(a.key)
			b.WriteString(`="`)
			b.WriteString(templ.EscapeString(val))
			b.WriteByte('"')
		}
		b.WriteByte('>')
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if voidElements[tag] {
			return nil
		}
		for _, c := range children {
			if c == nil {
				continue
			}
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</"+tag+">")
		return err
	})
}

// text renders s escaped.
func text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// group renders children in order with no wrapper.
func group(children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, c := range children {
			if c == nil {
				continue
			}
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// classNames joins the non-empty class names with spaces.
func classNames(names ...string) string {
	kept := names[:0:0]
	for _, n := range names {
		if n != "" {
			kept = append(kept, n)
		}
	}
	return strings.Join(kept, " ")
}

// when returns s if cond holds, "" otherwise. Meant for classNames.
func when(cond bool, s string) string {
	if cond {
		return s
	}
	return ""
}
