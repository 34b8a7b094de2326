package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/docsite/markdown"
	"github.com/eringen/docsite/site"
)

// Container is a padded, optionally tinted page band.
func Container(padding, id, background string, children ...templ.Component) templ.Component {
	class := classNames(
		"container",
		when(background == "dark", "darkBackground"),
		when(background == "highlight", "highlightBackground"),
		when(background == "light", "lightBackground"),
		when(padding == "bottom" || padding == "both", "paddingBottom"),
		when(padding == "top" || padding == "both", "paddingTop"),
	)
	return el("div", attrs(at("class", class), at("id", id)),
		el("div", attrs(at("class", "wrapper")), children...),
	)
}

// GridBlock renders items as a grid of image/title/content cells.
func GridBlock(cfg *site.Config, align, layout string, items []site.GridItem) templ.Component {
	cells := make([]templ.Component, 0, len(items))
	for _, item := range items {
		cells = append(cells, gridCell(cfg, align, layout, item))
	}
	return el("div", attrs(at("class", "gridBlock")), cells...)
}

func gridCell(cfg *site.Config, align, layout string, item site.GridItem) templ.Component {
	imageAlign := item.ImageAlign
	if item.Image != "" && imageAlign == "" {
		imageAlign = "top"
	}
	hasImage := item.Image != ""
	class := classNames(
		"blockElement",
		when(align == "center", "alignCenter"),
		when(align == "right", "alignRight"),
		layoutClass(layout),
		when(hasImage && (imageAlign == "left" || imageAlign == "right"), "imageAlignSide"),
		when(hasImage, imageAlignClass(imageAlign)),
	)

	var before, after templ.Component
	if hasImage {
		img := blockImage(cfg, item, imageAlign)
		if imageAlign == "bottom" || imageAlign == "right" {
			after = img
		} else {
			before = img
		}
	}

	return el("div", attrs(at("class", class)),
		before,
		el("div", attrs(at("class", "blockContent")),
			blockTitle(item.Title),
			el("div", nil, markdown.Markdown(item.Content)),
		),
		after,
	)
}

func blockTitle(title string) templ.Component {
	if title == "" {
		return nil
	}
	return el("h2", nil, templ.Raw(markdown.Inline(title)))
}

func blockImage(cfg *site.Config, item site.GridItem, imageAlign string) templ.Component {
	img := el("img", attrs(at("src", cfg.AssetURL(item.Image)), atKeep("alt", item.Title)))
	if link := cfg.Resolve(item.ImageLink); link != "" {
		img = el("a", attrs(at("href", link)), img)
	}
	return el("div", attrs(at("class", classNames("blockImage", imageAlign))), img)
}

func layoutClass(layout string) string {
	switch layout {
	case "twoColumn":
		return "twoByGridBlock"
	case "threeColumn":
		return "threeByGridBlock"
	case "fourColumn":
		return "fourByGridBlock"
	}
	return ""
}

func imageAlignClass(align string) string {
	switch align {
	case "top":
		return "imageAlignTop"
	case "bottom":
		return "imageAlignBottom"
	case "left":
		return "imageAlignLeft"
	case "right":
		return "imageAlignRight"
	}
	return ""
}

// BlockTop is a top-padded band holding a grid.
func BlockTop(cfg *site.Config, b site.Block) templ.Component {
	return Container("top", b.ID, b.Background, GridBlock(cfg, alignOr(b.Align), b.Layout, b.Items))
}

// BlockBottom is a bottom-padded band holding a grid.
func BlockBottom(cfg *site.Config, b site.Block) templ.Component {
	return Container("bottom", b.ID, b.Background, GridBlock(cfg, alignOr(b.Align), b.Layout, b.Items))
}

// Section renders a configured block with the padding it asks for.
func Section(cfg *site.Config, b site.Block) templ.Component {
	switch b.Padding {
	case "top":
		return BlockTop(cfg, b)
	case "bottom":
		return BlockBottom(cfg, b)
	}
	return Container(b.Padding, b.ID, b.Background, GridBlock(cfg, alignOr(b.Align), b.Layout, b.Items))
}

func alignOr(align string) string {
	if align == "" {
		return "center"
	}
	return align
}
