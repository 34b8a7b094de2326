package site

// DefaultButtons are the splash buttons used when the configuration has none.
func DefaultButtons() []Link {
	return []Link{
		{Label: "Get Started", Doc: "get-started"},
		{Label: "What Is This?", Doc: "what-is-this"},
	}
}

// DefaultSections are the landing page sections used when the configuration
// has none: a four-column feature grid, a highlighted callout and a
// "learn how" block.
func DefaultSections() []Block {
	return []Block{
		{
			ID:      "features",
			Padding: "bottom",
			Layout:  "fourColumn",
			Align:   "center",
			Items: []GridItem{
				{
					Title:      "Connect",
					Content:    "[Start communicating](/docs/connect-intro) with other members through Slack and more.",
					Image:      "connect.png",
					ImageAlign: "top",
					ImageLink:  "docs/connect-intro",
				},
				{
					Title:      "User Experience",
					Content:    "[Learn](/docs/ux-intro) about user experience principles and why it matters.",
					Image:      "ux.png",
					ImageAlign: "top",
					ImageLink:  "docs/ux-intro",
				},
			},
		},
		{
			ID:         "feature-callout",
			Padding:    "top",
			Background: "light",
			Align:      "center",
			Items: []GridItem{
				{
					Title:      "Design Process",
					Content:    "[Discover](/docs/product-design-sprint) how to design products so that they are most successful.",
					Image:      "design.png",
					ImageAlign: "left",
					ImageLink:  "/",
				},
			},
		},
		{
			ID:      "learn-how",
			Padding: "top",
			Align:   "center",
			Items: []GridItem{
				{
					Title:      "Software Development",
					Content:    "[Get resources](/docs/webdev-intro) to speed up and simplify the product development process.",
					Image:      "dev.png",
					ImageAlign: "right",
					ImageLink:  "/",
				},
			},
		},
	}
}
