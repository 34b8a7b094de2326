package docsite

import "embed"

// EmbeddedAssets contains the default stylesheet served at css/main.css
// under the site base URL.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS

const stylesheetPath = "embedded/main.css"
