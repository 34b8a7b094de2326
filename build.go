package docsite

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/eringen/docsite/assets"
	"github.com/eringen/docsite/views"
)

// BuildReport summarizes a static export.
type BuildReport struct {
	Pages  int
	Assets assets.Report
	OutDir string
	HasURL bool
}

// Build writes the site as static files under outDir: every page for the
// default and configured languages, 404.html, sitemap.xml, robots.txt, the
// stylesheet, and a copy of the static directory with oversized images
// scaled down. The output is meant to be published at the site base URL.
func (a *App) Build(ctx context.Context, outDir string) (BuildReport, error) {
	rep, err := a.build(ctx, outDir)
	if err != nil {
		return rep, fmt.Errorf("docsite: build: %w", err)
	}
	a.Logger.Info("site built",
		zap.String("out", outDir),
		zap.Int("pages", rep.Pages),
		zap.Int("assets", rep.Assets.Copied),
		zap.Int("resized", rep.Assets.Resized))
	return rep, nil
}

func (a *App) build(ctx context.Context, outDir string) (BuildReport, error) {
	rep := BuildReport{OutDir: outDir}
	if a.Site() == nil {
		if err := a.Reload(); err != nil {
			return rep, err
		}
	}
	cfg := a.Site()
	rep.HasURL = cfg.URL != ""

	for _, lang := range pageLangs(cfg) {
		for _, page := range sitePages {
			if err := ctx.Err(); err != nil {
				return rep, err
			}
			body, err := renderBytes(ctx, pageComponent(cfg, page, pageMeta(cfg, page, lang, linkStatic)))
			if err != nil {
				return rep, fmt.Errorf("render %q: %w", cfg.PageURL(page, lang), err)
			}
			if err := writeFile(outDir, pageFile(page, lang), body); err != nil {
				return rep, err
			}
			rep.Pages++
		}
	}

	notFound, err := renderBytes(ctx, views.NotFound(cfg))
	if err != nil {
		return rep, fmt.Errorf("render 404: %w", err)
	}
	if err := writeFile(outDir, "404.html", notFound); err != nil {
		return rep, err
	}

	var sitemap bytes.Buffer
	if err := writeSitemap(&sitemap, cfg.URL, cfg); err != nil {
		return rep, fmt.Errorf("sitemap: %w", err)
	}
	if err := writeFile(outDir, "sitemap.xml", sitemap.Bytes()); err != nil {
		return rep, err
	}

	sitemapURL := ""
	if cfg.URL != "" {
		sitemapURL = cfg.CanonicalURL(cfg.BaseURL + "sitemap.xml")
	}
	if err := writeFile(outDir, "robots.txt", []byte(robotsTxt(sitemapURL))); err != nil {
		return rep, err
	}

	css, err := EmbeddedAssets.ReadFile(stylesheetPath)
	if err != nil {
		return rep, err
	}
	if err := writeFile(outDir, filepath.Join("css", "main.css"), css); err != nil {
		return rep, err
	}

	if _, err := os.Stat(a.Config.StaticDir); errors.Is(err, fs.ErrNotExist) {
		a.Logger.Info("no static directory, skipping assets", zap.String("dir", a.Config.StaticDir))
		return rep, nil
	}
	rep.Assets, err = assets.CopyTree(ctx, a.Config.StaticDir, outDir, assets.Options{})
	if err != nil {
		return rep, err
	}
	return rep, nil
}

// pageFile maps a page and language to its path in the export.
func pageFile(page, lang string) string {
	if page == pageIndex {
		page = "index.html"
	}
	return filepath.Join(lang, page)
}

func writeFile(root, rel string, data []byte) error {
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
