// Package assets copies a site's static directory into a build output,
// downscaling oversized raster images on the way.
package assets

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

const (
	// MaxLogoWidth is the widest showcase logo or feature image kept as-is.
	MaxLogoWidth = 800
	jpegQuality  = 85
)

// Report summarizes a CopyTree run.
type Report struct {
	Copied  int
	Resized int
}

// Options tunes CopyTree.
type Options struct {
	// MaxWidth bounds PNG and JPEG images; 0 means MaxLogoWidth, a negative
	// value disables resizing.
	MaxWidth int
}

// CopyTree copies every regular file under src into dst, preserving the
// relative layout. PNG and JPEG files wider than the configured maximum are
// scaled down, keeping their aspect ratio and format.
func CopyTree(ctx context.Context, src, dst string, opts Options) (Report, error) {
	maxWidth := opts.MaxWidth
	if maxWidth == 0 {
		maxWidth = MaxLogoWidth
	}
	var rep Report
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		out := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(out, 0o755)
		}
		if !d.Type().IsRegular() {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if maxWidth > 0 && isRaster(path) {
			resized, ok, err := Downscale(data, maxWidth)
			if err != nil {
				return fmt.Errorf("%s: %w", rel, err)
			}
			if ok {
				data = resized
				rep.Resized++
			}
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return err
		}
		rep.Copied++
		return nil
	})
	if err != nil {
		return rep, fmt.Errorf("assets: copy %s: %w", src, err)
	}
	return rep, nil
}

func isRaster(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}

// Downscale re-encodes data at maxWidth when the image is wider, reporting
// whether it did. The output keeps the input format.
func Downscale(data []byte, maxWidth int) ([]byte, bool, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, false, fmt.Errorf("decode image config: %w", err)
	}
	if cfg.Width <= maxWidth {
		return data, false, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false, fmt.Errorf("decode image: %w", err)
	}
	bounds := img.Bounds()
	h := bounds.Dy() * maxWidth / bounds.Dx()
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := encode(&buf, dst, format); err != nil {
		return nil, false, err
	}
	return buf.Bytes(), true, nil
}

func encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "png":
		return png.Encode(w, img)
	case "jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	}
	return fmt.Errorf("unsupported image format %q", format)
}
