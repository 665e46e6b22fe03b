// Package icons rasterizes the embedded SVG icons the UI draws on keys and
// toggle boxes. Icons are white on transparent so the renderer can tint them.
package icons

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	"path"
	"sort"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed svg/*.svg
var assets embed.FS

var ErrUnknownIcon = errors.New("unknown icon")

// Names lists every embedded icon, sorted.
func Names() []string {
	entries, err := assets.ReadDir("svg")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".svg"))
	}
	sort.Strings(names)
	return names
}

// Has reports whether name is an embedded icon.
func Has(name string) bool {
	_, err := assets.ReadFile(path.Join("svg", name+".svg"))
	return err == nil
}

// Rasterize renders the named icon scaled to w by h pixels.
func Rasterize(name string, w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("rasterize %s: invalid size %dx%d", name, w, h)
	}

	data, err := assets.ReadFile(path.Join("svg", name+".svg"))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownIcon, name)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.StrictErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)
	return img, nil
}
