// Package render turns one generation of a two-dimensional lattice into
// text lines, a grayscale image, or a PNG file on disk. It consumes the
// substrate's read interfaces only and discovers payload capabilities by
// type assertion.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"quanta/lattice"
)

// Text renders each row of a two-dimensional lattice as a line of glyphs.
// Locations without a computed value, or whose payload carries no glyph,
// render as '?'.
func Text[S any](t *lattice.Torus[S], gen lattice.Generation) ([]string, error) {
	dims := t.Dims()
	if len(dims) != 2 {
		return nil, fmt.Errorf("render: text dump needs 2 axes, got %d", len(dims))
	}
	lines := make([]string, 0, dims[0])
	for r := 0; r < dims[0]; r++ {
		var b strings.Builder
		for c := 0; c < dims[1]; c++ {
			cell, err := t.At(r, c)
			if err != nil {
				return nil, err
			}
			ch := '?'
			if s, ok := cell.State(gen); ok {
				if g, ok := any(s).(lattice.Glypher); ok {
					ch = g.Glyph()
				}
			}
			b.WriteRune(ch)
		}
		lines = append(lines, b.String())
	}
	return lines, nil
}

// Info logs one generation's grid via slog, one line per row.
func Info[S any](t *lattice.Torus[S], gen lattice.Generation) error {
	lines, err := Text(t, gen)
	if err != nil {
		return err
	}
	slog.Info("generation", "gen", uint64(gen))
	for _, line := range lines {
		slog.Info("line", "row", line)
	}
	return nil
}

// Gray renders a generation as a grayscale image, one pixel per cell, with
// each payload's GrayValue scaled by ctx. Payloads without the grayscale
// capability, and locations without a computed value, render mid-gray.
func Gray[S any](t *lattice.Torus[S], gen lattice.Generation, ctx float64) (*image.Gray, error) {
	dims := t.Dims()
	if len(dims) != 2 {
		return nil, fmt.Errorf("render: grayscale frame needs 2 axes, got %d", len(dims))
	}
	img := image.NewGray(image.Rect(0, 0, dims[1], dims[0]))
	for r := 0; r < dims[0]; r++ {
		for c := 0; c < dims[1]; c++ {
			cell, err := t.At(r, c)
			if err != nil {
				return nil, err
			}
			v := uint8(128)
			if s, ok := cell.State(gen); ok {
				if gs, ok := any(s).(lattice.GrayScaler); ok {
					v = gs.GrayValue(ctx)
				}
			}
			img.SetGray(c, r, color.Gray{Y: v})
		}
	}
	return img, nil
}

// WritePNG writes the frame into dir, named by its generation number, and
// returns the file path.
func WritePNG(dir string, gen lattice.Generation, img *image.Gray) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("gen_%06d.png", uint64(gen)))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating frame file: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("encoding frame: %w", err)
	}
	return path, nil
}
