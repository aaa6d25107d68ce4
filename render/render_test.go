package render

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"quanta/lattice"
)

// shade is a payload exposing both render capabilities.
type shade struct {
	Level uint8
}

func (s shade) Glyph() rune {
	if s.Level > 127 {
		return '#'
	}
	return '.'
}

func (s shade) GrayValue(ctx float64) uint8 { return s.Level }

// holdRule carries each payload forward unchanged.
type holdRule[S any] struct{}

func (holdRule[S]) Update(region lattice.Region[S], loc *lattice.Cell[S], gen lattice.Generation) (S, error) {
	s, _ := region.State(loc, gen)
	return s, nil
}

func shadeTorus(t *testing.T) *lattice.Torus[shade] {
	t.Helper()
	torus, err := lattice.NewTorus[shade](holdRule[shade]{}, lattice.Orthogonal, []int{2, 3}, 0,
		func(coords []int) shade {
			if coords[0] == 0 {
				return shade{Level: 255}
			}
			return shade{Level: 0}
		})
	if err != nil {
		t.Fatalf("NewTorus: %v", err)
	}
	return torus
}

func TestTextRendersGlyphRows(t *testing.T) {
	torus := shadeTorus(t)

	lines, err := Text(torus, 0)
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	want := []string{"###", "..."}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestTextUnknownGeneration(t *testing.T) {
	torus := shadeTorus(t)

	lines, err := Text(torus, 5)
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	for i, line := range lines {
		if line != "???" {
			t.Errorf("line %d = %q, want %q", i, line, "???")
		}
	}
}

func TestInfo(t *testing.T) {
	torus := shadeTorus(t)
	if err := Info(torus, 0); err != nil {
		t.Fatalf("Info: %v", err)
	}
}

func TestTextRejectsWrongArity(t *testing.T) {
	torus, err := lattice.NewTorus[shade](holdRule[shade]{}, lattice.Orthogonal, []int{2, 2, 2}, 0,
		func([]int) shade { return shade{} })
	if err != nil {
		t.Fatalf("NewTorus: %v", err)
	}
	if _, err := Text(torus, 0); err == nil {
		t.Fatal("expected error for 3-axis lattice")
	}
	if _, err := Gray(torus, 0, 1); err == nil {
		t.Fatal("expected error for 3-axis lattice")
	}
}

func TestGrayPixelValues(t *testing.T) {
	torus := shadeTorus(t)

	img, err := Gray(torus, 0, 1)
	if err != nil {
		t.Fatalf("Gray: %v", err)
	}
	if got := img.Bounds().Dx(); got != 3 {
		t.Fatalf("width = %d, want 3", got)
	}
	if got := img.Bounds().Dy(); got != 2 {
		t.Fatalf("height = %d, want 2", got)
	}
	if v := img.GrayAt(0, 0).Y; v != 255 {
		t.Errorf("pixel (0,0) = %d, want 255", v)
	}
	if v := img.GrayAt(2, 1).Y; v != 0 {
		t.Errorf("pixel (2,1) = %d, want 0", v)
	}
}

func TestGrayUnknownGenerationIsMidGray(t *testing.T) {
	torus := shadeTorus(t)

	img, err := Gray(torus, 9, 1)
	if err != nil {
		t.Fatalf("Gray: %v", err)
	}
	if v := img.GrayAt(1, 1).Y; v != 128 {
		t.Errorf("pixel (1,1) = %d, want 128", v)
	}
}

func TestWritePNG(t *testing.T) {
	torus := shadeTorus(t)
	img, err := Gray(torus, 0, 1)
	if err != nil {
		t.Fatalf("Gray: %v", err)
	}

	dir := t.TempDir()
	path, err := WritePNG(dir, 7, img)
	if err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	if filepath.Base(path) != "gen_000007.png" {
		t.Errorf("file name = %q, want gen_000007.png", filepath.Base(path))
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening frame: %v", err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding frame: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds %v, want %v", decoded.Bounds(), img.Bounds())
	}
}
