package figure

import (
	"image"
	"image/color"
	"testing"
)

func solid(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestNewGridValidation(t *testing.T) {
	if _, err := NewGrid(0, 3); err == nil {
		t.Error("expected error for zero rows")
	}
	if _, err := NewGrid(2, -1); err == nil {
		t.Error("expected error for negative columns")
	}
}

func TestSetCellBounds(t *testing.T) {
	g, err := NewGrid(2, 3)
	if err != nil {
		t.Fatal(err)
	}

	img := solid(4, 4, color.White)
	if err := g.SetCell(1, 2, img); err != nil {
		t.Errorf("SetCell in bounds: %v", err)
	}
	if err := g.SetCell(2, 0, img); err == nil {
		t.Error("expected error for row out of bounds")
	}
	if err := g.SetCell(0, 3, img); err == nil {
		t.Error("expected error for column out of bounds")
	}
}

func TestSetDividerValidation(t *testing.T) {
	g, err := NewGrid(4, 3)
	if err != nil {
		t.Fatal(err)
	}

	if err := g.SetDivider(Horizontal, 2); err != nil {
		t.Errorf("horizontal divider after row 2: %v", err)
	}
	if err := g.SetDivider(Horizontal, 3); err == nil {
		t.Error("expected error for divider after last row")
	}
	if err := g.SetDivider(Vertical, 1); err != nil {
		t.Errorf("vertical divider after column 1: %v", err)
	}
	if err := g.SetDivider(Vertical, 2); err == nil {
		t.Error("expected error for divider after last column")
	}
	if err := g.SetDivider(Orientation(7), 0); err == nil {
		t.Error("expected error for unknown orientation")
	}
}

func TestRenderGeometry(t *testing.T) {
	g, err := NewGrid(2, 4)
	if err != nil {
		t.Fatal(err)
	}
	for r := 0; r < 2; r++ {
		for c := 0; c < 4; c++ {
			if err := g.SetCell(r, c, solid(32, 32, color.RGBA{uint8(60 * c), 0, 0, 255})); err != nil {
				t.Fatal(err)
			}
		}
	}

	img, err := g.Render()
	if err != nil {
		t.Fatal(err)
	}

	// No titles, labels, or suptitle: width is the fixed figure width and
	// height follows from square cells.
	cellW := (1200 - 3*6) / 4
	wantH := 2*cellW + 6
	b := img.Bounds()
	if b.Dx() != 1200 {
		t.Errorf("width = %d, want 1200", b.Dx())
	}
	if b.Dy() != wantH {
		t.Errorf("height = %d, want %d", b.Dy(), wantH)
	}
}

func TestRenderWithDecorations(t *testing.T) {
	g, err := NewGrid(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.SetTitle(0, "Input"); err != nil {
		t.Fatal(err)
	}
	if err := g.SetTitle(1, "Ours\nT=0.38"); err != nil {
		t.Fatal(err)
	}
	if err := g.SetCellLabel(0, 0, "82%"); err != nil {
		t.Fatal(err)
	}
	if err := g.SetCellLabel(2, 0, "x"); err == nil {
		t.Error("expected error for label row out of bounds")
	}
	g.SetSuptitle("Fooled more often <--", "--> Fooled less often")
	if err := g.SetDivider(Horizontal, 0); err != nil {
		t.Fatal(err)
	}

	img, err := g.Render()
	if err != nil {
		t.Fatal(err)
	}

	// Decorated figures keep the fixed width and grow by the title band
	// (two lines) and the suptitle band.
	b := img.Bounds()
	if b.Dx() != 1200 {
		t.Errorf("width = %d, want 1200", b.Dx())
	}
	cellW := (1200 - 6) / 2
	if b.Dy() <= 2*cellW+6 {
		t.Errorf("height = %d, want taller than bare grid", b.Dy())
	}
}

func TestRenderEmptyCellsAllowed(t *testing.T) {
	g, err := NewGrid(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.Render(); err != nil {
		t.Errorf("rendering a grid with empty cells: %v", err)
	}
}
