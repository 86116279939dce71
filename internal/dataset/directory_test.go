package dataset

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{200, 100, 50, 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestOpenFlatDirectory(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "b.png"), 4, 4)
	writePNG(t, filepath.Join(dir, "a.png"), 4, 4)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := Open(dir, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if d.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (non-images skipped)", d.Len())
	}

	// Single pass in lexicographic order, label -1, then io.EOF.
	for i := 0; i < 2; i++ {
		img, label, err := d.Next()
		if err != nil {
			t.Fatalf("Next %d: %v", i, err)
		}
		if img == nil || label != -1 {
			t.Errorf("Next %d: label = %d, want -1", i, label)
		}
	}
	if _, _, err := d.Next(); err != io.EOF {
		t.Errorf("exhausted Next() error = %v, want io.EOF", err)
	}
	if _, _, err := d.Next(); err != io.EOF {
		t.Error("iterator must stay exhausted")
	}
}

func TestOpenLabeled(t *testing.T) {
	dir := t.TempDir()
	for _, class := range []string{"dog", "cat"} {
		if err := os.Mkdir(filepath.Join(dir, class), 0o755); err != nil {
			t.Fatal(err)
		}
		writePNG(t, filepath.Join(dir, class, "img.png"), 4, 4)
	}

	d, err := Open(dir, Options{Labeled: true})
	if err != nil {
		t.Fatal(err)
	}
	if got := d.Classes(); len(got) != 2 || got[0] != "cat" || got[1] != "dog" {
		t.Fatalf("Classes() = %v, want sorted [cat dog]", got)
	}

	_, label, err := d.Next()
	if err != nil {
		t.Fatal(err)
	}
	if label != 0 {
		t.Errorf("first label = %d, want 0 (cat)", label)
	}
	_, label, err = d.Next()
	if err != nil {
		t.Fatal(err)
	}
	if label != 1 {
		t.Errorf("second label = %d, want 1 (dog)", label)
	}
}

func TestOpenMissingDirectory(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope"), Options{}); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestTransformApplied(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), 10, 10)

	d, err := Open(dir, Options{Transform: CenterCrop(4)})
	if err != nil {
		t.Fatal(err)
	}
	img, _, err := d.Next()
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 4 {
		t.Errorf("transformed size %dx%d, want 4x4", b.Dx(), b.Dy())
	}
}

func TestImagesDrains(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), 4, 4)
	writePNG(t, filepath.Join(dir, "b.png"), 4, 4)

	d, err := Open(dir, Options{})
	if err != nil {
		t.Fatal(err)
	}
	imgs, err := d.Images()
	if err != nil {
		t.Fatal(err)
	}
	if len(imgs) != 2 {
		t.Fatalf("Images() yielded %d, want 2", len(imgs))
	}
	if _, _, err := d.Next(); err != io.EOF {
		t.Error("Images() must exhaust the iterator")
	}
}

func TestComposeOrder(t *testing.T) {
	tr := Compose(Resize(8, 8), CenterCrop(2))
	img := tr(image.NewRGBA(image.Rect(0, 0, 16, 16)))
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Errorf("composed size %dx%d, want 2x2", b.Dx(), b.Dy())
	}
}
