package colorutil

import (
	"image/color"
	"math"
	"testing"
)

func TestRGBToLabNeutralAxis(t *testing.T) {
	l, a, b := RGBToLab(color.RGBA{128, 128, 128, 255})
	if math.Abs(a) > 0.5 || math.Abs(b) > 0.5 {
		t.Errorf("gray -> a=%v b=%v, want ~0", a, b)
	}
	if l < 40 || l > 70 {
		t.Errorf("mid gray L = %v, out of plausible range", l)
	}

	l, _, _ = RGBToLab(color.RGBA{255, 255, 255, 255})
	if math.Abs(l-100) > 0.5 {
		t.Errorf("white L = %v, want 100", l)
	}
}

func TestLabRoundTrip(t *testing.T) {
	orig := color.RGBA{200, 80, 40, 255}
	l, a, b := RGBToLab(orig)
	got := LabToRGB(l, a, b)

	if d := int(got.R) - int(orig.R); d < -2 || d > 2 {
		t.Errorf("R round trip %d -> %d", orig.R, got.R)
	}
	if d := int(got.G) - int(orig.G); d < -2 || d > 2 {
		t.Errorf("G round trip %d -> %d", orig.G, got.G)
	}
	if d := int(got.B) - int(orig.B); d < -2 || d > 2 {
		t.Errorf("B round trip %d -> %d", orig.B, got.B)
	}
}

func TestLabToRGBClamps(t *testing.T) {
	c := LabToRGB(50, 500, -500)
	if c.A != 255 {
		t.Errorf("alpha = %d, want 255", c.A)
	}
}
