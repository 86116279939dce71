package curve

import (
	"math"
	"regexp"
	"strings"
	"testing"
)

func TestFromLogSkipsUnmatchedLines(t *testing.T) {
	log := strings.Join([]string{
		"iteration 1 loss: 0.75",
		"saving checkpoint",
		"iteration 2 loss: 0.50",
	}, "\n")

	c, err := FromLog(strings.NewReader(log), regexp.MustCompile(`loss: (\d+\.\d+)`), DefaultSmoothingAlpha)
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Losses) != 2 {
		t.Fatalf("got %d samples, want 2", len(c.Losses))
	}
	if c.Losses[0] != 0.75 || c.Losses[1] != 0.50 {
		t.Errorf("samples = %v, want [0.75 0.50] in file order", c.Losses)
	}
}

func TestFromLogRequiresCaptureGroup(t *testing.T) {
	if _, err := FromLog(strings.NewReader(""), regexp.MustCompile(`loss`), 0.05); err == nil {
		t.Fatal("expected error for pattern without capture group")
	}
}

func TestFromLogEmpty(t *testing.T) {
	c, err := FromLog(strings.NewReader("nothing here"), regexp.MustCompile(`loss: (\d+\.\d+)`), 0.05)
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Losses) != 0 || len(c.Smoothed) != 0 {
		t.Errorf("expected empty curve, got %v / %v", c.Losses, c.Smoothed)
	}
}

func TestSmoothExactArithmetic(t *testing.T) {
	got := Smooth([]float64{10, 20, 10, 20}, 0.5)
	want := []float64{10, 15, 12.5, 16.25}

	if len(got) != len(want) {
		t.Fatalf("got %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("smoothed[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSmoothFirstSamplePassesThrough(t *testing.T) {
	got := Smooth([]float64{42}, 0.05)
	if len(got) != 1 || got[0] != 42 {
		t.Errorf("Smooth single sample = %v, want [42]", got)
	}
}

func TestRenderProducesRequestedSize(t *testing.T) {
	c := &Curve{Losses: []float64{10, 5, 2, 1, 0.5}, Smoothed: Smooth([]float64{10, 5, 2, 1, 0.5}, 0.5)}

	img, err := c.Render(DefaultPlotOptions())
	if err != nil {
		t.Fatal(err)
	}
	b := img.Bounds()
	if b.Dx() != 1200 || b.Dy() != 800 {
		t.Errorf("rendered %dx%d, want 1200x800", b.Dx(), b.Dy())
	}
}

func TestRenderRejectsNonPositiveLoss(t *testing.T) {
	c := &Curve{Losses: []float64{1, 0}, Smoothed: Smooth([]float64{1, 0}, 0.5)}
	if _, err := c.Render(DefaultPlotOptions()); err == nil {
		t.Fatal("expected error for non-positive loss on log axis")
	}
}

func TestRenderEmpty(t *testing.T) {
	c := &Curve{}
	if _, err := c.Render(DefaultPlotOptions()); err == nil {
		t.Fatal("expected error for empty curve")
	}
}
