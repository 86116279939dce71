package demo

import (
	"fmt"
	"image"
	"strconv"

	"colorviz/internal/dataset"
	"colorviz/internal/figure"
	"colorviz/internal/predict"
)

// DefaultTemperatures is the annealed-mean sweep: full expectation at T=1
// down to the distribution mode at T=0.
var DefaultTemperatures = []float64{1, .77, .58, .38, .29, .14, 0}

// AnnealedMeanOptions configures AnnealedMean.
type AnnealedMeanOptions struct {
	// Temperatures to sweep, left to right. Must have odd length so the
	// annealed-mean column sits exactly in the middle. Defaults to
	// DefaultTemperatures.
	Temperatures []float64
	Verbose      bool
}

// AnnealedMean renders one prediction per (image, temperature) pair: row per
// image, column per temperature. The model must expose its decoder
// temperature; the original value is restored before returning.
func AnnealedMean(m predict.Model, imageDir string, opts AnnealedMeanOptions) (image.Image, error) {
	annealer, ok := m.(predict.Annealer)
	if !ok {
		return nil, fmt.Errorf("model does not expose an annealed-mean temperature")
	}

	ts := opts.Temperatures
	if ts == nil {
		ts = DefaultTemperatures
	}
	if len(ts)%2 == 0 {
		return nil, fmt.Errorf("temperature sweep must have odd length, got %d", len(ts))
	}

	dir, err := dataset.Open(imageDir, dataset.Options{})
	if err != nil {
		return nil, err
	}
	imgs, err := dir.Images()
	if err != nil {
		return nil, err
	}

	grid, err := figure.NewGrid(len(imgs), len(ts))
	if err != nil {
		return nil, err
	}

	tOrig := annealer.Temperature()
	defer annealer.SetTemperature(tOrig)

	for c, t := range ts {
		if opts.Verbose {
			fmt.Printf("running prediction for T = %v\n", t)
		}
		annealer.SetTemperature(t)

		for r, img := range imgs {
			pred, err := m.Predict(img)
			if err != nil {
				return nil, fmt.Errorf("predict image %d at T=%v: %w", r+1, t, err)
			}
			if err := grid.SetCell(r, c, pred); err != nil {
				return nil, err
			}
		}
	}

	for c, t := range ts {
		if err := grid.SetTitle(c, sweepTitle(c, len(ts), t)); err != nil {
			return nil, err
		}
	}

	return grid.Render()
}

// sweepTitle captions a temperature column. The first, middle, and last
// columns get special labels; the rest show just the temperature.
func sweepTitle(i, n int, t float64) string {
	special := map[int]string{
		0:     "Mean",
		n / 2: "Annealed Mean",
		n - 1: "Mode",
	}

	line := "T=" + strconv.FormatFloat(t, 'g', -1, 64)
	if t == 0 {
		line = "T→0"
	}
	return special[i] + "\n" + line
}
