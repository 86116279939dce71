// Package metric scores predicted chrominance against ground truth: per-pixel
// accuracy within a distance threshold, optionally reweighted by inverse
// class prior, and its mean over a threshold sweep.
package metric

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"colorviz/internal/lab"
)

// Gamut quantizes chrominance values and reports their empirical prior.
// gamut.Grid satisfies this; tests inject synthetic implementations.
type Gamut interface {
	Bin(a, b float64) int
	Prior(q int) float64
}

// Options configures RawAccuracy.
type Options struct {
	// ReweighClasses weights each pixel by the inverse prior of its
	// predicted chrominance bin. Requires Gamut.
	ReweighClasses bool
	Gamut          Gamut
}

// AUCOptions configures the threshold sweep.
type AUCOptions struct {
	ThreshMin  float64 // inclusive
	ThreshMax  float64 // exclusive
	ThreshStep float64

	ReweighClasses bool
	Gamut          Gamut
}

// DefaultAUCOptions returns the published 16-threshold grid (0, 10, ..., 150).
// Reproducing published numbers requires this exact grid.
func DefaultAUCOptions() AUCOptions {
	return AUCOptions{
		ThreshMin:  0,
		ThreshMax:  151,
		ThreshStep: 10,
	}
}

// RawAccuracy returns the fraction of pixels whose predicted chrominance lies
// within thresh (Euclidean ab distance) of the ground truth.
//
// With class reweighting, predicted pixels are quantized into gamut bins and
// weighted by the inverse of the bin prior, with weights normalized to sum to
// one over the image; the result is the weight mass of the within-threshold
// pixels. When no pixel is within threshold the result is 0 in both modes;
// reweighting is skipped entirely in that case.
func RawAccuracy(pred, label lab.AB, thresh float64, opts Options) (float64, error) {
	pr, pc := pred.Dims()
	lr, lc := label.Dims()
	if pr != lr || pc != lc {
		return 0, fmt.Errorf("chrominance shape mismatch: pred %dx%d, label %dx%d", pr, pc, lr, lc)
	}
	if opts.ReweighClasses && opts.Gamut == nil {
		return 0, fmt.Errorf("class reweighting requires a gamut")
	}

	var weights []float64
	if opts.ReweighClasses {
		weights = make([]float64, pr*pc)
		total := 0.0
		for y := 0; y < pr; y++ {
			for x := 0; x < pc; x++ {
				q := opts.Gamut.Bin(pred.A.At(y, x), pred.B.At(y, x))
				w := 1 / opts.Gamut.Prior(q)
				weights[y*pc+x] = w
				total += w
			}
		}
		for i := range weights {
			weights[i] /= total
		}
	}

	within := 0
	weighted := 0.0
	for y := 0; y < pr; y++ {
		for x := 0; x < pc; x++ {
			da := label.A.At(y, x) - pred.A.At(y, x)
			db := label.B.At(y, x) - pred.B.At(y, x)
			if math.Hypot(da, db) <= thresh {
				within++
				if opts.ReweighClasses {
					weighted += weights[y*pc+x]
				}
			}
		}
	}

	if within == 0 {
		return 0, nil
	}
	if opts.ReweighClasses {
		return weighted, nil
	}
	return float64(within) / float64(pr*pc), nil
}

// AUC returns the arithmetic mean of RawAccuracy over the threshold sweep.
// This is a plain discrete mean over the sample thresholds, not a step-size
// weighted integral.
func AUC(pred, label lab.AB, opts AUCOptions) (float64, error) {
	if opts.ThreshStep <= 0 || opts.ThreshMax <= opts.ThreshMin {
		return 0, fmt.Errorf("invalid threshold sweep: [%v, %v) step %v", opts.ThreshMin, opts.ThreshMax, opts.ThreshStep)
	}

	rawOpts := Options{ReweighClasses: opts.ReweighClasses, Gamut: opts.Gamut}

	var accs []float64
	for t := opts.ThreshMin; t < opts.ThreshMax; t += opts.ThreshStep {
		acc, err := RawAccuracy(pred, label, t, rawOpts)
		if err != nil {
			return 0, err
		}
		accs = append(accs, acc)
	}
	return stat.Mean(accs, nil), nil
}
