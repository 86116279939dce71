// Package gamut quantizes the ab chrominance plane into a uniform grid of
// bins and pairs it with an empirical prior probability per bin. The prior is
// precomputed externally; this package only loads and indexes it.
package gamut

import (
	"encoding/json"
	"fmt"
	"os"
)

// Default grid covering the sRGB chrominance range.
const (
	DefaultABMin   = -110.0
	DefaultABMax   = 110.0
	DefaultBinSize = 10.0
)

// Grid is a uniform binning of the ab plane with one prior probability per
// bin. It is immutable after construction and safe for concurrent reads.
type Grid struct {
	abMin   float64
	abMax   float64
	binSize float64
	perAxis int
	prior   []float64
}

// New builds a grid with the given geometry and prior table. The prior must
// hold one strictly positive probability per bin.
func New(abMin, abMax, binSize float64, prior []float64) (*Grid, error) {
	if binSize <= 0 || abMax <= abMin {
		return nil, fmt.Errorf("invalid gamut geometry: ab [%v, %v), bin size %v", abMin, abMax, binSize)
	}
	perAxis := int((abMax - abMin) / binSize)
	if float64(perAxis)*binSize < abMax-abMin {
		perAxis++
	}
	if want := perAxis * perAxis; len(prior) != want {
		return nil, fmt.Errorf("prior table has %d entries, grid needs %d", len(prior), want)
	}
	for i, p := range prior {
		if p <= 0 {
			return nil, fmt.Errorf("prior[%d] = %v, must be positive", i, p)
		}
	}
	return &Grid{abMin: abMin, abMax: abMax, binSize: binSize, perAxis: perAxis, prior: prior}, nil
}

// Uniform builds a default-geometry grid with an equal prior over all bins.
func Uniform() *Grid {
	perAxis := int((DefaultABMax - DefaultABMin) / DefaultBinSize)
	n := perAxis * perAxis
	prior := make([]float64, n)
	for i := range prior {
		prior[i] = 1 / float64(n)
	}
	g, _ := New(DefaultABMin, DefaultABMax, DefaultBinSize, prior)
	return g
}

// Load reads an externally precomputed prior table (a JSON array with one
// probability per bin, row-major over the default grid geometry).
func Load(path string) (*Grid, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read prior table: %w", err)
	}
	var prior []float64
	if err := json.Unmarshal(raw, &prior); err != nil {
		return nil, fmt.Errorf("parse prior table %s: %w", path, err)
	}
	g, err := New(DefaultABMin, DefaultABMax, DefaultBinSize, prior)
	if err != nil {
		return nil, fmt.Errorf("prior table %s: %w", path, err)
	}
	return g, nil
}

// Bins returns the total number of bins.
func (g *Grid) Bins() int {
	return g.perAxis * g.perAxis
}

// Bin quantizes a chrominance value to its bin index. Values outside the
// grid clamp to the border bins.
func (g *Grid) Bin(a, b float64) int {
	return g.axis(a)*g.perAxis + g.axis(b)
}

// Prior returns the empirical probability of a bin.
func (g *Grid) Prior(q int) float64 {
	return g.prior[q]
}

func (g *Grid) axis(v float64) int {
	i := int((v - g.abMin) / g.binSize)
	if i < 0 {
		return 0
	}
	if i >= g.perAxis {
		return g.perAxis - 1
	}
	return i
}
