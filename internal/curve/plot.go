package curve

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/inconsolata"

	"colorviz/pkg/colorutil"
)

// PlotOptions configures Render.
type PlotOptions struct {
	Width  int
	Height int
	Color  color.Color // shared by the raw and smoothed curves
}

// DefaultPlotOptions returns the standard figure geometry.
func DefaultPlotOptions() PlotOptions {
	return PlotOptions{
		Width:  1200,
		Height: 800,
		Color:  colorutil.CurveBlue,
	}
}

const (
	plotMarginLeft   = 90.0
	plotMarginRight  = 30.0
	plotMarginTop    = 30.0
	plotMarginBottom = 70.0
)

// Render draws the raw losses semi-transparent and the smoothed curve opaque
// in the same color, against a 1-based iteration axis with a log-scaled
// vertical axis.
func (c *Curve) Render(opts PlotOptions) (image.Image, error) {
	if len(c.Losses) == 0 {
		return nil, fmt.Errorf("empty loss curve")
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range append(append([]float64{}, c.Losses...), c.Smoothed...) {
		if v <= 0 {
			return nil, fmt.Errorf("loss %v not plottable on a log axis", v)
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	// Expand to whole decades so grid lines land on labeled ticks.
	logLo := math.Floor(math.Log10(lo))
	logHi := math.Ceil(math.Log10(hi))
	if logHi == logLo {
		logHi++
	}

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetFontFace(inconsolata.Regular8x16)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	plotW := float64(opts.Width) - plotMarginLeft - plotMarginRight
	plotH := float64(opts.Height) - plotMarginTop - plotMarginBottom

	xPos := func(iter int) float64 {
		if len(c.Losses) == 1 {
			return plotMarginLeft + plotW/2
		}
		return plotMarginLeft + plotW*float64(iter-1)/float64(len(c.Losses)-1)
	}
	yPos := func(v float64) float64 {
		frac := (math.Log10(v) - logLo) / (logHi - logLo)
		return plotMarginTop + plotH*(1-frac)
	}

	// Grid: one line per decade, plus x ticks.
	dc.SetRGBA(0, 0, 0, 0.15)
	dc.SetLineWidth(1)
	for d := logLo; d <= logHi; d++ {
		y := yPos(math.Pow(10, d))
		dc.DrawLine(plotMarginLeft, y, plotMarginLeft+plotW, y)
	}
	xTicks := xTickStep(len(c.Losses))
	for i := xTicks; i <= len(c.Losses); i += xTicks {
		x := xPos(i)
		dc.DrawLine(x, plotMarginTop, x, plotMarginTop+plotH)
	}
	dc.Stroke()

	// Axis labels and tick labels.
	dc.SetRGB(0, 0, 0)
	for d := logLo; d <= logHi; d++ {
		y := yPos(math.Pow(10, d))
		dc.DrawStringAnchored(fmt.Sprintf("1e%.0f", d), plotMarginLeft-8, y, 1, 0.4)
	}
	for i := xTicks; i <= len(c.Losses); i += xTicks {
		dc.DrawStringAnchored(fmt.Sprintf("%d", i), xPos(i), plotMarginTop+plotH+8, 0.5, 1)
	}
	dc.DrawStringAnchored("Iteration", plotMarginLeft+plotW/2, float64(opts.Height)-18, 0.5, 0.5)
	dc.Push()
	dc.RotateAbout(gg.Radians(-90), 24, plotMarginTop+plotH/2)
	dc.DrawStringAnchored("Loss (Log)", 24, plotMarginTop+plotH/2, 0.5, 0.5)
	dc.Pop()

	// Plot frame.
	dc.SetLineWidth(1)
	dc.DrawRectangle(plotMarginLeft, plotMarginTop, plotW, plotH)
	dc.Stroke()

	r, g, b, _ := opts.Color.RGBA()
	line := func(vals []float64, alpha float64) {
		dc.SetRGBA(float64(r)/0xffff, float64(g)/0xffff, float64(b)/0xffff, alpha)
		dc.SetLineWidth(2)
		for i, v := range vals {
			if i == 0 {
				dc.MoveTo(xPos(1), yPos(v))
			} else {
				dc.LineTo(xPos(i+1), yPos(v))
			}
		}
		dc.Stroke()
	}
	line(c.Losses, 0.5)
	line(c.Smoothed, 1)

	return dc.Image(), nil
}

// xTickStep picks a round tick spacing yielding roughly 5-10 ticks.
func xTickStep(n int) int {
	step := 1
	for n/step > 10 {
		switch {
		case n/(step*2) <= 10:
			step *= 2
		case n/(step*5) <= 10:
			step *= 5
		default:
			step *= 10
		}
	}
	return step
}
