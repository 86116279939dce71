// Package colorutil provides shared color utilities for figure rendering and
// perceptual color conversion.
package colorutil

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Figure palette.
var (
	Black      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	CellGray   = color.RGBA{R: 237, G: 237, B: 237, A: 255}
	Gridline   = color.RGBA{R: 0, G: 0, B: 0, A: 38}
	CurveBlue  = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	CurveRed   = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	CurveGreen = color.RGBA{R: 44, G: 160, B: 44, A: 255}
)

// RGBToLab converts a color to CIELAB in the standard scale (L 0-100, a/b
// centered on zero).
func RGBToLab(c color.Color) (l, a, b float64) {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return 0, 0, 0
	}
	l, a, b = cf.Lab()
	return l * 100, a * 100, b * 100
}

// LabToRGB converts standard-scale CIELAB values to a clamped sRGB color.
func LabToRGB(l, a, b float64) color.RGBA {
	r, g, bb := colorful.Lab(l/100, a/100, b/100).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: bb, A: 255}
}
