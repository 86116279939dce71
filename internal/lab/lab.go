// Package lab converts images to and from the CIELAB representation used for
// chrominance accuracy scoring. Planes use the standard scale: L in [0, 100],
// a and b centered on zero (roughly [-110, 110] for sRGB inputs).
package lab

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/mat"

	"colorviz/pkg/colorutil"
)

// AB is a chrominance pair: two equal-shaped planes.
type AB struct {
	A *mat.Dense
	B *mat.Dense
}

// Dims returns the plane dimensions.
func (ab AB) Dims() (rows, cols int) {
	return ab.A.Dims()
}

// Image is a decomposed CIELAB image.
type Image struct {
	L *mat.Dense
	A *mat.Dense
	B *mat.Dense
}

// Dims returns the image dimensions in pixels.
func (im *Image) Dims() (rows, cols int) {
	return im.L.Dims()
}

// AB returns the chrominance planes of the image.
func (im *Image) AB() AB {
	return AB{A: im.A, B: im.B}
}

// FromImage converts an RGB image to CIELAB planes. The conversion runs
// through OpenCV on a float mat so the output is in the standard Lab scale.
func FromImage(src image.Image) (*Image, error) {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("empty image")
	}

	bgr := imageToMat(src)
	defer bgr.Close()

	f32 := gocv.NewMat()
	defer f32.Close()
	bgr.ConvertToWithParams(&f32, gocv.MatTypeCV32FC3, 1.0/255.0, 0)

	labMat := gocv.NewMat()
	defer labMat.Close()
	gocv.CvtColor(f32, &labMat, gocv.ColorBGRToLab)

	im := &Image{
		L: mat.NewDense(h, w, nil),
		A: mat.NewDense(h, w, nil),
		B: mat.NewDense(h, w, nil),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := labMat.GetVecfAt(y, x)
			im.L.Set(y, x, float64(v[0]))
			im.A.Set(y, x, float64(v[1]))
			im.B.Set(y, x, float64(v[2]))
		}
	}
	return im, nil
}

// Compose attaches chrominance planes to a lightness plane. The planes must
// share dimensions.
func Compose(l *mat.Dense, ab AB) (*Image, error) {
	lr, lc := l.Dims()
	ar, ac := ab.Dims()
	if lr != ar || lc != ac {
		return nil, fmt.Errorf("plane size mismatch: L %dx%d, ab %dx%d", lr, lc, ar, ac)
	}
	return &Image{L: l, A: ab.A, B: ab.B}, nil
}

// RGBA renders the Lab image back to sRGB.
func (im *Image) RGBA() *image.RGBA {
	h, w := im.Dims()
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := colorutil.LabToRGB(im.L.At(y, x), im.A.At(y, x), im.B.At(y, x))
			i := out.PixOffset(x, y)
			out.Pix[i+0] = c.R
			out.Pix[i+1] = c.G
			out.Pix[i+2] = c.B
			out.Pix[i+3] = 255
		}
	}
	return out
}

// Lightness renders the L channel as a grayscale image.
func (im *Image) Lightness() *image.Gray {
	h, w := im.Dims()
	out := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := im.L.At(y, x) * 255 / 100
			if v < 0 {
				v = 0
			} else if v > 255 {
				v = 255
			}
			out.Pix[y*out.Stride+x] = uint8(v + 0.5)
		}
	}
	return out
}

// imageToMat converts a Go image to a BGR 8-bit mat.
func imageToMat(src image.Image) gocv.Mat {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	m := gocv.NewMatWithSize(h, w, gocv.MatTypeCV8UC3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			m.SetUCharAt(y, x*3+0, uint8(b>>8))
			m.SetUCharAt(y, x*3+1, uint8(g>>8))
			m.SetUCharAt(y, x*3+2, uint8(r>>8))
		}
	}
	return m
}
