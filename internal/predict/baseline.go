package predict

import (
	"image"

	"gonum.org/v1/gonum/mat"

	"colorviz/internal/lab"
)

// Gray is the no-chrominance baseline: it keeps the input's lightness and
// predicts zero chrominance everywhere. Useful as the floor when
// benchmarking AUC.
type Gray struct{}

// Predict returns the desaturated input.
func (g Gray) Predict(img image.Image) (image.Image, error) {
	l, err := g.PredictLab(img)
	if err != nil {
		return nil, err
	}
	return l.RGBA(), nil
}

// PredictLab returns the desaturated input in Lab planes.
func (Gray) PredictLab(img image.Image) (*lab.Image, error) {
	src, err := lab.FromImage(img)
	if err != nil {
		return nil, err
	}
	h, w := src.Dims()
	return lab.Compose(src.L, lab.AB{A: mat.NewDense(h, w, nil), B: mat.NewDense(h, w, nil)})
}

// Replay is the perfect-prediction reference: it returns the input
// unchanged. Every accuracy metric evaluates to 1 against it.
type Replay struct{}

// Predict returns the input image.
func (Replay) Predict(img image.Image) (image.Image, error) {
	return img, nil
}

// PredictLab returns the input converted to Lab planes.
func (Replay) PredictLab(img image.Image) (*lab.Image, error) {
	return lab.FromImage(img)
}
