// Package predict defines the contracts for the external colorization
// predictor. The model itself is opaque; the diagnostics only invoke it.
package predict

import (
	"image"

	"colorviz/internal/lab"
)

// Model predicts a full-color image from a raw input image.
type Model interface {
	Predict(img image.Image) (image.Image, error)
}

// LabModel is an optional upgrade for models that can emit their prediction
// directly in the perceptual representation, skipping an sRGB round trip.
type LabModel interface {
	PredictLab(img image.Image) (*lab.Image, error)
}

// Annealer is an optional upgrade for models exposing the annealed-mean
// temperature of their chrominance decoder.
type Annealer interface {
	Temperature() float64
	SetTemperature(t float64)
}

// Classifier predicts a class index from an image.
type Classifier interface {
	Classify(img image.Image) (int, error)
}

// PredictToLab runs the model and returns the prediction in Lab planes,
// using the model's perceptual output when it offers one.
func PredictToLab(m Model, img image.Image) (*lab.Image, error) {
	if lm, ok := m.(LabModel); ok {
		return lm.PredictLab(img)
	}
	pred, err := m.Predict(img)
	if err != nil {
		return nil, err
	}
	return lab.FromImage(pred)
}
