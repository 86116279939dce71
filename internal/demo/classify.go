package demo

import (
	"fmt"
	"io"

	"colorviz/internal/dataset"
	"colorviz/internal/predict"
)

// classifierCropSize matches the input size of the downstream classifier.
const classifierCropSize = 224

// ClassificationOptions configures ClassificationAccuracy.
type ClassificationOptions struct {
	// Transform is applied before the standard center crop (e.g. a
	// recolorization step whose effect on classification is being
	// measured).
	Transform dataset.Transform
	Progress  ProgressFunc
}

// ClassificationAccuracy runs a classifier over a labeled directory and
// returns the fraction of correct top-1 predictions.
func ClassificationAccuracy(c predict.Classifier, imageDir string, opts ClassificationOptions) (float64, error) {
	transform := dataset.Compose(opts.Transform, dataset.CenterCrop(classifierCropSize))

	dir, err := dataset.Open(imageDir, dataset.Options{Labeled: true, Transform: transform})
	if err != nil {
		return 0, err
	}
	if dir.Len() == 0 {
		return 0, fmt.Errorf("no labeled images in %s", imageDir)
	}

	correct := 0
	for i := 0; ; i++ {
		img, label, err := dir.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
		report(opts.Progress, i, dir.Len())

		got, err := c.Classify(img)
		if err != nil {
			return 0, fmt.Errorf("classify image %d: %w", i+1, err)
		}
		if got == label {
			correct++
		}
	}

	return float64(correct) / float64(dir.Len()), nil
}
