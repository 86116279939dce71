package demo

import (
	"fmt"
	"io"

	"colorviz/internal/dataset"
	"colorviz/internal/lab"
	"colorviz/internal/metric"
	"colorviz/internal/predict"
)

// RawAccuracyOptions configures RawAccuracyAUC.
type RawAccuracyOptions struct {
	// ReweighClasses scores rare colors more heavily using the gamut's
	// inverse prior.
	ReweighClasses bool
	Gamut          metric.Gamut
	Progress       ProgressFunc
}

// RawAccuracyAUC predicts a colorization for every image in a directory and
// returns the mean AUC of chrominance accuracy against the ground truth.
func RawAccuracyAUC(m predict.Model, imageDir string, opts RawAccuracyOptions) (float64, error) {
	dir, err := dataset.Open(imageDir, dataset.Options{})
	if err != nil {
		return 0, err
	}
	if dir.Len() == 0 {
		return 0, fmt.Errorf("no images in %s", imageDir)
	}

	aucOpts := metric.DefaultAUCOptions()
	aucOpts.ReweighClasses = opts.ReweighClasses
	aucOpts.Gamut = opts.Gamut

	total := 0.0
	for i := 0; ; i++ {
		img, _, err := dir.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
		report(opts.Progress, i, dir.Len())

		truth, err := lab.FromImage(img)
		if err != nil {
			return 0, fmt.Errorf("image %d: %w", i+1, err)
		}
		pred, err := predict.PredictToLab(m, img)
		if err != nil {
			return 0, fmt.Errorf("predict image %d: %w", i+1, err)
		}

		auc, err := metric.AUC(pred.AB(), truth.AB(), aucOpts)
		if err != nil {
			return 0, fmt.Errorf("score image %d: %w", i+1, err)
		}
		total += auc
	}

	return total / float64(dir.Len()), nil
}
