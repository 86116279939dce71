package demo

import (
	"fmt"
	"image"

	"colorviz/internal/dataset"
	"colorviz/internal/figure"
	"colorviz/internal/lab"
	"colorviz/internal/predict"
)

// GoodVsBadOptions configures GoodVsBad.
type GoodVsBadOptions struct {
	Verbose bool
}

// GoodVsBad compares two model variants on a block of good examples stacked
// above a block of bad ones: per row the grayscale input, the plain
// prediction, the class-rebalanced prediction, and the ground truth. A
// horizontal divider separates the blocks. Both directories must hold an odd
// number of images so each block has a visual center row.
func GoodVsBad(plain, rebalanced predict.Model, goodDir, badDir string, opts GoodVsBadOptions) (image.Image, error) {
	good, err := loadBlock(goodDir)
	if err != nil {
		return nil, err
	}
	bad, err := loadBlock(badDir)
	if err != nil {
		return nil, err
	}

	grid, err := figure.NewGrid(len(good)+len(bad), 4)
	if err != nil {
		return nil, err
	}

	for r, img := range append(good, bad...) {
		if opts.Verbose {
			fmt.Printf("running prediction for image %d\n", r+1)
		}

		src, err := lab.FromImage(img)
		if err != nil {
			return nil, fmt.Errorf("image %d: %w", r+1, err)
		}
		predPlain, err := plain.Predict(img)
		if err != nil {
			return nil, fmt.Errorf("predict image %d: %w", r+1, err)
		}
		predRebal, err := rebalanced.Predict(img)
		if err != nil {
			return nil, fmt.Errorf("predict image %d (rebalanced): %w", r+1, err)
		}

		cells := []image.Image{src.Lightness(), predPlain, predRebal, img}
		for c, cell := range cells {
			if err := grid.SetCell(r, c, cell); err != nil {
				return nil, err
			}
		}
	}

	if err := grid.SetDivider(figure.Horizontal, len(good)-1); err != nil {
		return nil, err
	}

	titles := []string{"Input", "Classification", "Classification\n(w/ Rebalancing)", "Ground Truth"}
	for c, title := range titles {
		if err := grid.SetTitle(c, title); err != nil {
			return nil, err
		}
	}

	return grid.Render()
}

func loadBlock(dir string) ([]image.Image, error) {
	d, err := dataset.Open(dir, dataset.Options{})
	if err != nil {
		return nil, err
	}
	imgs, err := d.Images()
	if err != nil {
		return nil, err
	}
	if len(imgs)%2 == 0 {
		return nil, fmt.Errorf("%s holds %d images, want an odd number", dir, len(imgs))
	}
	return imgs, nil
}
