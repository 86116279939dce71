package demo

import (
	"fmt"
	"image"
	"math"
	"os"

	"colorviz/internal/figure"
	"colorviz/internal/predict"
	"colorviz/internal/results"
)

// AMTResultsOptions configures AMTResults.
type AMTResultsOptions struct {
	Rows         int
	ColumnsBest  int
	ColumnsWorst int
	Verbose      bool
}

// DefaultAMTResultsOptions returns the standard gallery shape.
func DefaultAMTResultsOptions() AMTResultsOptions {
	return AMTResultsOptions{Rows: 4, ColumnsBest: 3, ColumnsWorst: 1}
}

// AMTResults renders the human-evaluation gallery: (ground truth, prediction)
// pairs for the best-scoring images on the left and the worst on the right,
// split by a vertical divider. Each ground-truth cell is annotated with its
// score. Scores are the fraction of raters fooled by the colorization.
func AMTResults(m predict.Model, resultsDir string, opts AMTResultsOptions) (image.Image, error) {
	table, err := results.Load(resultsDir)
	if err != nil {
		return nil, err
	}
	selected, err := table.Select(opts.Rows, opts.ColumnsBest, opts.ColumnsWorst)
	if err != nil {
		return nil, err
	}

	pairs := opts.ColumnsBest + opts.ColumnsWorst
	grid, err := figure.NewGrid(opts.Rows, pairs*2)
	if err != nil {
		return nil, err
	}

	for c := 0; c < pairs; c++ {
		for r := 0; r < opts.Rows; r++ {
			n := c*opts.Rows + r
			if opts.Verbose {
				fmt.Printf("running prediction for image %d\n", n+1)
			}

			entry := selected[n]
			img, err := readImage(entry.Path)
			if err != nil {
				return nil, err
			}
			pred, err := m.Predict(img)
			if err != nil {
				return nil, fmt.Errorf("predict %s: %w", entry.Path, err)
			}

			if err := grid.SetCell(r, 2*c, img); err != nil {
				return nil, err
			}
			if err := grid.SetCell(r, 2*c+1, pred); err != nil {
				return nil, err
			}
			label := fmt.Sprintf("%.0f%%", math.Round(100*entry.Score))
			if err := grid.SetCellLabel(r, 2*c, label); err != nil {
				return nil, err
			}
		}
	}

	if err := grid.SetDivider(figure.Vertical, 2*opts.ColumnsBest-1); err != nil {
		return nil, err
	}

	for c := 0; c < pairs*2; c++ {
		title := "Ours"
		if c%2 == 0 {
			title = "Ground Truth"
		}
		if err := grid.SetTitle(c, title); err != nil {
			return nil, err
		}
	}
	grid.SetSuptitle("Fooled more often <--", "--> Fooled less often")

	return grid.Render()
}

func readImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
