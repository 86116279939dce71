// Command amtgallery renders the human-evaluation best/worst gallery from a
// results directory to a PNG.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fogleman/gg"

	"colorviz/internal/demo"
	"colorviz/internal/predict"
)

func main() {
	resultsDir := flag.String("results", "", "Directory holding results.txt and the rated images")
	rows := flag.Int("rows", 4, "Gallery rows")
	best := flag.Int("best", 3, "Best-scoring pair columns")
	worst := flag.Int("worst", 1, "Worst-scoring pair columns")
	model := flag.String("model", "gray", "Model: gray or replay")
	out := flag.String("out", "gallery.png", "Output PNG path")
	verbose := flag.Bool("v", false, "Print per-image progress")
	flag.Parse()

	if *resultsDir == "" {
		fmt.Println("Usage: amtgallery -results <dir> [-rows 4] [-best 3] [-worst 1] [-out gallery.png]")
		os.Exit(1)
	}

	var m predict.Model
	switch *model {
	case "gray":
		m = predict.Gray{}
	case "replay":
		m = predict.Replay{}
	default:
		fmt.Fprintf(os.Stderr, "Unknown model %q\n", *model)
		os.Exit(1)
	}

	img, err := demo.AMTResults(m, *resultsDir, demo.AMTResultsOptions{
		Rows:         *rows,
		ColumnsBest:  *best,
		ColumnsWorst: *worst,
		Verbose:      *verbose,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Gallery failed: %v\n", err)
		os.Exit(1)
	}

	if err := gg.SavePNG(*out, img); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", *out)
}
