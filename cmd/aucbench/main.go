// Command aucbench scores a colorization baseline over an image directory
// and prints the mean accuracy AUC.
package main

import (
	"flag"
	"fmt"
	"os"

	"colorviz/internal/demo"
	"colorviz/internal/gamut"
	"colorviz/internal/metric"
	"colorviz/internal/predict"
	"colorviz/internal/version"
)

func main() {
	imageDir := flag.String("dir", "", "Directory of ground-truth images")
	model := flag.String("model", "gray", "Baseline model: gray or replay")
	reweigh := flag.Bool("reweigh", false, "Reweigh pixels by inverse class prior")
	priorPath := flag.String("prior", "", "JSON prior table (uniform prior if empty)")
	verbose := flag.Bool("v", false, "Show per-image progress")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("aucbench %s (%s)\n", version.Version, version.GitCommit)
		return
	}

	if *imageDir == "" {
		fmt.Println("Usage: aucbench -dir <path> [-model gray|replay] [-reweigh] [-prior <path>] [-v]")
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

	opts := demo.RawAccuracyOptions{ReweighClasses: *reweigh}
	if *reweigh {
		var g *gamut.Grid
		var err error
		if *priorPath != "" {
			g, err = gamut.Load(*priorPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to load prior: %v\n", err)
				os.Exit(1)
			}
		} else {
			g = gamut.Uniform()
		}
		opts.Gamut = g
	}
	if *verbose {
		opts.Progress = demo.Console("processing image")
	}

	auc, err := demo.RawAccuracyAUC(m, *imageDir, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Benchmark failed: %v\n", err)
		os.Exit(1)
	}

	sweep := metric.DefaultAUCOptions()
	fmt.Printf("Model: %s\n", *model)
	fmt.Printf("Thresholds: [%.0f, %.0f) step %.0f\n", sweep.ThreshMin, sweep.ThreshMax, sweep.ThreshStep)
	fmt.Printf("Class reweighting: %v\n", *reweigh)
	fmt.Printf("AUC: %.4f\n", auc)
}
