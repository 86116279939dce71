// Command curveplot extracts a loss curve from a training log and renders it
// to a PNG.
package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"

	"github.com/fogleman/gg"

	"colorviz/internal/curve"
	"colorviz/internal/version"
)

func main() {
	logPath := flag.String("log", "", "Training log file")
	pattern := flag.String("pattern", `loss: (\d+\.\d+)`, "Regexp with one capture group matching the loss")
	alpha := flag.Float64("alpha", curve.DefaultSmoothingAlpha, "Exponential smoothing factor")
	out := flag.String("out", "curve.png", "Output PNG path")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("curveplot %s (%s)\n", version.Version, version.GitCommit)
		return
	}

	if *logPath == "" {
		fmt.Println("Usage: curveplot -log <path> [-pattern <regexp>] [-alpha 0.05] [-out curve.png]")
		os.Exit(1)
	}

	re, err := regexp.Compile(*pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid pattern: %v\n", err)
		os.Exit(1)
	}

	f, err := os.Open(*logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	c, err := curve.FromLog(f, re, *alpha)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse log: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Parsed %d loss samples\n", len(c.Losses))

	img, err := c.Render(curve.DefaultPlotOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to render curve: %v\n", err)
		os.Exit(1)
	}
	if err := gg.SavePNG(*out, img); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", *out)
}
