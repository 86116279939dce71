// Command figview opens a rendered figure in a window.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
)

func main() {
	path := flag.String("image", "", "Figure PNG to display")
	flag.Parse()

	if *path == "" {
		fmt.Println("Usage: figview -image <path>")
		os.Exit(1)
	}
	if _, err := os.Stat(*path); err != nil {
		fmt.Fprintf(os.Stderr, "Cannot open figure: %v\n", err)
		os.Exit(1)
	}

	a := app.New()
	w := a.NewWindow(filepath.Base(*path))

	img := canvas.NewImageFromFile(*path)
	img.FillMode = canvas.ImageFillContain

	w.SetContent(img)
	w.Resize(fyne.NewSize(1200, 900))
	w.ShowAndRun()
}
