// Package dataset provides a directory-backed image source: a bounded,
// ordered, single-pass sequence of decoded images, optionally labeled by
// subdirectory and preprocessed by a caller-supplied transform.
package dataset

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Transform preprocesses an image before it is yielded.
type Transform func(image.Image) image.Image

// Options configures Open.
type Options struct {
	// Labeled treats the immediate subdirectories (sorted) as classes and
	// yields the class index with each image.
	Labeled   bool
	Transform Transform
}

// Directory is a single-pass iterator over the images in a directory. Order
// is lexicographic by file name and iteration is not restartable.
type Directory struct {
	paths     []string
	labels    []int
	classes   []string
	transform Transform
	pos       int
}

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// Open scans a directory for images.
func Open(dir string, opts Options) (*Directory, error) {
	d := &Directory{transform: opts.Transform}

	if !opts.Labeled {
		paths, err := imageFiles(dir)
		if err != nil {
			return nil, err
		}
		d.paths = paths
		d.labels = make([]int, len(paths))
		for i := range d.labels {
			d.labels[i] = -1
		}
		return d, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dataset directory: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			d.classes = append(d.classes, e.Name())
		}
	}
	sort.Strings(d.classes)

	for label, class := range d.classes {
		paths, err := imageFiles(filepath.Join(dir, class))
		if err != nil {
			return nil, err
		}
		for _, p := range paths {
			d.paths = append(d.paths, p)
			d.labels = append(d.labels, label)
		}
	}
	return d, nil
}

// Len returns the number of images in the sequence.
func (d *Directory) Len() int {
	return len(d.paths)
}

// Classes returns the sorted class names in labeled mode.
func (d *Directory) Classes() []string {
	return d.classes
}

// Next yields the next image and its label (-1 when unlabeled). It returns
// io.EOF after the last image.
func (d *Directory) Next() (image.Image, int, error) {
	if d.pos >= len(d.paths) {
		return nil, 0, io.EOF
	}
	path := d.paths[d.pos]
	label := d.labels[d.pos]
	d.pos++

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, 0, fmt.Errorf("decode %s: %w", path, err)
	}
	if d.transform != nil {
		img = d.transform(img)
	}
	return img, label, nil
}

// Images drains the remaining sequence into memory. Demos that sweep a model
// parameter over the same inputs use this instead of re-reading the
// directory.
func (d *Directory) Images() ([]image.Image, error) {
	var imgs []image.Image
	for {
		img, _, err := d.Next()
		if err == io.EOF {
			return imgs, nil
		}
		if err != nil {
			return nil, err
		}
		imgs = append(imgs, img)
	}
}

func imageFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read image directory: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if imageExts[strings.ToLower(filepath.Ext(e.Name()))] {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
