package dataset

import (
	"image"

	"github.com/disintegration/imaging"
)

// CenterCrop returns a transform cropping the central size x size region.
func CenterCrop(size int) Transform {
	return func(img image.Image) image.Image {
		return imaging.CropCenter(img, size, size)
	}
}

// Resize returns a transform scaling to the exact target size.
func Resize(width, height int) Transform {
	return func(img image.Image) image.Image {
		return imaging.Resize(img, width, height, imaging.Lanczos)
	}
}

// Grayscale returns a transform dropping chrominance.
func Grayscale() Transform {
	return func(img image.Image) image.Image {
		return imaging.Grayscale(img)
	}
}

// Compose chains transforms left to right.
func Compose(ts ...Transform) Transform {
	return func(img image.Image) image.Image {
		for _, t := range ts {
			if t != nil {
				img = t(img)
			}
		}
		return img
	}
}
