package main

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"os"

	"github.com/disintegration/imaging"
)

// errInputNotFound marks a missing source image, as opposed to one that
// exists but cannot be decoded.
var errInputNotFound = errors.New("input file not found")

// loadSource opens and decodes the master image, normalized to NRGBA so
// that sources without an alpha channel look the same to the resamplers.
// Any failure here is fatal to the whole run.
func loadSource(path string) (*image.NRGBA, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", errInputNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return toNRGBA(img), nil
}

// toNRGBA returns img as a zero-origin *image.NRGBA, copying only when the
// decoder produced a different color model.
func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Bounds().Min == (image.Point{}) {
		return n
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
