package main

import (
	"fmt"
	"image"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

// scaler resamples a source image to an exact size×size square.
type scaler interface {
	Scale(src image.Image, size int) *image.NRGBA
}

// drawScaler wraps a golang.org/x/image/draw kernel. Used for the sharp
// filters, where nearest-neighbor keeps hard pixel edges on small icons.
type drawScaler struct {
	k xdraw.Scaler
}

func (s drawScaler) Scale(src image.Image, size int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	s.k.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// imagingScaler wraps a disintegration/imaging resample filter. Used for
// the smooth filters on the container layers.
type imagingScaler struct {
	f imaging.ResampleFilter
}

func (s imagingScaler) Scale(src image.Image, size int) *image.NRGBA {
	return imaging.Resize(src, size, size, s.f)
}

var scalers = map[string]scaler{
	"nearest":         drawScaler{xdraw.NearestNeighbor},
	"approx-bilinear": drawScaler{xdraw.ApproxBiLinear},
	"bilinear":        drawScaler{xdraw.BiLinear},
	"catmull-rom":     drawScaler{xdraw.CatmullRom},
	"box":             imagingScaler{imaging.Box},
	"lanczos":         imagingScaler{imaging.Lanczos},
}

// resolveScaler maps a configured filter name to its implementation.
// Unknown names fail here, before any output is produced.
func resolveScaler(name string) (scaler, error) {
	s, ok := scalers[name]
	if !ok {
		return nil, fmt.Errorf("unknown resampling filter %q (available: %s)",
			name, strings.Join(scalerNames(), ", "))
	}
	return s, nil
}

func scalerNames() []string {
	names := make([]string, 0, len(scalers))
	for name := range scalers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
