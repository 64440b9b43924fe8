package main

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

const sampleSize = 1024

// writeSampleSource renders a placeholder master image to path so the tool
// is usable before real artwork exists. Refuses to clobber an existing file.
func writeSampleSource(path string, size int) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("refusing to overwrite existing %s", path)
	}

	dc := gg.NewContext(size, size)
	dc.SetColor(color.RGBA{0, 0, 0, 0})
	dc.Clear()

	s := float64(size)
	margin := s * 0.04
	radius := s * 0.18

	// Rounded app-icon plate with a lighter inner disc.
	dc.SetColor(color.RGBA{45, 108, 223, 255})
	dc.DrawRoundedRectangle(margin, margin, s-2*margin, s-2*margin, radius)
	dc.Fill()
	dc.SetColor(color.RGBA{92, 148, 240, 255})
	dc.DrawCircle(s/2, s/2, s*0.34)
	dc.Fill()

	if face, err := loadFontFace(s * 0.42); err == nil {
		dc.SetFontFace(face)
		w, h := dc.MeasureString("M")
		dc.SetColor(color.RGBA{255, 255, 255, 255})
		dc.DrawString("M", s/2-w/2, s/2+h/2)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create dir %s: %w", dir, err)
		}
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// loadFontFace loads the embedded Go Bold font at the given size.
func loadFontFace(size float64) (font.Face, error) {
	fnt, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	return face, nil
}
