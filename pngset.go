package main

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
)

// writePNGSet renders every entry of the PNG target table. A failing entry
// is logged and the remaining entries still run; the stage reports a single
// error at the end if anything failed.
func writePNGSet(cfg Config, src image.Image, sharp scaler) error {
	failed := 0
	for _, t := range cfg.PNGTargets {
		if err := writePNGTarget(cfg.Output, t, src, sharp); err != nil {
			log.Printf("png target %s: %v", t.File, err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d PNG targets failed", failed, len(cfg.PNGTargets))
	}
	return nil
}

// writePNGTarget renders one table entry to an exact size×size PNG under
// the output root, creating intermediate directories as needed.
func writePNGTarget(root string, t PNGTarget, src image.Image, sharp scaler) error {
	target := filepath.Join(root, filepath.FromSlash(t.File))
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}

	f, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	if err := png.Encode(f, sharp.Scale(src, t.Size)); err != nil {
		f.Close()
		// Don't leave a truncated file behind for a failed entry.
		os.Remove(target)
		return fmt.Errorf("encode: %w", err)
	}
	return f.Close()
}
