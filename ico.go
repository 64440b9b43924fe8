package main

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	ico "github.com/sergeymakinen/go-ico"
)

// buildICO writes icon.ico with one layer per configured size, in the
// configured order, using the smooth filter since the layers are viewed at
// a range of sizes. Errors stay within this stage.
func buildICO(cfg Config, src image.Image, smooth scaler) error {
	if len(cfg.IcoSizes) == 0 {
		return errors.New("no ICO sizes configured")
	}

	layers := make([]image.Image, 0, len(cfg.IcoSizes))
	for _, s := range cfg.IcoSizes {
		layers = append(layers, smooth.Scale(src, s.Width))
	}

	if err := os.MkdirAll(cfg.Output, 0755); err != nil {
		return fmt.Errorf("create dir %s: %w", cfg.Output, err)
	}
	target := filepath.Join(cfg.Output, "icon.ico")
	f, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create %s: %w", target, err)
	}
	if err := ico.EncodeAll(f, layers); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", target, err)
	}
	return f.Close()
}
