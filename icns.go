package main

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"

	"github.com/jackmordaunt/icns/v3"
)

// icnsTypeBySize maps a pixel size to the canonical PNG-payload icon type
// written into the container. Config-level OSType tags are traceability
// metadata only; writing them verbatim could select a legacy ARGB type
// that cannot carry PNG data.
var icnsTypeBySize = map[int]icns.OsType{
	16:   {ID: "icp4", Size: 16},
	32:   {ID: "icp5", Size: 32},
	64:   {ID: "icp6", Size: 64},
	128:  {ID: "ic07", Size: 128},
	256:  {ID: "ic08", Size: 256},
	512:  {ID: "ic09", Size: 512},
	1024: {ID: "ic10", Size: 1024},
}

// distinctIcnsSizes returns the de-duplicated pixel sizes referenced by the
// layer table, ascending. Layer keys sharing a size share one render.
func distinctIcnsSizes(layers map[string]IcnsLayer) []int {
	seen := make(map[int]bool, len(layers))
	var sizes []int
	for _, l := range layers {
		if !seen[l.Size] {
			seen[l.Size] = true
			sizes = append(sizes, l.Size)
		}
	}
	sort.Ints(sizes)
	return sizes
}

func supportedIcnsSizes() []int {
	sizes := make([]int, 0, len(icnsTypeBySize))
	for s := range icnsTypeBySize {
		sizes = append(sizes, s)
	}
	sort.Ints(sizes)
	return sizes
}

// buildICNS writes icon.icns with one layer per distinct size in the layer
// table. The largest render goes first as the base image, the remaining
// layers follow ascending. Errors stay within this stage.
func buildICNS(cfg Config, src image.Image, smooth scaler) error {
	sizes := distinctIcnsSizes(cfg.IcnsLayers)
	if len(sizes) == 0 {
		return errors.New("no ICNS layers configured")
	}
	for _, s := range sizes {
		if _, ok := icnsTypeBySize[s]; !ok {
			return fmt.Errorf("unsupported ICNS size %d (supported: %v)", s, supportedIcnsSizes())
		}
	}

	set := &icns.IconSet{}
	addLayer := func(size int) {
		set.Icons = append(set.Icons, &icns.Icon{
			Type:  icnsTypeBySize[size],
			Image: smooth.Scale(src, size),
		})
	}
	base := sizes[len(sizes)-1]
	addLayer(base)
	for _, s := range sizes[:len(sizes)-1] {
		addLayer(s)
	}

	if err := os.MkdirAll(cfg.Output, 0755); err != nil {
		return fmt.Errorf("create dir %s: %w", cfg.Output, err)
	}
	target := filepath.Join(cfg.Output, "icon.icns")
	f, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create %s: %w", target, err)
	}
	if _, err := set.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", target, err)
	}
	return f.Close()
}
