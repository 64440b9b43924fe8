package main

import (
	"fmt"
	"log"
)

// run executes the conversion: load the master image, then the three
// independent generation stages in sequence. The loader is fatal; a stage
// failure is logged and the run continues to the next stage. Returns the
// process exit status.
func run(cfg Config) int {
	if err := validateConfig(cfg); err != nil {
		log.Printf("Invalid configuration: %v", err)
		return 1
	}

	sharp, err := resolveScaler(cfg.SharpFilter)
	if err != nil {
		log.Printf("Sharp filter: %v", err)
		return 1
	}
	smooth, err := resolveScaler(cfg.SmoothFilter)
	if err != nil {
		log.Printf("Smooth filter: %v", err)
		return 1
	}

	src, err := loadSource(cfg.Input)
	if err != nil {
		log.Printf("Loading source: %v", err)
		return 1
	}
	fmt.Printf("Source: %s (%dx%d, normalized to RGBA)\n",
		cfg.Input, src.Bounds().Dx(), src.Bounds().Dy())

	failed := false

	fmt.Printf("Generating %d PNG icons...\n", len(cfg.PNGTargets))
	if err := writePNGSet(cfg, src, sharp); err != nil {
		log.Printf("PNG stage: %v", err)
		failed = true
	} else {
		fmt.Printf("PNG icons written to %s\n", cfg.Output)
	}

	fmt.Println("Generating icon.ico...")
	if err := buildICO(cfg, src, smooth); err != nil {
		log.Printf("ICO stage: %v", err)
		failed = true
	} else {
		fmt.Printf("icon.ico written (%d layers)\n", len(cfg.IcoSizes))
	}

	fmt.Println("Generating icon.icns...")
	if err := buildICNS(cfg, src, smooth); err != nil {
		log.Printf("ICNS stage: %v", err)
		failed = true
	} else {
		sizes := distinctIcnsSizes(cfg.IcnsLayers)
		fmt.Printf("icon.icns written (%d layers: %v)\n", len(sizes), sizes)
	}

	if failed {
		return 1
	}
	return 0
}
