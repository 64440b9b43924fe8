package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// PNGTarget is one entry of the flat PNG output table. File is a
// slash-separated path relative to the output root; nested directories are
// created on demand.
type PNGTarget struct {
	File string `json:"file"`
	Size int    `json:"size"`
}

// IcoSize is one layer of the ICO container.
type IcoSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// IcnsLayer is one record of the ICNS layer table, keyed by its logical
// name (e.g. "32x32@2x"). File and OSType are traceability metadata; the
// written layer type is derived from Size (see icns.go).
type IcnsLayer struct {
	File   string `json:"file"`
	Size   int    `json:"size"`
	OSType string `json:"ostype"`
}

// Config holds the conversion configuration. It is built once at startup
// and passed read-only into each generation stage.
type Config struct {
	Input        string               `json:"input"`
	Output       string               `json:"output"`
	SharpFilter  string               `json:"sharp_filter"`
	SmoothFilter string               `json:"smooth_filter"`
	PNGTargets   []PNGTarget          `json:"png_targets"`
	IcoSizes     []IcoSize            `json:"ico_sizes"`
	IcnsLayers   map[string]IcnsLayer `json:"icns_layers"`
}

var configPath string

func init() {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	configPath = filepath.Join(home, ".config", "mkicons", "config.json")
}

// defaultConfig returns a Config with the stock target tables: the Tauri
// PNG asset set, the 6-layer ICO size list (32px first), and the 10-record
// macOS iconset table.
func defaultConfig() Config {
	return Config{
		Input:        "src.png",
		Output:       "icons",
		SharpFilter:  "nearest",
		SmoothFilter: "lanczos",
		PNGTargets: []PNGTarget{
			{File: "128x128.png", Size: 128},
			{File: "128x128@2x.png", Size: 256},
			{File: "32x32.png", Size: 32},
			{File: "icon.png", Size: 512},
			{File: "Square107x107Logo.png", Size: 107},
			{File: "Square142x142Logo.png", Size: 142},
			{File: "Square150x150Logo.png", Size: 150},
			{File: "Square284x284Logo.png", Size: 284},
			{File: "Square30x30Logo.png", Size: 30},
			{File: "Square310x310Logo.png", Size: 310},
			{File: "Square44x44Logo.png", Size: 44},
			{File: "Square71x71Logo.png", Size: 71},
			{File: "Square89x89Logo.png", Size: 89},
			{File: "StoreLogo.png", Size: 50},
			{File: "mipmap-hdpi/ic_launcher.png", Size: 72},
			{File: "mipmap-mdpi/ic_launcher.png", Size: 48},
			{File: "mipmap-xhdpi/ic_launcher.png", Size: 96},
			{File: "mipmap-xxhdpi/ic_launcher.png", Size: 144},
			{File: "mipmap-xxxhdpi/ic_launcher.png", Size: 192},
			{File: "mipmap-hdpi/ic_launcher_round.png", Size: 72},
			{File: "mipmap-hdpi/ic_launcher_foreground.png", Size: 162},
			{File: "mipmap-mdpi/ic_launcher_round.png", Size: 48},
			{File: "mipmap-mdpi/ic_launcher_foreground.png", Size: 108},
			{File: "mipmap-xhdpi/ic_launcher_round.png", Size: 96},
			{File: "mipmap-xhdpi/ic_launcher_foreground.png", Size: 216},
			{File: "mipmap-xxhdpi/ic_launcher_round.png", Size: 144},
			{File: "mipmap-xxhdpi/ic_launcher_foreground.png", Size: 324},
			{File: "mipmap-xxxhdpi/ic_launcher_round.png", Size: 192},
			{File: "mipmap-xxxhdpi/ic_launcher_foreground.png", Size: 432},
		},
		IcoSizes: []IcoSize{
			{32, 32}, {16, 16}, {24, 24}, {48, 48}, {64, 64}, {256, 256},
		},
		IcnsLayers: map[string]IcnsLayer{
			"16x16":      {File: "icon_16x16.png", Size: 16, OSType: "is32"},
			"16x16@2x":   {File: "icon_16x16@2x.png", Size: 32, OSType: "ic11"},
			"32x32":      {File: "icon_32x32.png", Size: 32, OSType: "il32"},
			"32x32@2x":   {File: "icon_32x32@2x.png", Size: 64, OSType: "ic12"},
			"128x128":    {File: "icon_128x128.png", Size: 128, OSType: "ic07"},
			"128x128@2x": {File: "icon_128x128@2x.png", Size: 256, OSType: "ic13"},
			"256x256":    {File: "icon_256x256.png", Size: 256, OSType: "ic08"},
			"256x256@2x": {File: "icon_256x256@2x.png", Size: 512, OSType: "ic14"},
			"512x512":    {File: "icon_512x512.png", Size: 512, OSType: "ic09"},
			"512x512@2x": {File: "icon_512x512@2x.png", Size: 1024, OSType: "ic10"},
		},
	}
}

// loadConfig loads config from disk, creating a default if it doesn't exist.
// Missing fields keep their defaults via json.Unmarshal into a pre-populated struct.
func loadConfig() Config {
	cfg := defaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			if writeErr := saveConfig(cfg); writeErr != nil {
				log.Printf("Failed to write default config: %v", writeErr)
			} else {
				log.Printf("Created default config at %s", configPath)
			}
			return cfg
		}
		log.Printf("Failed to read config %s: %v", configPath, err)
		return cfg
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Printf("Failed to parse config %s: %v", configPath, err)
		return defaultConfig()
	}

	defaults := defaultConfig()
	if cfg.Input == "" {
		log.Printf("Empty input in config, using default %q", defaults.Input)
		cfg.Input = defaults.Input
	}
	if cfg.Output == "" {
		log.Printf("Empty output in config, using default %q", defaults.Output)
		cfg.Output = defaults.Output
	}
	if cfg.SharpFilter == "" {
		cfg.SharpFilter = defaults.SharpFilter
	}
	if cfg.SmoothFilter == "" {
		cfg.SmoothFilter = defaults.SmoothFilter
	}
	if cfg.PNGTargets == nil {
		cfg.PNGTargets = defaults.PNGTargets
	}
	if cfg.IcoSizes == nil {
		cfg.IcoSizes = defaults.IcoSizes
	}
	if cfg.IcnsLayers == nil {
		cfg.IcnsLayers = defaults.IcnsLayers
	}

	return cfg
}

// validateConfig rejects table entries the generation stages cannot act on.
// Called before any output is produced.
func validateConfig(cfg Config) error {
	for _, t := range cfg.PNGTargets {
		if t.Size <= 0 {
			return fmt.Errorf("png target %q: invalid size %d", t.File, t.Size)
		}
		if !relativeTargetPath(t.File) {
			return fmt.Errorf("png target %q: path must stay under the output root", t.File)
		}
	}
	for _, s := range cfg.IcoSizes {
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("ico size %dx%d: invalid dimensions", s.Width, s.Height)
		}
		if s.Width != s.Height {
			return fmt.Errorf("ico size %dx%d: only square layers are supported", s.Width, s.Height)
		}
	}
	for key, l := range cfg.IcnsLayers {
		if l.Size <= 0 {
			return fmt.Errorf("icns layer %q: invalid size %d", key, l.Size)
		}
	}
	return nil
}

// relativeTargetPath reports whether name is a clean relative path that
// stays under the output root.
func relativeTargetPath(name string) bool {
	if name == "" || strings.Contains(name, "\\") || filepath.IsAbs(name) {
		return false
	}
	clean := path.Clean(name)
	return clean != "." && clean != ".." && !strings.HasPrefix(clean, "../")
}

// saveConfig writes config to disk with restrictive permissions (0600).
func saveConfig(cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return writeFileSecure(configPath, data)
}

// writeFileSecure writes data to path with 0600 permissions, creating parent dirs.
func writeFileSecure(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create dir %s: %w", dir, err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
