package main

import (
	"os"
	"path/filepath"
	"testing"

	ico "github.com/sergeymakinen/go-ico"
)

func TestBuildICO_DefaultLayers(t *testing.T) {
	cfg := defaultConfig()
	cfg.Output = t.TempDir()

	if err := buildICO(cfg, quadrantImage(64), mustScaler(t, "lanczos")); err != nil {
		t.Fatalf("buildICO: %v", err)
	}

	f, err := os.Open(filepath.Join(cfg.Output, "icon.ico"))
	if err != nil {
		t.Fatalf("open icon.ico: %v", err)
	}
	defer f.Close()

	layers, err := ico.DecodeAll(f)
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if len(layers) != 6 {
		t.Fatalf("icon.ico has %d layers, want 6", len(layers))
	}

	// One layer per configured size, no duplicates, configured order (32 first).
	want := []int{32, 16, 24, 48, 64, 256}
	for i, img := range layers {
		if img.Bounds().Dx() != want[i] || img.Bounds().Dy() != want[i] {
			t.Errorf("layer %d = %dx%d, want %dx%d",
				i, img.Bounds().Dx(), img.Bounds().Dy(), want[i], want[i])
		}
	}
}

func TestBuildICO_NoSizes(t *testing.T) {
	cfg := defaultConfig()
	cfg.Output = t.TempDir()
	cfg.IcoSizes = nil

	if err := buildICO(cfg, quadrantImage(64), mustScaler(t, "lanczos")); err == nil {
		t.Error("buildICO should fail with no configured sizes")
	}
	if _, err := os.Stat(filepath.Join(cfg.Output, "icon.ico")); !os.IsNotExist(err) {
		t.Error("icon.ico should not exist after a failed build")
	}
}

func TestBuildICO_CreatesOutputDir(t *testing.T) {
	cfg := defaultConfig()
	cfg.Output = filepath.Join(t.TempDir(), "nested", "out")
	cfg.IcoSizes = []IcoSize{{16, 16}}

	if err := buildICO(cfg, quadrantImage(64), mustScaler(t, "lanczos")); err != nil {
		t.Fatalf("buildICO: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.Output, "icon.ico")); err != nil {
		t.Errorf("icon.ico missing: %v", err)
	}
}
