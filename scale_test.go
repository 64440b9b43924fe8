package main

import (
	"image"
	"image/color"
	"strings"
	"testing"
)

// quadrantImage returns a size×size NRGBA image split into four solid
// quadrants (black, white, red, blue), giving hard edges for filter tests.
func quadrantImage(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	half := size / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			var c color.NRGBA
			switch {
			case x < half && y < half:
				c = color.NRGBA{0, 0, 0, 255}
			case x >= half && y < half:
				c = color.NRGBA{255, 255, 255, 255}
			case x < half:
				c = color.NRGBA{255, 0, 0, 255}
			default:
				c = color.NRGBA{0, 0, 255, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestResolveScaler_AllKnown(t *testing.T) {
	for _, name := range scalerNames() {
		if _, err := resolveScaler(name); err != nil {
			t.Errorf("resolveScaler(%q) = %v, want nil", name, err)
		}
	}
}

func TestResolveScaler_Unknown(t *testing.T) {
	_, err := resolveScaler("mystery")
	if err == nil {
		t.Fatal("resolveScaler(\"mystery\") should fail")
	}
	if !strings.Contains(err.Error(), "mystery") {
		t.Errorf("error %q should name the bad filter", err)
	}
	if !strings.Contains(err.Error(), "nearest") {
		t.Errorf("error %q should list available filters", err)
	}
}

func TestScale_ExactSize(t *testing.T) {
	src := quadrantImage(6)
	for _, name := range scalerNames() {
		s, err := resolveScaler(name)
		if err != nil {
			t.Fatalf("resolveScaler(%q): %v", name, err)
		}
		for _, size := range []int{1, 10, 33} {
			got := s.Scale(src, size)
			if got.Bounds().Dx() != size || got.Bounds().Dy() != size {
				t.Errorf("%s.Scale(6, %d) bounds = %v, want %dx%d",
					name, size, got.Bounds(), size, size)
			}
		}
	}
}

func TestNearest_KeepsHardEdges(t *testing.T) {
	src := quadrantImage(2)
	s, err := resolveScaler("nearest")
	if err != nil {
		t.Fatal(err)
	}

	got := s.Scale(src, 4)
	cases := []struct {
		x, y int
		want color.NRGBA
	}{
		{0, 0, color.NRGBA{0, 0, 0, 255}},
		{3, 0, color.NRGBA{255, 255, 255, 255}},
		{0, 3, color.NRGBA{255, 0, 0, 255}},
		{3, 3, color.NRGBA{0, 0, 255, 255}},
	}
	for _, c := range cases {
		if px := got.NRGBAAt(c.x, c.y); px != c.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", c.x, c.y, px, c.want)
		}
	}

	// Nearest-neighbor must not invent blended colors.
	seen := map[color.NRGBA]bool{}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			seen[got.NRGBAAt(x, y)] = true
		}
	}
	if len(seen) != 4 {
		t.Errorf("nearest upscale produced %d distinct colors, want 4", len(seen))
	}
}

func TestLanczos_Downscale(t *testing.T) {
	src := quadrantImage(64)
	s, err := resolveScaler("lanczos")
	if err != nil {
		t.Fatal(err)
	}
	got := s.Scale(src, 16)
	if got.Bounds().Dx() != 16 || got.Bounds().Dy() != 16 {
		t.Fatalf("bounds = %v, want 16x16", got.Bounds())
	}
	// Quadrant centers keep their dominant color.
	if px := got.NRGBAAt(4, 4); px.R > 32 || px.G > 32 || px.B > 32 {
		t.Errorf("top-left quadrant center = %v, want near black", px)
	}
	if px := got.NRGBAAt(12, 12); px.B < 224 {
		t.Errorf("bottom-right quadrant center = %v, want near blue", px)
	}
}
