package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

// Build-time variables injected via ldflags.
var (
	Version        = "v0.0.0"
	CommitHash     = "dev"
	BuildTimestamp = "1970-01-01T00:00:00Z"
	Builder        = "unknown"
	GithubRepo     = "tychem/mkicons"
)

func versionString() string {
	return fmt.Sprintf("mkicons %s-%s", Version, CommitHash)
}

func versionStringLong() string {
	return fmt.Sprintf("mkicons %s-%s (built %s using %s)\nhttps://github.com/%s\n",
		Version, CommitHash, BuildTimestamp, Builder, GithubRepo)
}

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmsgprefix)
	log.SetPrefix("[mkicons] ")

	showVersion := flag.Bool("version", false, "show version and exit")
	doUpdate := flag.Bool("update", false, "check and update to latest release")
	cfgPath := flag.String("config", "", "path to config file (default ~/.config/mkicons/config.json)")
	input := flag.String("input", "", "source image path (env: MKICONS_INPUT)")
	output := flag.String("output", "", "output root directory (env: MKICONS_OUTPUT)")
	sharpFilter := flag.String("sharp-filter", "", "filter for flat PNG targets: nearest, approx-bilinear, bilinear, catmull-rom, box, lanczos (env: MKICONS_SHARP_FILTER)")
	smoothFilter := flag.String("smooth-filter", "", "filter for ICO/ICNS layers, same choices (env: MKICONS_SMOOTH_FILTER)")
	makeSample := flag.Bool("sample", false, "write a placeholder source image to the input path before converting")
	flag.Usage = func() {
		fmt.Print(versionStringLong())
		fmt.Fprintf(os.Stderr, "\nUsage: %s [options]\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Print(versionStringLong())
		return
	}

	if *doUpdate {
		if err := selfUpdate(); err != nil {
			log.Fatalf("Update: %v", err)
		}
		return
	}

	if *cfgPath != "" {
		configPath = *cfgPath
	}

	cfg := loadConfig()
	applyOverrides(&cfg, overrides{
		Input:        *input,
		Output:       *output,
		SharpFilter:  *sharpFilter,
		SmoothFilter: *smoothFilter,
	})

	fmt.Println(versionString())
	fmt.Printf("Config: %s\n", configPath)

	if *makeSample {
		if err := writeSampleSource(cfg.Input, sampleSize); err != nil {
			log.Printf("Sample source: %v", err)
			os.Exit(1)
		}
		fmt.Printf("Placeholder source written to %s\n", cfg.Input)
	}

	os.Exit(run(cfg))
}

// overrides holds CLI flag values for config overrides.
type overrides struct {
	Input        string
	Output       string
	SharpFilter  string
	SmoothFilter string
}

// applyStringOverride applies a string override from env var and flag.
func applyStringOverride(target *string, envKey, flagVal string) {
	if v := os.Getenv(envKey); v != "" {
		*target = v
	}
	if flagVal != "" {
		*target = flagVal
	}
}

// applyOverrides applies env vars and flags to config. Priority: flag > env > config file.
// Filter names are checked later by resolveScaler, which aborts the run on
// an unknown name rather than silently falling back.
func applyOverrides(cfg *Config, o overrides) {
	applyStringOverride(&cfg.Input, "MKICONS_INPUT", o.Input)
	applyStringOverride(&cfg.Output, "MKICONS_OUTPUT", o.Output)
	applyStringOverride(&cfg.SharpFilter, "MKICONS_SHARP_FILTER", o.SharpFilter)
	applyStringOverride(&cfg.SmoothFilter, "MKICONS_SMOOTH_FILTER", o.SmoothFilter)
}
