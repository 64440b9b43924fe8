package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"runtime"

	"github.com/minio/selfupdate"
	"github.com/ulikunitz/xz"
	"golang.org/x/mod/semver"
)

// latestRelease queries the GitHub API for the newest release name.
func latestRelease() (string, error) {
	url := fmt.Sprintf("https://api.github.com/repos/%s/releases/latest", GithubRepo)
	resp, err := http.Get(url)
	if err != nil {
		return "", fmt.Errorf("check for updates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("GitHub API returned HTTP %d", resp.StatusCode)
	}

	var release struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", fmt.Errorf("parse release info: %w", err)
	}
	return release.Name, nil
}

// releaseAssetURL builds the platform-specific download URL for a release.
// Release assets are xz-compressed single binaries.
func releaseAssetURL(release string) string {
	ext := "xz"
	if runtime.GOOS == "windows" {
		ext = "exe.xz"
	}
	return fmt.Sprintf("https://github.com/%s/releases/download/%s/mkicons-%s-%s.%s",
		GithubRepo, release, runtime.GOOS, runtime.GOARCH, ext)
}

// selfUpdate replaces the running binary with the latest release if one is
// newer than the build-time version.
func selfUpdate() error {
	fmt.Printf("Current version: %s-%s\n", Version, CommitHash)

	release, err := latestRelease()
	if err != nil {
		return err
	}
	fmt.Printf("Latest release: %s\n", release)

	switch semver.Compare(release, Version) {
	case -1:
		fmt.Println("You have a newer version than the latest release.")
		return nil
	case 0:
		fmt.Println("Already up to date.")
		return nil
	}

	fmt.Println("New version available, upgrading...")
	if Version == "v0.0.0" {
		fmt.Print("Development build detected, press Enter to proceed: ")
		bufio.NewReader(os.Stdin).ReadBytes('\n')
	}

	downloadURL := releaseAssetURL(release)
	opts := selfupdate.Options{}
	if err := opts.CheckPermissions(); err != nil {
		fmt.Printf("Cannot update in place (permission denied).\nDownload manually: %s\n", downloadURL)
		return nil
	}

	fmt.Printf("Downloading %s...\n", downloadURL)
	resp, err := http.Get(downloadURL)
	if err != nil {
		return fmt.Errorf("download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download returned HTTP %d", resp.StatusCode)
	}

	r, err := xz.NewReader(resp.Body)
	if err != nil {
		return fmt.Errorf("xz decompression: %w", err)
	}

	if err := selfupdate.Apply(r, opts); err != nil {
		return fmt.Errorf("apply update: %w", err)
	}

	fmt.Printf("Updated to %s successfully.\n", release)
	return nil
}
