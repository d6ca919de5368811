// Package archive unpacks repository snapshot archives. It is a thin I/O
// wrapper around the core traversal: extraction happens once, into a
// temporary directory owned by the caller, and the core only ever sees the
// resulting root directory path.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Extract unpacks the zip archive at zipPath into dest. Entries that would
// escape dest are rejected.
func Extract(zipPath, dest string) error {
	reader, err := zip.OpenReader(zipPath)
	if err != nil {
		return fmt.Errorf("failed to open archive %q: %w", filepath.Base(zipPath), err)
	}
	defer reader.Close()

	cleanDest := filepath.Clean(dest)
	for _, entry := range reader.File {
		if err := extractEntry(entry, cleanDest); err != nil {
			return err
		}
	}
	return nil
}

func extractEntry(entry *zip.File, dest string) error {
	targetPath := filepath.Join(dest, filepath.FromSlash(entry.Name))
	if targetPath != dest && !strings.HasPrefix(targetPath, dest+string(os.PathSeparator)) {
		return fmt.Errorf("archive entry %q escapes extraction directory", entry.Name)
	}

	if entry.FileInfo().IsDir() {
		return os.MkdirAll(targetPath, os.ModePerm)
	}

	if err := os.MkdirAll(filepath.Dir(targetPath), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create directory for %q: %w", entry.Name, err)
	}

	source, err := entry.Open()
	if err != nil {
		return fmt.Errorf("failed to open archive entry %q: %w", entry.Name, err)
	}
	defer source.Close()

	target, err := os.OpenFile(targetPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, entry.Mode())
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", targetPath, err)
	}
	defer target.Close()

	if _, err := io.Copy(target, source); err != nil {
		return fmt.Errorf("failed to extract %q: %w", entry.Name, err)
	}
	return nil
}

// DetectRoot identifies the effective repository root inside an extraction
// directory. Archives of repository snapshots usually contain a single
// top-level directory; when exactly one non-hidden directory is present it
// becomes the root and its name the display name. Otherwise the extraction
// directory itself is the root, displayed under fallbackName.
func DetectRoot(dir, fallbackName string) (string, string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return dir, fallbackName
	}

	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			candidates = append(candidates, entry.Name())
		}
	}

	if len(candidates) == 1 {
		return filepath.Join(dir, candidates[0]), candidates[0]
	}
	return dir, fallbackName
}
