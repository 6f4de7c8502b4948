// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
)

// WriteTempFile creates a temporary file with the given content and extension.
// Returns the file path and a cleanup function to remove the file.
func WriteTempFile(content, extension string) (path string, cleanup func(), err error) {
	if err := ValidateExtension(extension); err != nil {
		return "", nil, err
	}

	tmpFile, err := os.CreateTemp("", "boipress-*."+extension)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}

	path = tmpFile.Name()
	cleanup = func() { _ = os.Remove(path) }

	if _, writeErr := tmpFile.WriteString(content); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return "", nil, fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return "", nil, fmt.Errorf("closing temp file: %w", closeErr)
	}

	return path, cleanup, nil
}

// ValidateExtension checks that the extension is safe for use in temp file names.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsURL returns true if the string looks like a URL.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// DeriveOutputPath returns the input path with its extension swapped.
// The new extension must include the leading dot.
//
// Examples:
//   - DeriveOutputPath("stories/golpo.md", ".pdf") -> "stories/golpo.pdf"
//   - DeriveOutputPath("chapter", ".pdf") -> "chapter.pdf"
func DeriveOutputPath(inputPath, newExt string) string {
	base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
	return base + newExt
}

// BaseName returns the file name without directory or extension.
func BaseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// unsafeFilenameChars are characters rejected by common filesystems.
var unsafeFilenameChars = regexp.MustCompile(`[\\/*?:"<>|]`)

// SanitizeFilename makes a string safe for use as a file name:
// filesystem metacharacters are removed and spaces become underscores.
func SanitizeFilename(name string) string {
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	return strings.TrimSpace(strings.ReplaceAll(name, " ", "_"))
}
