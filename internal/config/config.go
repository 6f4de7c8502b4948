// Package config loads CLI configuration from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nafisfuad/boipress/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Config holds all configuration for the boipress CLI.
type Config struct {
	Output    OutputConfig    `yaml:"output"`
	Page      PageConfig      `yaml:"page"`
	Translate TranslateConfig `yaml:"translate"`
	Scrape    ScrapeConfig    `yaml:"scrape"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// PageConfig defines PDF page options.
type PageConfig struct {
	Size     string  `yaml:"size"`     // "a4", "letter", "legal"
	MarginCm float64 `yaml:"marginCm"` // margin in centimeters, all sides
}

// TranslateConfig defines translation options.
type TranslateConfig struct {
	Model     string `yaml:"model"`     // Gemini model (empty = library default)
	Backend   string `yaml:"backend"`   // "api" or "cli"
	ChunkSize int    `yaml:"chunkSize"` // characters per translation chunk (0 = default)
	Retries   int    `yaml:"retries"`   // rate-limit retry attempts (0 = default)
	Prompt    string `yaml:"prompt"`    // override for the translation prompt
}

// ScrapeConfig defines webpage scraping options.
type ScrapeConfig struct {
	OutputDir string `yaml:"outputDir"` // directory for scraped stories
	Prompt    string `yaml:"prompt"`    // override for the cleanup prompt
}

// DefaultScrapeDir is where scraped stories land unless configured otherwise.
const DefaultScrapeDir = "scraped_stories"

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{
		Output:    OutputConfig{DefaultDir: ""},
		Page:      PageConfig{Size: "", MarginCm: 0},
		Translate: TranslateConfig{Backend: "api"},
		Scrape:    ScrapeConfig{OutputDir: DefaultScrapeDir},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/boipress/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "boipress", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
