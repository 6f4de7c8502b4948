package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Translate.Backend != "api" {
		t.Errorf("Translate.Backend = %q, want api", cfg.Translate.Backend)
	}
	if cfg.Scrape.OutputDir != DefaultScrapeDir {
		t.Errorf("Scrape.OutputDir = %q, want %q", cfg.Scrape.OutputDir, DefaultScrapeDir)
	}
	if cfg.Output.DefaultDir != "" {
		t.Errorf("Output.DefaultDir = %q, want empty", cfg.Output.DefaultDir)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("LoadConfig(\"\") error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("loads full file by path", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `
output:
  defaultDir: out
page:
  size: letter
  marginCm: 1.5
translate:
  model: gemini-2.5-pro
  backend: cli
  chunkSize: 5000
  retries: 3
scrape:
  outputDir: stories
`)

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Output.DefaultDir != "out" {
			t.Errorf("Output.DefaultDir = %q, want out", cfg.Output.DefaultDir)
		}
		if cfg.Page.Size != "letter" || cfg.Page.MarginCm != 1.5 {
			t.Errorf("Page = %+v, want letter/1.5", cfg.Page)
		}
		if cfg.Translate.Model != "gemini-2.5-pro" || cfg.Translate.Backend != "cli" {
			t.Errorf("Translate = %+v", cfg.Translate)
		}
		if cfg.Translate.ChunkSize != 5000 || cfg.Translate.Retries != 3 {
			t.Errorf("Translate = %+v", cfg.Translate)
		}
		if cfg.Scrape.OutputDir != "stories" {
			t.Errorf("Scrape.OutputDir = %q, want stories", cfg.Scrape.OutputDir)
		}
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "page:\n  size: a4\n  marginCm: 2\n")

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Translate.Backend != "api" {
			t.Errorf("Translate.Backend = %q, want default api", cfg.Translate.Backend)
		}
		if cfg.Scrape.OutputDir != DefaultScrapeDir {
			t.Errorf("Scrape.OutputDir = %q, want default", cfg.Scrape.OutputDir)
		}
	})

	t.Run("missing file by path", func(t *testing.T) {
		t.Parallel()

		missing := filepath.Join(t.TempDir(), "nope.yaml")
		if _, err := LoadConfig(missing); !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("LoadConfig(missing) error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadConfig("no-such-config-name"); !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("LoadConfig(name) error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "bogus: true\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
			t.Errorf("LoadConfig(unknown field) error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "page: [broken\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
			t.Errorf("LoadConfig(malformed) error = %v, want ErrConfigParse", err)
		}
	})
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		s    string
		want bool
	}{
		{"configs/prod.yaml", true},
		{`configs\prod.yaml`, true},
		{"./local.yaml", true},
		{"prod", false},
		{"prod.yaml", false},
	}

	for _, tt := range tests {
		if got := isFilePath(tt.s); got != tt.want {
			t.Errorf("isFilePath(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
