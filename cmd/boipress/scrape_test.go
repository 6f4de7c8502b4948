package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/nafisfuad/boipress/internal/config"
)

func TestStoryTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		story     string
		pageTitle string
		want      string
	}{
		{
			name:  "heading wins",
			story: "# আমার গল্প\n\nFirst paragraph.",
			want:  "আমার গল্প",
		},
		{
			name:  "heading after leading blank lines",
			story: "\n\n# The Story\n\ntext",
			want:  "The Story",
		},
		{
			name:      "no heading falls back to page title",
			story:     "Just text without heading.",
			pageTitle: "Story Site - Chapter 4",
			want:      "Story Site - Chapter 4",
		},
		{
			name:      "overlong heading falls back to page title",
			story:     "# " + strings.Repeat("x", 150),
			pageTitle: "Short Title",
			want:      "Short Title",
		},
		{
			name:  "nothing usable gets fixed fallback",
			story: "text",
			want:  "scraped_story",
		},
		{
			name:      "heading must be the first content line",
			story:     "intro line\n# Late Heading",
			pageTitle: "Page",
			want:      "Page",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := storyTitle(tt.story, tt.pageTitle); got != tt.want {
				t.Errorf("storyTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildCleaner(t *testing.T) {
	t.Parallel()

	t.Run("api backend needs key", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := testDeps()
		flags := &scrapeFlags{backend: "api"}
		if _, err := buildCleaner(flags, config.DefaultConfig(), deps, nil); !errors.Is(err, ErrMissingAPIKey) {
			t.Errorf("buildCleaner() error = %v, want ErrMissingAPIKey", err)
		}
	})

	t.Run("cli backend", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := testDeps()
		flags := &scrapeFlags{backend: "cli"}
		cleaner, err := buildCleaner(flags, config.DefaultConfig(), deps, nil)
		if err != nil {
			t.Fatalf("buildCleaner() error = %v", err)
		}
		if cleaner == nil {
			t.Fatal("buildCleaner() = nil")
		}
	})

	t.Run("unknown backend", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := testDeps()
		flags := &scrapeFlags{backend: "smoke-signals"}
		if _, err := buildCleaner(flags, config.DefaultConfig(), deps, nil); !errors.Is(err, ErrUnknownBackend) {
			t.Errorf("buildCleaner() error = %v, want ErrUnknownBackend", err)
		}
	})
}

func TestParseScrapeFlags(t *testing.T) {
	t.Parallel()

	f, args, err := parseScrapeFlags([]string{
		"-d", "stories", "-t", "90s", "--backend", "cli", "-m", "gemini-2.5-pro",
		"https://example.com/golpo",
	})
	if err != nil {
		t.Fatalf("parseScrapeFlags() error = %v", err)
	}
	if f.outputDir != "stories" || f.timeout != "90s" || f.backend != "cli" || f.model != "gemini-2.5-pro" {
		t.Errorf("flags = %+v", f)
	}
	if len(args) != 1 || args[0] != "https://example.com/golpo" {
		t.Errorf("positional = %q", args)
	}
}
