package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nafisfuad/boipress/internal/config"
	"github.com/nafisfuad/boipress/internal/fileutil"
	"github.com/nafisfuad/boipress/internal/scrape"
	"github.com/nafisfuad/boipress/internal/translate"
)

// maxTitleLen caps how long a heading can be and still serve as a file name.
const maxTitleLen = 100

// runScrape orchestrates the scrape command: fetch a story page, clean it
// up with the LLM backend, and save the result as Markdown named after the
// story title.
func runScrape(ctx context.Context, args []string, deps *Dependencies) error {
	flags, positional, err := parseScrapeFlags(args)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}

	if len(positional) == 0 {
		return fmt.Errorf("%w: missing URL", ErrNoInput)
	}
	url := positional[0]

	var timeout time.Duration
	if flags.timeout != "" {
		timeout, err = time.ParseDuration(flags.timeout)
		if err != nil || timeout <= 0 {
			return fmt.Errorf("%w: invalid timeout %q", ErrInvalidArgs, flags.timeout)
		}
	}

	fetcher := scrape.NewFetcher(timeout)
	defer fetcher.Close()

	if !flags.common.quiet {
		fmt.Fprintf(deps.Stdout, "Fetching %s\n", url)
	}

	page, err := fetcher.Fetch(ctx, url)
	if err != nil {
		return err
	}

	raw := scrape.CompressBlankLines(page.Text)

	var progress io.Writer
	if !flags.common.quiet {
		progress = deps.Stdout
	}

	cleaner, err := buildCleaner(flags, cfg, deps, progress)
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		fmt.Fprintln(deps.Stdout, "Cleaning up story text...")
	}

	story, err := cleaner.Translate(ctx, raw)
	if err != nil {
		return err
	}
	story = strings.TrimSpace(story)

	title := storyTitle(story, page.Title)

	outputDir := flags.outputDir
	if outputDir == "" {
		outputDir = cfg.Scrape.OutputDir
	}
	if err := os.MkdirAll(outputDir, dirPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	outputPath := filepath.Join(outputDir, fileutil.SanitizeFilename(title)+".md")
	if err := os.WriteFile(outputPath, []byte(story+"\n"), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if !flags.common.quiet {
		fmt.Fprintf(deps.Stdout, "Saved story to %s\n", outputPath)
	}
	return nil
}

// buildCleaner constructs the LLM backend used to separate story text from
// page noise. It reuses the translation backends with the cleanup prompt;
// a prompt from config overrides it.
func buildCleaner(flags *scrapeFlags, cfg *config.Config, deps *Dependencies, progress io.Writer) (translate.Translator, error) {
	backend := cfg.Translate.Backend
	if flags.backend != "" {
		backend = flags.backend
	}

	prompt := cfg.Scrape.Prompt
	if prompt == "" {
		prompt = scrape.CleanupPrompt
	}

	switch backend {
	case "", "api":
		apiKey := deps.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return nil, ErrMissingAPIKey
		}

		opts := []translate.GeminiOption{translate.WithPrompt(prompt)}
		if model := pick(flags.model, cfg.Translate.Model); model != "" {
			opts = append(opts, translate.WithModel(model))
		}
		if progress != nil {
			opts = append(opts, translate.WithProgress(progress))
		}
		return translate.NewGemini(apiKey, opts...), nil

	case "cli":
		opts := []translate.CLIOption{translate.WithCLIPrompt(prompt)}
		if progress != nil {
			opts = append(opts, translate.WithCLIProgress(progress))
		}
		return translate.NewCLI(opts...), nil

	default:
		return nil, fmt.Errorf("%w: %q (want api or cli)", ErrUnknownBackend, backend)
	}
}

// storyTitle picks a title for the saved file: the story's own heading
// when the cleaned Markdown starts with one of reasonable length,
// otherwise the page title, otherwise a fixed fallback.
func storyTitle(story, pageTitle string) string {
	for _, line := range strings.Split(story, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "# ") {
			heading := strings.TrimSpace(line[2:])
			if heading != "" && len(heading) < maxTitleLen {
				return heading
			}
		}
		break
	}
	if strings.TrimSpace(pageTitle) != "" {
		return pageTitle
	}
	return "scraped_story"
}
