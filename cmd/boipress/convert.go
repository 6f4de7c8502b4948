package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	boipress "github.com/nafisfuad/boipress"
	"github.com/nafisfuad/boipress/internal/config"
	"github.com/nafisfuad/boipress/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrInvalidArgs        = errors.New("invalid arguments")
	ErrNoInput            = errors.New("no input specified")
	ErrReadMarkdown       = errors.New("failed to read markdown file")
	ErrWriteOutput        = errors.New("failed to write output file")
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrMissingAPIKey      = errors.New("GEMINI_API_KEY not set")
	ErrUnknownBackend     = errors.New("unknown backend")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Pool abstracts service pool operations for testability.
type Pool interface {
	Acquire() *boipress.Service
	Release(*boipress.Service)
	Size() int
}

// fileToConvert represents a single file to process.
type fileToConvert struct {
	inputPath  string
	outputPath string
}

// conversionResult holds the outcome of a single conversion.
type conversionResult struct {
	inputPath  string
	outputPath string
	err        error
	duration   time.Duration
}

// runConvert orchestrates the convert command.
func runConvert(ctx context.Context, args []string, deps *Dependencies) error {
	flags, positional, err := parseConvertFlags(args)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}

	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}

	page, err := buildPageSettings(flags.pageSize, flags.marginCm, cfg)
	if err != nil {
		return err
	}

	if len(positional) == 0 {
		return ErrNoInput
	}
	inputPath := positional[0]

	files, err := discoverFiles(inputPath, resolveOutputDir(flags.output, cfg))
	if err != nil {
		return err
	}

	var opts []boipress.Option
	if flags.timeout != "" {
		d, err := time.ParseDuration(flags.timeout)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: invalid timeout %q", ErrInvalidArgs, flags.timeout)
		}
		opts = append(opts, boipress.WithTimeout(d))
	}

	poolSize := boipress.ResolvePoolSize(flags.workers)
	if poolSize > len(files) {
		poolSize = len(files)
	}
	if flags.common.verbose {
		fmt.Fprintf(deps.Stderr, "Pool size: %d\n", poolSize)
	}

	pool := boipress.NewServicePool(poolSize, opts...)
	defer pool.Close()

	results := convertBatch(ctx, pool, files, page)

	failed := printResults(results, flags.common, deps)
	if failed > 0 {
		return fmt.Errorf("%d conversion(s) failed", failed)
	}
	return nil
}

// loadConfig loads the named config, or defaults when none is given.
func loadConfig(nameOrPath string) (*config.Config, error) {
	if nameOrPath == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(nameOrPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// buildPageSettings merges page flags over config values. CLI wins.
// Returns nil (library defaults) when nothing is set anywhere.
func buildPageSettings(sizeFlag string, marginFlag float64, cfg *config.Config) (*boipress.PageSettings, error) {
	size := cfg.Page.Size
	if sizeFlag != "" {
		size = sizeFlag
	}
	margin := cfg.Page.MarginCm
	if marginFlag > 0 {
		margin = marginFlag
	}

	if size == "" && margin == 0 {
		return nil, nil
	}

	page := boipress.DefaultPageSettings()
	if size != "" {
		page.Size = size
	}
	if margin > 0 {
		page.MarginCm = margin
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}
	return page, nil
}

// validateWorkers rejects negative worker counts.
func validateWorkers(workers int) error {
	if workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkerCount, workers)
	}
	return nil
}

// resolveOutputDir determines the output destination from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	ext := filepath.Ext(path)
	if ext != ".md" && ext != ".markdown" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}

// discoverFiles expands the input into (input, output) pairs.
// A directory input collects its .md/.markdown files (sorted, non-recursive);
// a file input must carry a markdown extension. The output argument may be
// empty (output lands next to each input), a directory, or - for a single
// input file - an explicit file path.
func discoverFiles(inputPath, output string) ([]fileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNoInput, inputPath, err)
	}

	if !info.IsDir() {
		if err := validateMarkdownExtension(inputPath); err != nil {
			return nil, err
		}
		return []fileToConvert{{
			inputPath:  inputPath,
			outputPath: resolveOutputPath(inputPath, output),
		}}, nil
	}

	entries, err := os.ReadDir(inputPath)
	if err != nil {
		return nil, fmt.Errorf("reading input directory: %w", err)
	}

	var files []fileToConvert
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if ext := filepath.Ext(name); ext != ".md" && ext != ".markdown" {
			continue
		}
		in := filepath.Join(inputPath, name)
		out := fileutil.DeriveOutputPath(in, ".pdf")
		if output != "" {
			out = filepath.Join(output, fileutil.BaseName(name)+".pdf")
		}
		files = append(files, fileToConvert{inputPath: in, outputPath: out})
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no markdown files found in %s", inputPath)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].inputPath < files[j].inputPath })
	return files, nil
}

// resolveOutputPath picks the PDF path for a single input file.
// An empty output derives it from the input; an existing directory gets the
// input's basename; anything else is a file path, given a .pdf extension
// when missing.
func resolveOutputPath(inputPath, output string) string {
	if output == "" {
		return fileutil.DeriveOutputPath(inputPath, ".pdf")
	}
	if info, err := os.Stat(output); err == nil && info.IsDir() {
		return filepath.Join(output, fileutil.BaseName(inputPath)+".pdf")
	}
	if !strings.EqualFold(filepath.Ext(output), ".pdf") {
		return output + ".pdf"
	}
	return output
}

// titleCaser capitalizes words without language-specific rules; document
// titles come from file names, which carry no language information.
var titleCaser = cases.Title(language.Und)

// titleFromPath derives a document title from the input file name:
// underscores become spaces and each word is capitalized.
func titleFromPath(path string) string {
	return titleCaser.String(strings.ReplaceAll(fileutil.BaseName(path), "_", " "))
}

// convertBatch converts files in parallel using the service pool.
// Results are returned in input order.
func convertBatch(ctx context.Context, pool Pool, files []fileToConvert, page *boipress.PageSettings) []conversionResult {
	results := make([]conversionResult, len(files))
	var wg sync.WaitGroup

	for i, file := range files {
		wg.Add(1)
		go func(i int, file fileToConvert) {
			defer wg.Done()
			results[i] = convertFile(ctx, pool, file, page)
		}(i, file)
	}

	wg.Wait()
	return results
}

// convertFile converts a single file using a pooled service.
func convertFile(ctx context.Context, pool Pool, file fileToConvert, page *boipress.PageSettings) conversionResult {
	started := time.Now()
	res := conversionResult{inputPath: file.inputPath, outputPath: file.outputPath}

	content, err := os.ReadFile(file.inputPath) // #nosec G304 -- user-provided path
	if err != nil {
		res.err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		return res
	}

	svc := pool.Acquire()
	defer pool.Release(svc)

	pdf, err := svc.Convert(ctx, boipress.Input{
		Markdown: string(content),
		Title:    titleFromPath(file.inputPath),
		Page:     page,
	})
	if err != nil {
		res.err = err
		res.duration = time.Since(started)
		return res
	}

	if dir := filepath.Dir(file.outputPath); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			res.err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
			return res
		}
	}
	if err := os.WriteFile(file.outputPath, pdf, filePermissions); err != nil {
		res.err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
		return res
	}

	res.duration = time.Since(started)
	return res
}

// printResults reports conversion outcomes and returns the failure count.
func printResults(results []conversionResult, common commonFlags, deps *Dependencies) int {
	failed := 0
	for _, res := range results {
		if res.err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "Error: %s: %v\n", res.inputPath, res.err)
			continue
		}
		if common.quiet {
			continue
		}
		if common.verbose {
			fmt.Fprintf(deps.Stdout, "Created %s (%s)\n", res.outputPath, res.duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(deps.Stdout, "Created %s\n", res.outputPath)
		}
	}
	return failed
}
