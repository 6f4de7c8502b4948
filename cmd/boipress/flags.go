package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common   commonFlags
	output   string
	workers  int
	timeout  string
	pageSize string
	marginCm float64
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
	fs.StringVarP(&f.pageSize, "page-size", "p", "", "page size: a4, letter, legal")
	fs.Float64Var(&f.marginCm, "margin", 0, "page margin in centimeters (0.5-5.0)")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printConvertUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// translateFlags holds all flags for the translate command.
type translateFlags struct {
	common    commonFlags
	output    string
	start     int
	end       int
	model     string
	backend   string
	chunkSize int
}

// parseTranslateFlags parses translate command flags and returns positional args.
func parseTranslateFlags(args []string) (*translateFlags, []string, error) {
	fs := flag.NewFlagSet("translate", flag.ContinueOnError)
	f := &translateFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output Markdown file")
	fs.IntVar(&f.start, "start", 1, "start page (1-indexed)")
	fs.IntVar(&f.end, "end", 0, "end page, inclusive (0 = last page)")
	fs.StringVarP(&f.model, "model", "m", "", "Gemini model (e.g., gemini-2.5-pro)")
	fs.StringVar(&f.backend, "backend", "", "translation backend: api, cli")
	fs.IntVar(&f.chunkSize, "chunk-size", 0, "characters per translation chunk (0 = default)")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printTranslateUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// scrapeFlags holds all flags for the scrape command.
type scrapeFlags struct {
	common    commonFlags
	outputDir string
	timeout   string
	backend   string
	model     string
}

// parseScrapeFlags parses scrape command flags and returns positional args.
func parseScrapeFlags(args []string) (*scrapeFlags, []string, error) {
	fs := flag.NewFlagSet("scrape", flag.ContinueOnError)
	f := &scrapeFlags{}

	fs.StringVarP(&f.outputDir, "output-dir", "d", "", "directory for the scraped story")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "page load timeout (e.g., 30s, 2m)")
	fs.StringVar(&f.backend, "backend", "", "cleanup backend: api, cli")
	fs.StringVarP(&f.model, "model", "m", "", "Gemini model for cleanup")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printScrapeUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
