package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: boipress <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert Markdown stories to PDF")
	fmt.Fprintln(w, "  translate  Translate a PDF chapter to Bangla Markdown")
	fmt.Fprintln(w, "  scrape     Scrape a story from a webpage into Markdown")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'boipress help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: boipress convert <input.md|dir> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert Markdown files to print-ready PDFs.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory of .md files")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>     Output file or directory (default: input basename + .pdf)")
	fmt.Fprintln(w, "  -w, --workers <n>       Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <dur>     PDF generation timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "  -p, --page-size <s>     Page size: a4, letter, legal")
	fmt.Fprintln(w, "      --margin <f>        Page margin in centimeters (0.5-5.0)")
	fmt.Fprintln(w, "  -c, --config <name>     Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
	fmt.Fprintln(w, "  -v, --verbose           Show detailed progress")
}

// printTranslateUsage prints usage for the translate command.
func printTranslateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: boipress translate <input.pdf> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Extract a page range from a PDF and translate it to Bangla Markdown.")
	fmt.Fprintln(w, "The api backend needs GEMINI_API_KEY; the cli backend needs the")
	fmt.Fprintln(w, "gemini binary on PATH.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>     Output Markdown file")
	fmt.Fprintln(w, "                          (default: <base>_translated_<start>_<end>.md)")
	fmt.Fprintln(w, "      --start <n>         Start page, 1-indexed (default: 1)")
	fmt.Fprintln(w, "      --end <n>           End page, inclusive (0 = last page)")
	fmt.Fprintln(w, "  -m, --model <s>         Gemini model (e.g., gemini-2.5-pro)")
	fmt.Fprintln(w, "      --backend <s>       Translation backend: api (default), cli")
	fmt.Fprintln(w, "      --chunk-size <n>    Characters per translation chunk")
	fmt.Fprintln(w, "  -c, --config <name>     Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
	fmt.Fprintln(w, "  -v, --verbose           Show detailed progress")
}

// printScrapeUsage prints usage for the scrape command.
func printScrapeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: boipress scrape <url> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Fetch a story page, clean it up with Gemini, and save it as Markdown.")
	fmt.Fprintln(w, "The file name comes from the story title.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -d, --output-dir <dir>  Directory for the scraped story (default: scraped_stories)")
	fmt.Fprintln(w, "  -t, --timeout <dur>     Page load timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "      --backend <s>       Cleanup backend: api (default), cli")
	fmt.Fprintln(w, "  -m, --model <s>         Gemini model for cleanup")
	fmt.Fprintln(w, "  -c, --config <name>     Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
	fmt.Fprintln(w, "  -v, --verbose           Show detailed progress")
}

// runHelp prints help for a specific command.
func runHelp(args []string, deps *Dependencies) {
	if len(args) == 0 {
		printUsage(deps.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(deps.Stdout)
	case "translate":
		printTranslateUsage(deps.Stdout)
	case "scrape":
		printScrapeUsage(deps.Stdout)
	case "version":
		fmt.Fprintln(deps.Stdout, "Usage: boipress version")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(deps.Stdout, "Usage: boipress help [command]")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(deps.Stderr, "Unknown command: %s\n", args[0])
		printUsage(deps.Stderr)
	}
}
