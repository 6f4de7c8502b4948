// Package boipress turns plain-text stories into print-ready PDFs.
//
// # Quick Start
//
// Create a service, convert markdown, and close when done:
//
//	svc := boipress.New()
//	defer svc.Close()
//
//	pdf, err := svc.Convert(ctx, boipress.Input{
//	    Markdown: "# Golpo\n\nOnce upon a time...",
//	    Title:    "Golpo",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("golpo.pdf", pdf, 0644)
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Markdown to HTML via the built-in line converter (SegmentBlocks,
//     FormatInline, MarkdownToHTML)
//  2. Wrapping the body in a complete styled document (WrapDocument)
//  3. PDF rendering via headless Chrome (go-rod)
//
// # The Line Converter
//
// The converter is deliberately a small fixed rule set, not a CommonMark
// implementation. It recognizes ATX headings (1-6 hashes followed by
// whitespace), unordered list items ("- " or "* "), and paragraphs whose
// soft-wrapped lines are rejoined with spaces. Inline spans cover
// strong (**/__), emphasis (*/_), and backtick code; delimiters without a
// matching partner stay literal. Nested lists, ordered lists, tables,
// block quotes, fenced code, links, and images are out of scope, and no
// HTML sanitization is attempted. Callers who need only the HTML can use
// MarkdownToHTML and WrapDocument directly and skip the browser entirely.
//
// # Parallel Processing
//
// For batch conversion, use ServicePool to manage multiple browser
// instances:
//
//	pool := boipress.NewServicePool(4)
//	defer pool.Close()
//
//	svc := pool.Acquire()
//	defer pool.Release(svc)
//	pdf, err := svc.Convert(ctx, input)
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library downloads a
// managed Chromium on first run (~/.cache/rod/browser/). Set
// ROD_BROWSER_BIN to use a pre-installed binary; the Chrome sandbox is
// disabled automatically in CI and containerized environments.
package boipress
