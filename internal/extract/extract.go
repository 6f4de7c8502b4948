// Package extract pulls the text layer out of PDF files.
//
// Only the embedded text layer is read; scanned (image-only) PDFs require
// OCR and are not handled here.
package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Sentinel errors for extraction operations.
var (
	ErrOpenPDF          = errors.New("failed to open PDF")
	ErrInvalidPageRange = errors.New("invalid page range")
	ErrNoText           = errors.New("no text layer found in PDF")
)

// PageCount returns the number of pages in the PDF at path.
func PageCount(path string) (int, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrOpenPDF, path, err)
	}
	defer func() { _ = f.Close() }()

	return r.NumPage(), nil
}

// Extract returns the text of pages start through end (1-indexed,
// inclusive), each preceded by a "--- Page N ---" marker. The range is
// clamped to the document bounds; a range that is empty after clamping is
// an error. Pages without a readable text layer are skipped.
func Extract(path string, start, end int) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrOpenPDF, path, err)
	}
	defer func() { _ = f.Close() }()

	start, end, err = clampRange(start, end, r.NumPage())
	if err != nil {
		return "", err
	}

	fonts := make(map[string]*pdf.Font)
	var sb strings.Builder

	for i := start; i <= end; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}

		// Cache fonts across pages; GetPlainText needs them for decoding.
		for _, name := range p.Fonts() {
			if _, ok := fonts[name]; !ok {
				font := p.Font(name)
				fonts[name] = &font
			}
		}

		text, pageErr := p.GetPlainText(fonts)
		if pageErr != nil {
			continue
		}

		fmt.Fprintf(&sb, "\n\n--- Page %d ---\n\n", i)
		sb.WriteString(text)
	}

	return sb.String(), nil
}

// ExtractAll returns the text of every page joined with newlines,
// without page markers, trimmed of surrounding whitespace.
func ExtractAll(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrOpenPDF, path, err)
	}
	defer func() { _ = f.Close() }()

	fonts := make(map[string]*pdf.Font)
	var sb strings.Builder

	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}

		for _, name := range p.Fonts() {
			if _, ok := fonts[name]; !ok {
				font := p.Font(name)
				fonts[name] = &font
			}
		}

		text, pageErr := p.GetPlainText(fonts)
		if pageErr != nil {
			continue
		}

		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return strings.TrimSpace(sb.String()), nil
}

// clampRange normalizes a 1-indexed inclusive page range against the page
// count: start below 1 becomes 1, end outside [1, total] becomes total.
// Errors if the clamped range is empty.
func clampRange(start, end, total int) (int, int, error) {
	if start < 1 {
		start = 1
	}
	if end < 1 || end > total {
		end = total
	}
	if start > end {
		return 0, 0, fmt.Errorf("%w: start %d after end %d (document has %d pages)", ErrInvalidPageRange, start, end, total)
	}
	return start, end, nil
}
