package boipress

import (
	"fmt"
	"strings"
	"time"
)

// Page size constants.
const (
	PageSizeA4     = "a4"
	PageSizeLetter = "letter"
	PageSizeLegal  = "legal"
)

// Margin bounds in centimeters.
const (
	MinMarginCm     = 0.5
	MaxMarginCm     = 5.0
	DefaultMarginCm = 2.0
)

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size     string  // "a4", "letter", "legal"
	MarginCm float64 // centimeters, applied to all sides
}

// DefaultPageSettings returns page settings with default values:
// A4 paper with 2 cm margins on all sides.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:     PageSizeA4,
		MarginCm: DefaultMarginCm,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
// Does not mutate - uses case-insensitive comparison.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if !isValidPageSize(p.Size) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	if p.MarginCm < MinMarginCm || p.MarginCm > MaxMarginCm {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.MarginCm, MinMarginCm, MaxMarginCm)
	}

	return nil
}

// isValidPageSize checks if size is a known page size (case-insensitive).
func isValidPageSize(size string) bool {
	switch strings.ToLower(size) {
	case PageSizeA4, PageSizeLetter, PageSizeLegal:
		return true
	}
	return false
}

// Input contains conversion parameters.
type Input struct {
	Markdown string        // Markdown content (required)
	Title    string        // Document title (optional, defaults to "Document")
	Page     *PageSettings // Page settings (optional, nil = defaults)
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout time.Duration
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("boipress: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}
