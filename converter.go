package boipress

import (
	"context"
	"fmt"
)

// Service orchestrates the markdown-to-PDF pipeline.
type Service struct {
	cfg          serviceConfig
	pdfConverter pdfConverter
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create PDF converter if not injected (e.g., by tests)
	if s.pdfConverter == nil {
		s.pdfConverter = newRodConverter(s.cfg.timeout)
	}

	return s
}

// Convert runs the full pipeline and returns the PDF as bytes.
// The context is used for cancellation and timeout.
func (s *Service) Convert(ctx context.Context, input Input) ([]byte, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	// Convert to HTML and wrap in the styled document
	body := MarkdownToHTML(input.Markdown)
	doc := WrapDocument(body, input.Title)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Convert to PDF
	pdfBytes, err := s.pdfConverter.ToPDF(ctx, doc, &pdfOptions{Page: input.Page})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}

	return pdfBytes, nil
}

// Close releases resources (headless Chrome browser).
func (s *Service) Close() error {
	if s.pdfConverter != nil {
		return s.pdfConverter.Close()
	}
	return nil
}

// validateInput checks that required fields are present and valid.
func (s *Service) validateInput(input Input) error {
	if input.Markdown == "" {
		return ErrEmptyMarkdown
	}
	if err := input.Page.Validate(); err != nil {
		return err
	}
	return nil
}
