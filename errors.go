package boipress

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown  = errors.New("markdown content cannot be empty")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Page settings validation errors.
	ErrInvalidPageSize = errors.New("invalid page size")
	ErrInvalidMargin   = errors.New("invalid margin")
)
