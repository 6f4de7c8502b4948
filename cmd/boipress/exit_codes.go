package main

import (
	"errors"
	"os"

	boipress "github.com/nafisfuad/boipress"
	"github.com/nafisfuad/boipress/internal/config"
	"github.com/nafisfuad/boipress/internal/extract"
	"github.com/nafisfuad/boipress/internal/scrape"
	"github.com/nafisfuad/boipress/internal/translate"
)

// Exit codes for the boipress CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
	ExitAPI     = 5 // Translation service errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, boipress.ErrBrowserConnect) ||
		errors.Is(err, boipress.ErrPageCreate) ||
		errors.Is(err, boipress.ErrPageLoad) ||
		errors.Is(err, boipress.ErrPDFGeneration) ||
		errors.Is(err, scrape.ErrBrowserConnect) ||
		errors.Is(err, scrape.ErrFetch) {
		return ExitBrowser
	}

	// Translation service errors (exit 5)
	if errors.Is(err, translate.ErrTranslation) ||
		errors.Is(err, translate.ErrRateLimited) {
		return ExitAPI
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, extract.ErrOpenPDF) ||
		errors.Is(err, extract.ErrNoText) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrInvalidArgs) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrMissingAPIKey) ||
		errors.Is(err, ErrUnknownBackend) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, extract.ErrInvalidPageRange) ||
		errors.Is(err, boipress.ErrEmptyMarkdown) ||
		errors.Is(err, boipress.ErrInvalidPageSize) ||
		errors.Is(err, boipress.ErrInvalidMargin) {
		return ExitUsage
	}

	return ExitGeneral
}
