package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	boipress "github.com/nafisfuad/boipress"
	"github.com/nafisfuad/boipress/internal/config"
	"github.com/nafisfuad/boipress/internal/extract"
	"github.com/nafisfuad/boipress/internal/scrape"
	"github.com/nafisfuad/boipress/internal/translate"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"browser connect", boipress.ErrBrowserConnect, ExitBrowser},
		{"page create", boipress.ErrPageCreate, ExitBrowser},
		{"page load", boipress.ErrPageLoad, ExitBrowser},
		{"pdf generation", boipress.ErrPDFGeneration, ExitBrowser},
		{"scrape browser", scrape.ErrBrowserConnect, ExitBrowser},
		{"scrape fetch", scrape.ErrFetch, ExitBrowser},
		{"translation", translate.ErrTranslation, ExitAPI},
		{"rate limited", translate.ErrRateLimited, ExitAPI},
		{"file not found", os.ErrNotExist, ExitIO},
		{"permission", os.ErrPermission, ExitIO},
		{"read markdown", ErrReadMarkdown, ExitIO},
		{"write output", ErrWriteOutput, ExitIO},
		{"no input", ErrNoInput, ExitIO},
		{"open pdf", extract.ErrOpenPDF, ExitIO},
		{"no text layer", extract.ErrNoText, ExitIO},
		{"invalid args", ErrInvalidArgs, ExitUsage},
		{"invalid extension", ErrInvalidExtension, ExitUsage},
		{"invalid workers", ErrInvalidWorkerCount, ExitUsage},
		{"missing api key", ErrMissingAPIKey, ExitUsage},
		{"unknown backend", ErrUnknownBackend, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"page range", extract.ErrInvalidPageRange, ExitUsage},
		{"empty markdown", boipress.ErrEmptyMarkdown, ExitUsage},
		{"page size", boipress.ErrInvalidPageSize, ExitUsage},
		{"margin", boipress.ErrInvalidMargin, ExitUsage},
		{"unknown error", errors.New("boom"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeForWrappedErrors(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("chunk 3/9: %w", fmt.Errorf("%w: retries exhausted", translate.ErrRateLimited))
	if got := exitCodeFor(wrapped); got != ExitAPI {
		t.Errorf("exitCodeFor(wrapped) = %d, want %d", got, ExitAPI)
	}

	wrapped = fmt.Errorf("converting to PDF: %w", boipress.ErrPDFGeneration)
	if got := exitCodeFor(wrapped); got != ExitBrowser {
		t.Errorf("exitCodeFor(wrapped) = %d, want %d", got, ExitBrowser)
	}
}
