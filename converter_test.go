package boipress

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

// stubPDFConverter records calls and returns canned output.
type stubPDFConverter struct {
	lastHTML string
	lastOpts *pdfOptions
	result   []byte
	err      error
	closed   bool
}

func (s *stubPDFConverter) ToPDF(_ context.Context, htmlContent string, opts *pdfOptions) ([]byte, error) {
	s.lastHTML = htmlContent
	s.lastOpts = opts
	return s.result, s.err
}

func (s *stubPDFConverter) Close() error {
	s.closed = true
	return nil
}

func newTestService(stub *stubPDFConverter) *Service {
	s := &Service{cfg: serviceConfig{timeout: defaultTimeout}}
	s.pdfConverter = stub
	return s
}

func TestServiceConvert(t *testing.T) {
	t.Parallel()

	t.Run("empty markdown rejected", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(&stubPDFConverter{})
		_, err := svc.Convert(context.Background(), Input{})
		if !errors.Is(err, ErrEmptyMarkdown) {
			t.Errorf("Convert() error = %v, want ErrEmptyMarkdown", err)
		}
	})

	t.Run("invalid page settings rejected", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(&stubPDFConverter{})
		_, err := svc.Convert(context.Background(), Input{
			Markdown: "# x",
			Page:     &PageSettings{Size: "tabloid", MarginCm: 2},
		})
		if !errors.Is(err, ErrInvalidPageSize) {
			t.Errorf("Convert() error = %v, want ErrInvalidPageSize", err)
		}
	})

	t.Run("full pipeline reaches converter", func(t *testing.T) {
		t.Parallel()

		stub := &stubPDFConverter{result: []byte("%PDF-fake")}
		svc := newTestService(stub)

		got, err := svc.Convert(context.Background(), Input{
			Markdown: "# Story\n\nsome **bold** text",
			Title:    "My Story",
		})
		if err != nil {
			t.Fatalf("Convert() error = %v", err)
		}
		if string(got) != "%PDF-fake" {
			t.Errorf("Convert() = %q, want %%PDF-fake", got)
		}

		for _, want := range []string{
			"<title>My Story</title>",
			"<h1>Story</h1>",
			"<p>some <strong>bold</strong> text</p>",
		} {
			if !strings.Contains(stub.lastHTML, want) {
				t.Errorf("converter input missing %q", want)
			}
		}
	})

	t.Run("page settings passed through", func(t *testing.T) {
		t.Parallel()

		stub := &stubPDFConverter{result: []byte("x")}
		svc := newTestService(stub)
		page := &PageSettings{Size: PageSizeLetter, MarginCm: 1.5}

		if _, err := svc.Convert(context.Background(), Input{Markdown: "x", Page: page}); err != nil {
			t.Fatalf("Convert() error = %v", err)
		}
		if stub.lastOpts == nil || stub.lastOpts.Page != page {
			t.Error("page settings not forwarded to converter")
		}
	})

	t.Run("converter error wrapped", func(t *testing.T) {
		t.Parallel()

		stub := &stubPDFConverter{err: ErrPDFGeneration}
		svc := newTestService(stub)

		_, err := svc.Convert(context.Background(), Input{Markdown: "x"})
		if !errors.Is(err, ErrPDFGeneration) {
			t.Errorf("Convert() error = %v, want ErrPDFGeneration", err)
		}
	})

	t.Run("cancelled context aborts before rendering", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		stub := &stubPDFConverter{result: []byte("x")}
		svc := newTestService(stub)

		_, err := svc.Convert(ctx, Input{Markdown: "x"})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Convert() error = %v, want context.Canceled", err)
		}
		if stub.lastHTML != "" {
			t.Error("converter called despite cancelled context")
		}
	})
}

func TestServiceClose(t *testing.T) {
	t.Parallel()

	stub := &stubPDFConverter{}
	svc := newTestService(stub)

	if err := svc.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !stub.closed {
		t.Error("Close() did not close the converter")
	}
}

func TestNewAppliesOptions(t *testing.T) {
	t.Parallel()

	svc := New(WithTimeout(42 * time.Second))
	defer svc.Close()

	if svc.cfg.timeout != 42*time.Second {
		t.Errorf("timeout = %v, want 42s", svc.cfg.timeout)
	}
	if svc.pdfConverter == nil {
		t.Error("New() did not create a converter")
	}
}
