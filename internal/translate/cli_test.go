package translate

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestNewCLIDefaults(t *testing.T) {
	t.Parallel()

	c := NewCLI()
	if c.binary != "gemini" {
		t.Errorf("binary = %q, want gemini", c.binary)
	}
	if c.prompt != DefaultPrompt {
		t.Error("prompt is not the default")
	}

	c = NewCLI(WithBinary("/opt/gemini"), WithCLIPrompt("clean: "))
	if c.binary != "/opt/gemini" || c.prompt != "clean: " {
		t.Errorf("options not applied: %+v", c)
	}
}

func TestCLITranslate(t *testing.T) {
	t.Parallel()

	t.Run("blank input skips the subprocess", func(t *testing.T) {
		t.Parallel()

		c := NewCLI(WithBinary("/nonexistent/binary"))
		got, err := c.Translate(context.Background(), "   ")
		if err != nil {
			t.Errorf("Translate(blank) error = %v", err)
		}
		if got != "" {
			t.Errorf("Translate(blank) = %q, want empty", got)
		}
	})

	t.Run("missing binary", func(t *testing.T) {
		t.Parallel()

		c := NewCLI(WithBinary("/nonexistent/binary"))
		_, err := c.Translate(context.Background(), "some text")
		if !errors.Is(err, ErrTranslation) {
			t.Errorf("Translate() error = %v, want ErrTranslation", err)
		}
	})

	t.Run("trims subprocess output", func(t *testing.T) {
		t.Parallel()

		if runtime.GOOS == "windows" {
			t.Skip("shell script fake requires a POSIX shell")
		}

		bin := filepath.Join(t.TempDir(), "fake-gemini")
		script := "#!/bin/sh\nprintf '  translated output  \\n'\n"
		if err := os.WriteFile(bin, []byte(script), 0o755); err != nil {
			t.Fatal(err)
		}

		c := NewCLI(WithBinary(bin))
		got, err := c.Translate(context.Background(), "some text")
		if err != nil {
			t.Fatalf("Translate() error = %v", err)
		}
		if got != "translated output" {
			t.Errorf("Translate() = %q, want trimmed output", got)
		}
	})
}

func TestBuildCLIPrompt(t *testing.T) {
	t.Parallel()

	t.Run("short input untouched", func(t *testing.T) {
		t.Parallel()

		prompt, truncated := buildCLIPrompt("instruction", "body")
		if truncated {
			t.Error("short prompt reported as truncated")
		}
		if prompt != "instruction\n\nbody" {
			t.Errorf("prompt = %q", prompt)
		}
	})

	t.Run("long input capped", func(t *testing.T) {
		t.Parallel()

		prompt, truncated := buildCLIPrompt("i", strings.Repeat("x", maxCLIPromptLen))
		if !truncated {
			t.Error("oversized prompt not reported as truncated")
		}
		if len(prompt) != maxCLIPromptLen {
			t.Errorf("len(prompt) = %d, want %d", len(prompt), maxCLIPromptLen)
		}
	})
}
