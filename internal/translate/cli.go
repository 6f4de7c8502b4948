package translate

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// maxCLIPromptLen caps the prompt handed to the CLI as a single argument;
// longer input risks exceeding OS argument limits.
const maxCLIPromptLen = 100_000

// CLI translates by shelling out to the locally installed gemini binary
// in headless mode (gemini -p <prompt> -y). The whole input goes in one
// request; the CLI handles its own quota behavior.
type CLI struct {
	binary   string
	prompt   string
	progress io.Writer
}

// CLIOption configures a CLI translator.
type CLIOption func(*CLI)

// WithBinary overrides the gemini executable name or path.
func WithBinary(binary string) CLIOption {
	return func(c *CLI) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// WithCLIPrompt overrides the instruction sent ahead of the text.
func WithCLIPrompt(prompt string) CLIOption {
	return func(c *CLI) {
		if prompt != "" {
			c.prompt = prompt
		}
	}
}

// WithCLIProgress directs diagnostic messages to w.
func WithCLIProgress(w io.Writer) CLIOption {
	return func(c *CLI) {
		c.progress = w
	}
}

// NewCLI creates a subprocess-backed translator.
func NewCLI(opts ...CLIOption) *CLI {
	c := &CLI{
		binary:   "gemini",
		prompt:   DefaultPrompt,
		progress: io.Discard,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Translate runs the CLI over the text and returns its stdout.
// Returns "" for blank input without spawning a process.
func (c *CLI) Translate(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	prompt, truncated := buildCLIPrompt(c.prompt, text)
	if truncated {
		fmt.Fprintln(c.progress, "Warning: input is very long; truncating to fit CLI argument limits.")
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.binary, "-p", prompt, "-y") // #nosec G204 -- binary is operator-configured
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("%w: %s: %v: %s", ErrTranslation, c.binary, err, msg)
		}
		return "", fmt.Errorf("%w: %s: %v", ErrTranslation, c.binary, err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// buildCLIPrompt joins instruction and text, capping the combined length.
// Reports whether the text was cut.
func buildCLIPrompt(instruction, text string) (prompt string, truncated bool) {
	prompt = instruction + "\n\n" + text
	if len(prompt) <= maxCLIPromptLen {
		return prompt, false
	}
	return prompt[:maxCLIPromptLen], true
}
