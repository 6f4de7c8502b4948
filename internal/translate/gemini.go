package translate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"
)

// Retry pacing for the API backend.
const (
	baseRetryDelay = 10 * time.Second
	chunkPause     = 2 * time.Second
)

// Gemini translates via the Gemini API, chunking long input and retrying
// rate-limited requests with exponential backoff.
type Gemini struct {
	apiKey    string
	model     string
	prompt    string
	chunkSize int
	retries   int
	sleep     func(time.Duration)
	progress  io.Writer
}

// GeminiOption configures a Gemini translator.
type GeminiOption func(*Gemini)

// WithModel overrides the Gemini model.
func WithModel(model string) GeminiOption {
	return func(g *Gemini) {
		if model != "" {
			g.model = model
		}
	}
}

// WithPrompt overrides the instruction sent ahead of each chunk.
func WithPrompt(prompt string) GeminiOption {
	return func(g *Gemini) {
		if prompt != "" {
			g.prompt = prompt
		}
	}
}

// WithChunkSize overrides the chunk size in bytes.
func WithChunkSize(size int) GeminiOption {
	return func(g *Gemini) {
		if size > 0 {
			g.chunkSize = size
		}
	}
}

// WithRetries overrides the rate-limit retry attempt count.
func WithRetries(n int) GeminiOption {
	return func(g *Gemini) {
		if n > 0 {
			g.retries = n
		}
	}
}

// WithProgress directs per-chunk progress messages to w.
func WithProgress(w io.Writer) GeminiOption {
	return func(g *Gemini) {
		g.progress = w
	}
}

// withSleep replaces the sleep function; used by tests to skip real delays.
func withSleep(fn func(time.Duration)) GeminiOption {
	return func(g *Gemini) {
		g.sleep = fn
	}
}

// NewGemini creates an API-backed translator.
func NewGemini(apiKey string, opts ...GeminiOption) *Gemini {
	g := &Gemini{
		apiKey:    apiKey,
		model:     DefaultModel,
		prompt:    DefaultPrompt,
		chunkSize: DefaultChunkSize,
		retries:   DefaultRetries,
		sleep:     time.Sleep,
		progress:  io.Discard,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Translate chunks the text, translates each chunk, and joins the results
// with newlines. Returns "" for blank input without calling the API.
func (g *Gemini) Translate(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("%w: creating client: %v", ErrTranslation, err)
	}

	chunks := Chunk(text, g.chunkSize)
	var sb strings.Builder

	for i, chunk := range chunks {
		fmt.Fprintf(g.progress, "Translating chunk %d/%d...\n", i+1, len(chunks))

		out, err := g.translateChunk(ctx, client, chunk)
		if err != nil {
			return "", fmt.Errorf("chunk %d/%d: %w", i+1, len(chunks), err)
		}

		sb.WriteString(out)
		sb.WriteString("\n")

		// Pace successive requests to stay under per-minute quotas.
		if i < len(chunks)-1 {
			g.sleep(chunkPause)
		}
	}

	return sb.String(), nil
}

// translateChunk sends one chunk, retrying rate-limit failures with
// exponential backoff (base delay doubled per attempt). Other API errors
// fail immediately.
func (g *Gemini) translateChunk(ctx context.Context, client *genai.Client, chunk string) (string, error) {
	var lastErr error

	for attempt := 0; attempt < g.retries; attempt++ {
		resp, err := client.Models.GenerateContent(ctx, g.model, genai.Text(g.prompt+chunk), nil)
		if err == nil {
			return resp.Text(), nil
		}
		if !isRateLimited(err) {
			return "", fmt.Errorf("%w: %v", ErrTranslation, err)
		}

		lastErr = err
		wait := retryDelay(attempt)
		fmt.Fprintf(g.progress, "Quota exceeded. Retrying in %s... (attempt %d/%d)\n", wait, attempt+1, g.retries)
		g.sleep(wait)

		if err := ctx.Err(); err != nil {
			return "", err
		}
	}

	return "", fmt.Errorf("%w: retries exhausted: %v", ErrRateLimited, lastErr)
}

// retryDelay returns the backoff delay for a zero-based attempt number.
func retryDelay(attempt int) time.Duration {
	return baseRetryDelay * (1 << attempt)
}

// isRateLimited reports whether err is a quota/rate-limit failure.
func isRateLimited(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests
	}
	return strings.Contains(err.Error(), "429")
}
