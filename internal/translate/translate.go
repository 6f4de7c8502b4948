// Package translate sends text through Gemini for literary translation
// and Markdown cleanup. Two backends are provided: the Gemini API
// (google.golang.org/genai) and the locally installed gemini CLI.
package translate

import (
	"context"
	"errors"
	"strings"
)

// Sentinel errors for translation operations.
var (
	ErrTranslation = errors.New("translation failed")
	ErrRateLimited = errors.New("translation rate limited")
)

// Defaults shared by both backends.
const (
	DefaultModel     = "gemini-2.0-flash"
	DefaultChunkSize = 3000
	DefaultRetries   = 5
)

// DefaultPrompt is the literary translation instruction sent ahead of each
// chunk of source text.
const DefaultPrompt = `You are a professional translator and novelist.
Translate the following text from English to Bangla.

Guidelines:
1. Maintain the narrative flow, tone, and literary style of a novel.
2. Do not translate proper nouns if they sound awkward, or provide a transliteration.
3. Output text in standard Bangla script.
4. Do not include any introductory or concluding remarks, only the translation.
5. Preserve formatting like paragraphs and dialogue.

Text to translate:
`

// Translator runs a prompt over source text and returns the model output.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// Chunk splits text into pieces of roughly size bytes, preferring to break
// at a newline past the midpoint of each piece so sentences stay whole.
// A non-positive size falls back to DefaultChunkSize.
func Chunk(text string, size int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}

	var chunks []string
	start := 0
	for start < len(text) {
		end := start + size
		if end >= len(text) {
			chunks = append(chunks, text[start:])
			break
		}

		if idx := strings.LastIndex(text[start:end], "\n"); idx != -1 && idx > size/2 {
			end = start + idx + 1
		}

		chunks = append(chunks, text[start:end])
		start = end
	}
	return chunks
}
