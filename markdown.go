package boipress

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"
)

// headingPattern matches 1 to 6 leading '#' characters followed by at least
// one whitespace character. Seven or more hashes fail the match and the line
// falls through to paragraph handling.
var headingPattern = regexp.MustCompile(`^(#{1,6})\s+(.*)`)

// Inline span patterns. The backreference (\1) forces both delimiters of a
// pair to match (** with **, __ with __), which the stdlib RE2 engine cannot
// express; regexp2 provides it. Groups are non-greedy so the shortest valid
// span wins. A delimiter without a partner never matches and stays literal.
var (
	strongPattern = regexp2.MustCompile(`(\*\*|__)(.*?)\1`, 0)
	emPattern     = regexp2.MustCompile(`([*_])(.*?)\1`, 0)
	codePattern   = regexp2.MustCompile("`(.*?)`", 0)
)

// segmenter accumulates input lines into block buffers and emits finished
// HTML fragments. At most one of the two buffers is non-empty at a time:
// classifying a line of the other kind flushes the current buffer first.
type segmenter struct {
	blocks    []string
	paragraph []string // raw stripped lines, space-joined on flush
	list      []string // already-formatted <li> fragments
}

// flush drains the pending buffers into finished blocks, list first.
// Flushing with both buffers empty is a no-op.
func (s *segmenter) flush() {
	if len(s.list) > 0 {
		s.blocks = append(s.blocks, "<ul>"+strings.Join(s.list, "")+"</ul>")
		s.list = nil
	}
	if len(s.paragraph) > 0 {
		content := strings.TrimSpace(strings.Join(s.paragraph, " "))
		if content != "" {
			s.blocks = append(s.blocks, "<p>"+FormatInline(content)+"</p>")
		}
		s.paragraph = nil
	}
}

// line classifies one input line and updates the pending buffers.
func (s *segmenter) line(raw string) {
	stripped := strings.TrimSpace(raw)

	// Blank line ends the current block.
	if stripped == "" {
		s.flush()
		return
	}

	// Heading: emitted immediately, never buffered.
	if m := headingPattern.FindStringSubmatch(stripped); m != nil {
		s.flush()
		text := FormatInline(strings.TrimSpace(m[2]))
		s.blocks = append(s.blocks, fmt.Sprintf("<h%d>%s</h%d>", len(m[1]), text, len(m[1])))
		return
	}

	// List item: switching over from a paragraph flushes it first.
	if strings.HasPrefix(stripped, "- ") || strings.HasPrefix(stripped, "* ") {
		if len(s.paragraph) > 0 {
			s.flush()
		}
		s.list = append(s.list, "<li>"+FormatInline(strings.TrimSpace(stripped[2:]))+"</li>")
		return
	}

	// Plain text: switching over from a list flushes it first.
	if len(s.list) > 0 {
		s.flush()
	}
	s.paragraph = append(s.paragraph, stripped)
}

// SegmentBlocks splits a Markdown document into an ordered sequence of HTML
// block fragments: headings, unordered lists, and paragraphs. Blocks appear
// in the same relative order as the lines that triggered them, and a final
// flush guarantees no trailing buffered content is dropped.
func SegmentBlocks(doc string) []string {
	s := &segmenter{}
	for _, raw := range strings.Split(doc, "\n") {
		s.line(raw)
	}
	s.flush()
	return s.blocks
}

// FormatInline substitutes emphasis and code spans in finalized block text.
// It is pure and is only called on heading content, a single list item, or a
// flushed paragraph's joined content. Strong runs before emphasis so that
// ** is fully consumed before single * is considered; code runs last.
// Output containing no delimiter characters is a fixed point, so running
// FormatInline over its own output changes nothing.
func FormatInline(text string) string {
	text = replaceAll(strongPattern, text, "<strong>$2</strong>")
	text = replaceAll(emPattern, text, "<em>$2</em>")
	text = replaceAll(codePattern, text, "<code>$1</code>")
	return text
}

// replaceAll applies a regexp2 substitution over the whole string.
// Replace only fails on match timeouts, which are not configured here,
// so the input passes through unchanged on error.
func replaceAll(re *regexp2.Regexp, text, replacement string) string {
	out, err := re.Replace(text, replacement, -1, -1)
	if err != nil {
		return text
	}
	return out
}

// MarkdownToHTML converts a Markdown document into an HTML body:
// the block fragments joined with newline separators.
func MarkdownToHTML(doc string) string {
	return strings.Join(SegmentBlocks(doc), "\n")
}
