// Package scrape fetches webpage text through a headless browser.
//
// Pages are loaded in Chrome so that script-rendered story sites work; the
// extracted body text is raw and noisy by design, downstream LLM cleanup
// separates the story from navigation chrome.
package scrape

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Sentinel errors for scraping operations.
var (
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrFetch          = errors.New("failed to fetch page")
)

// defaultTimeout bounds the page load wait.
const defaultTimeout = 60 * time.Second

// Page holds the scraped content of one webpage.
type Page struct {
	Title string
	Text  string // body inner text, preserving some visual structure
}

// Fetcher loads pages in headless Chrome. The browser connects lazily on
// the first Fetch and is shared across calls until Close.
type Fetcher struct {
	browser *rod.Browser
	timeout time.Duration
}

// NewFetcher creates a Fetcher. A non-positive timeout means the default.
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Fetcher{timeout: timeout}
}

// ensureBrowser lazily connects to the browser.
func (f *Fetcher) ensureBrowser() error {
	if f.browser != nil {
		return nil
	}

	l := launcher.New()

	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	f.browser = rod.New().ControlURL(u)
	if err := f.browser.Connect(); err != nil {
		f.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Fetch loads the URL and returns the page title and body inner text.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := f.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFetch, url, err)
	}
	defer page.Close()

	timeout := f.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFetch, url, err)
	}

	info, err := page.Info()
	if err != nil {
		return nil, fmt.Errorf("%w: reading page info: %v", ErrFetch, err)
	}

	// innerText (unlike textContent) keeps visible line structure,
	// which helps the downstream cleanup keep paragraphs apart.
	obj, err := page.Eval(`() => document.body.innerText`)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body text: %v", ErrFetch, err)
	}

	return &Page{
		Title: info.Title,
		Text:  obj.Value.Str(),
	}, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	if f.browser != nil {
		err := f.browser.Close()
		f.browser = nil
		return err
	}
	return nil
}

// blankRuns matches a newline followed by blank space and another newline.
var blankRuns = regexp.MustCompile(`\n\s*\n`)

// CompressBlankLines collapses runs of blank lines to single newlines,
// shrinking scraped text before it is sent to the cleanup model.
func CompressBlankLines(s string) string {
	return blankRuns.ReplaceAllString(s, "\n")
}

// CleanupPrompt instructs the model to extract a story from raw page text
// and format it as Markdown in the subset the converter understands.
const CleanupPrompt = `You are an expert editor and formatter. I will provide you with raw text scraped from a webpage containing a Bangla story.
Your task is to:
1. Identify the Main Title of the story.
2. Extract the full Story content.
3. Remove all "noise" such as navigation menus, advertisements, sidebar links, social media buttons, footer text, and copyright notices.
4. Format the output as clean Markdown.
   - Use # for the Main Title.
   - Use paragraph breaks appropriately.
   - Maintain the original Bangla text and any necessary formatting (bold/italics) if present in the narrative.

RETURN ONLY THE MARKDOWN CONTENT. Do not include any introductory or concluding remarks.

Raw Text:
`
