package extract

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
)

const extractorTimeout = 30 * time.Second

// Page is the readable text of one article page
type Page struct {
	Title   string
	Byline  string
	Excerpt string
	Text    string
}

// Extractor downloads article pages and runs readability over them
type Extractor struct {
	httpClient *http.Client
}

// New creates an extractor with the default page timeout
func New() *Extractor {
	return &Extractor{httpClient: &http.Client{Timeout: extractorTimeout}}
}

// Preview fetches rawURL and extracts its main content
func (e *Extractor) Preview(ctx context.Context, rawURL string) (Page, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Page{}, fmt.Errorf("invalid article url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Page{}, fmt.Errorf("article url %q is not http(s)", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Page{}, fmt.Errorf("creating request: %w", err)
	}
	resp, err := e.httpClient.Do(req)
	if err != nil {
		return Page{}, fmt.Errorf("fetching article: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Page{}, fmt.Errorf("article returned %d", resp.StatusCode)
	}

	article, err := readability.FromReader(resp.Body, u)
	if err != nil {
		return Page{}, fmt.Errorf("readability extraction failed: %w", err)
	}

	return Page{
		Title:   strings.TrimSpace(article.Title),
		Byline:  strings.TrimSpace(article.Byline),
		Excerpt: strings.TrimSpace(article.Excerpt),
		Text:    strings.TrimSpace(article.TextContent),
	}, nil
}
