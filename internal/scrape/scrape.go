// Package scrape extracts readable article text from news pages for the
// content endpoint.
package scrape

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gocolly/colly/v2"

	"anoa.com/newshub/pkg/apperror"
)

// Readout is the extracted page content.
type Readout struct {
	URL        string `json:"url"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Paragraphs int    `json:"paragraphs"`
}

// minParagraphLength filters out nav links, captions and share buttons that
// also sit in <p> tags.
const minParagraphLength = 50

// Extract fetches the page and pulls its headline and body paragraphs.
// News sites keep the article body in wildly different containers, so it
// targets a handful of common ones and falls back to any long paragraph.
func Extract(rawURL string) (*Readout, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, fmt.Errorf("%w: invalid article url", apperror.ErrInvalidInput)
	}

	c := colly.NewCollector(
		colly.UserAgent("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
	)

	readout := &Readout{URL: rawURL}
	var builder strings.Builder

	c.OnHTML("h1", func(e *colly.HTMLElement) {
		if readout.Title == "" {
			readout.Title = strings.TrimSpace(e.Text)
		}
	})

	c.OnHTML("article, .article-body, .story-content, #main-content, main", func(e *colly.HTMLElement) {
		e.ForEach("p", func(_ int, el *colly.HTMLElement) {
			text := strings.TrimSpace(el.Text)
			if len(text) > minParagraphLength {
				builder.WriteString(text)
				builder.WriteString("\n\n")
				readout.Paragraphs++
			}
		})
	})

	if err := c.Visit(rawURL); err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrProviderUnavailable, err)
	}

	readout.Content = strings.TrimSpace(builder.String())
	if readout.Content == "" {
		return nil, fmt.Errorf("%w: no readable content found", apperror.ErrNotFound)
	}
	return readout, nil
}
