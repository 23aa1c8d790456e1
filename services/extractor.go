package services

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"linkedin-post-scraper/utils"
)

// Extractor pulls the post text and media markers out of a fetched page.
type Extractor struct {
	logger *utils.Logger
}

// NewExtractor creates an Extractor with the given logger.
func NewExtractor(logger *utils.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// Text returns the post's display text from the page's description meta tag,
// trimmed. An empty string means the page carried no post text.
func (e *Extractor) Text(html string) (string, error) {
	if html == "" {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("extractor: parse page: %w", err)
	}

	content, _ := doc.Find(PostDescription).First().Attr("content")
	return strings.TrimSpace(content), nil
}

// HasMedia reports whether the page markup carries a recognizable image,
// video or document embed.
func (e *Extractor) HasMedia(html string) bool {
	if html == "" {
		return false
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		e.logger.Debug("[extractor] Media scan failed to parse page: %v", err)
		return false
	}

	if content, ok := doc.Find(OGImage).First().Attr("content"); ok {
		if articleShareImage.MatchString(content) || strings.Contains(content, aeroImagePrefix) {
			return true
		}
	}

	if doc.Find(OGVideo).Length() > 0 || doc.Find(VideoElement).Length() > 0 {
		return true
	}

	found := false
	doc.Find(ImageElement).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src, _ := s.Attr("src")
		if mediaCDNImage.MatchString(src) {
			found = true
			return false
		}
		return true
	})
	return found
}
