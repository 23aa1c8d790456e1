package services

import (
	"html"
	"regexp"
	"strings"

	"linkedin-post-scraper/utils"
)

var (
	// htmlTagRegexp strips residual markup left in extracted text
	htmlTagRegexp = regexp.MustCompile(`<[^>]+>`)
	// lnkdStandardRegexp matches LinkedIn's external-link redirector
	lnkdStandardRegexp = regexp.MustCompile(`https?://lnkd\.in/[a-zA-Z0-9_-]+`)
	// lnkdMangledRegexp matches the redirector with the scheme squashed in
	lnkdMangledRegexp = regexp.MustCompile(`httpslnkd\.in[a-zA-Z0-9_-]+`)
	// lnkdShortRegexp matches the bare-host form of the redirector
	lnkdShortRegexp = regexp.MustCompile(`lnkd\.in/[a-zA-Z0-9_-]+`)
	// urlRegexp matches any remaining URL
	urlRegexp = regexp.MustCompile(`https?://\S+`)
	// whitespaceRegexp collapses runs of whitespace
	whitespaceRegexp = regexp.MustCompile(`\s+`)
	// punctSpaceRegexp catches whitespace floating before punctuation
	punctSpaceRegexp = regexp.MustCompile(`\s+([.!?,:;])`)
	// specialCharRegexp drops everything outside letters, digits, underscore,
	// whitespace and basic punctuation
	specialCharRegexp = regexp.MustCompile(`[^\p{L}\p{N}_\s.,!?/-]`)
	// mentionRegexp matches @-style user and company tags
	mentionRegexp = regexp.MustCompile(`@[\p{L}\p{N}_]+`)
	// hashtagRegexp matches hashtag markers
	hashtagRegexp = regexp.MustCompile(`#[\p{L}\p{N}_]+`)
)

// lnkdRedirector marks an external link in raw post text.
const lnkdRedirector = "https://lnkd.in"

// TextCleaner normalises extracted post text and derives its textual
// features. Casing is preserved unless lowercase is set.
type TextCleaner struct {
	lowercase bool
	logger    *utils.Logger
}

// NewTextCleaner creates a TextCleaner. When lowercase is true, cleaned text
// is case-folded.
func NewTextCleaner(lowercase bool, logger *utils.Logger) *TextCleaner {
	return &TextCleaner{lowercase: lowercase, logger: logger}
}

// Clean normalises post text: strips markup and URLs, collapses whitespace,
// fixes floating punctuation and drops special characters.
func (c *TextCleaner) Clean(text string) string {
	if text == "" {
		return ""
	}

	text = htmlTagRegexp.ReplaceAllString(text, "")
	text = html.UnescapeString(text)

	text = lnkdStandardRegexp.ReplaceAllString(text, "")
	text = lnkdMangledRegexp.ReplaceAllString(text, "")
	text = lnkdShortRegexp.ReplaceAllString(text, "")
	text = urlRegexp.ReplaceAllString(text, "")

	text = whitespaceRegexp.ReplaceAllString(strings.TrimSpace(text), " ")
	text = punctSpaceRegexp.ReplaceAllString(text, "$1")
	text = specialCharRegexp.ReplaceAllString(text, "")

	if c.lowercase {
		text = strings.ToLower(text)
	}
	return text
}

// WordCount counts whitespace-delimited tokens in cleaned text.
func (c *TextCleaner) WordCount(cleaned string) int {
	return len(strings.Fields(cleaned))
}

// CountMentions counts @-style tags in raw post text.
func (c *TextCleaner) CountMentions(raw string) int {
	if raw == "" {
		return 0
	}
	return len(mentionRegexp.FindAllString(raw, -1))
}

// CountHashtags counts hashtag markers in raw post text.
func (c *TextCleaner) CountHashtags(raw string) int {
	if raw == "" {
		return 0
	}
	return len(hashtagRegexp.FindAllString(raw, -1))
}

// HasExternalLink reports whether raw post text links anywhere besides the
// post itself: either through LinkedIn's redirector or a plain URL.
func (c *TextCleaner) HasExternalLink(raw, postURL string) bool {
	if raw == "" {
		return false
	}
	if strings.Contains(raw, lnkdRedirector) {
		return true
	}
	for _, u := range urlRegexp.FindAllString(raw, -1) {
		u = strings.TrimRight(u, ".,!?;:")
		if postURL == "" || !strings.HasPrefix(u, postURL) {
			return true
		}
	}
	return false
}
