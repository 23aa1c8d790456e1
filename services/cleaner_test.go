package services

import (
	"testing"

	"linkedin-post-scraper/utils"
)

func newTestLogger() *utils.Logger { return utils.NewLogger(false) }

func TestCleanerClean(t *testing.T) {
	c := NewTextCleaner(false, newTestLogger())

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", "   \t\n  ", ""},
		{"collapses whitespace", "hello   \n world", "hello world"},
		{"strips residual markup", "hello <b>bold</b> world", "hello bold world"},
		{"removes lnkd redirector", "read this https://lnkd.in/gXyZ123 now", "read this now"},
		{"removes mangled lnkd", "read httpslnkd.inAbC123 now", "read now"},
		{"removes short lnkd", "read lnkd.in/gXyZ now", "read now"},
		{"removes plain urls", "see https://example.com/page for more", "see for more"},
		{"fixes floating punctuation", "wait , really ?", "wait, really?"},
		{"drops special characters", "launch 🚀 day", "launch  day"},
		{"keeps basic punctuation", "yes! no? maybe, ok. a/b-c", "yes! no? maybe, ok. a/b-c"},
		{"preserves casing", "Mixed CASE Text", "Mixed CASE Text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Clean(tt.raw); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCleanerLowercase(t *testing.T) {
	c := NewTextCleaner(true, newTestLogger())
	if got := c.Clean("Mixed CASE Text"); got != "mixed case text" {
		t.Errorf("Clean with lowercase = %q, want %q", got, "mixed case text")
	}
}

func TestCleanerWordCount(t *testing.T) {
	c := NewTextCleaner(false, newTestLogger())

	tests := []struct {
		cleaned string
		want    int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"two words", 2},
		{"Great news! Check and tag acme jane", 7},
	}

	for _, tt := range tests {
		if got := c.WordCount(tt.cleaned); got != tt.want {
			t.Errorf("WordCount(%q) = %d, want %d", tt.cleaned, got, tt.want)
		}
	}
}

func TestCleanerCountMentions(t *testing.T) {
	c := NewTextCleaner(false, newTestLogger())

	tests := []struct {
		raw  string
		want int
	}{
		{"", 0},
		{"no tags here", 0},
		{"hi @acme", 1},
		{"tag @acme @jane", 2},
		{"@a @b @c", 3},
	}

	for _, tt := range tests {
		if got := c.CountMentions(tt.raw); got != tt.want {
			t.Errorf("CountMentions(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestCleanerCountHashtags(t *testing.T) {
	c := NewTextCleaner(false, newTestLogger())

	tests := []struct {
		raw  string
		want int
	}{
		{"", 0},
		{"no hashtags", 0},
		{"#golang rocks", 1},
		{"#go #golang #dev", 3},
	}

	for _, tt := range tests {
		if got := c.CountHashtags(tt.raw); got != tt.want {
			t.Errorf("CountHashtags(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestCleanerHasExternalLink(t *testing.T) {
	c := NewTextCleaner(false, newTestLogger())
	postURL := "https://www.linkedin.com/feed/update/urn:li:activity:1"

	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{"empty", "", false},
		{"no links", "just some words", false},
		{"lnkd redirector", "check this https://lnkd.in/gXyZ", true},
		{"plain external url", "see https://example.com for more", true},
		{"own url only", "link to https://www.linkedin.com/feed/update/urn:li:activity:1", false},
		{"own url plus external", "https://www.linkedin.com/feed/update/urn:li:activity:1 and https://x.co", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.HasExternalLink(tt.raw, postURL); got != tt.want {
				t.Errorf("HasExternalLink(%q) = %t, want %t", tt.raw, got, tt.want)
			}
		})
	}
}
