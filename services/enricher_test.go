package services

import (
	"errors"
	"testing"
	"time"

	"linkedin-post-scraper/models"
	"linkedin-post-scraper/utils"
)

// fakeFetcher serves canned pages per URL; unknown URLs fail like a dead
// network would.
type fakeFetcher struct {
	pages map[string]string
	calls []string
}

func (f *fakeFetcher) Fetch(url string) (string, error) {
	f.calls = append(f.calls, url)
	page, ok := f.pages[url]
	if !ok {
		return "", errors.New("fake: connection refused")
	}
	return page, nil
}

func newTestEnricher(fetcher *fakeFetcher) *Enricher {
	logger := newTestLogger()
	return NewEnricher(
		fetcher,
		NewExtractor(logger),
		NewTextCleaner(false, logger),
		utils.NewThrottle(0, 0),
		logger,
	)
}

func TestEnricherScenario(t *testing.T) {
	url := "https://example.com/post/1"
	page := `<html><head>` +
		`<meta name="description" content="Great news! Check https://x.co and tag @acme @jane">` +
		`<meta property="og:image" content="https://static.licdn.com/aero-v1/sc/h/share">` +
		`</head></html>`

	fetcher := &fakeFetcher{pages: map[string]string{url: page}}
	e := newTestEnricher(fetcher)

	table := &models.ExportTable{
		Columns: []string{"post_url", "created_date", "impressions"},
		Rows: []models.ExportRow{{
			Values:      []string{url, "2024-03-04", "100"},
			URL:         url,
			PublishedAt: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		}},
	}

	posts := e.Enrich(table)
	if len(posts) != 1 {
		t.Fatalf("got %d posts, want 1", len(posts))
	}

	p := posts[0]
	if !p.Fetched {
		t.Error("Fetched = false, want true")
	}
	if want := "Great news! Check and tag acme jane"; p.Text != want {
		t.Errorf("Text = %q, want %q", p.Text, want)
	}
	if p.WordCount != 7 {
		t.Errorf("WordCount = %d, want 7", p.WordCount)
	}
	if p.Mentions != 2 {
		t.Errorf("Mentions = %d, want 2", p.Mentions)
	}
	if !p.ExternalLink {
		t.Error("ExternalLink = false, want true")
	}
	if !p.Media {
		t.Error("Media = false, want true")
	}
	if p.DayOfWeek != "Monday" {
		t.Errorf("DayOfWeek = %q, want Monday", p.DayOfWeek)
	}
}

func TestEnricherDegradesOnFetchFailure(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{}}
	e := newTestEnricher(fetcher)

	table := &models.ExportTable{
		Columns: []string{"post_url", "created_date"},
		Rows: []models.ExportRow{{
			Values:      []string{"https://example.com/post/404", "2024-03-05"},
			URL:         "https://example.com/post/404",
			PublishedAt: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		}},
	}

	posts := e.Enrich(table)
	if len(posts) != 1 {
		t.Fatalf("failed fetches must not drop rows: got %d posts, want 1", len(posts))
	}

	p := posts[0]
	if p.Fetched {
		t.Error("Fetched = true, want false")
	}
	if p.Text != "" || p.WordCount != 0 || p.Mentions != 0 || p.Hashtags != 0 {
		t.Errorf("features not zeroed: text=%q words=%d tags=%d hashtags=%d",
			p.Text, p.WordCount, p.Mentions, p.Hashtags)
	}
	if p.ExternalLink || p.Media {
		t.Errorf("flags not cleared: link=%t media=%t", p.ExternalLink, p.Media)
	}
	// Day of week comes from the export row, not the page
	if p.DayOfWeek != "Tuesday" {
		t.Errorf("DayOfWeek = %q, want Tuesday", p.DayOfWeek)
	}
}

func TestEnricherKeepsRowCountAndOrder(t *testing.T) {
	good := "https://example.com/post/ok"
	bad := "https://example.com/post/down"
	page := `<html><head><meta name="description" content="short update"></head></html>`

	fetcher := &fakeFetcher{pages: map[string]string{good: page}}
	e := newTestEnricher(fetcher)

	table := &models.ExportTable{
		Columns: []string{"post_url"},
		Rows: []models.ExportRow{
			{Values: []string{bad}, URL: bad},
			{Values: []string{good}, URL: good},
			{Values: []string{bad}, URL: bad},
		},
	}

	posts := e.Enrich(table)
	if len(posts) != len(table.Rows) {
		t.Fatalf("got %d posts, want %d", len(posts), len(table.Rows))
	}
	for i, p := range posts {
		if p.Row.URL != table.Rows[i].URL {
			t.Errorf("post %d URL = %q, want %q (input order must hold)",
				i, p.Row.URL, table.Rows[i].URL)
		}
	}
	if posts[0].Fetched || !posts[1].Fetched || posts[2].Fetched {
		t.Errorf("fetched flags = %t,%t,%t, want false,true,false",
			posts[0].Fetched, posts[1].Fetched, posts[2].Fetched)
	}
}

func TestEnricherMissingTimestamp(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{}}
	e := newTestEnricher(fetcher)

	table := &models.ExportTable{
		Columns: []string{"post_url"},
		Rows:    []models.ExportRow{{Values: []string{"https://example.com/p"}, URL: "https://example.com/p"}},
	}

	posts := e.Enrich(table)
	if posts[0].DayOfWeek != "" {
		t.Errorf("DayOfWeek = %q, want empty for a row without a timestamp", posts[0].DayOfWeek)
	}
}
