package services

import (
	"time"

	"linkedin-post-scraper/models"
	"linkedin-post-scraper/scraper/linkedin"
	"linkedin-post-scraper/utils"
)

// Enricher turns export rows into enriched posts. Each row is processed
// independently: a failed fetch or parse zeroes that row's features and the
// row stays in the dataset.
type Enricher struct {
	fetcher   linkedin.Fetcher
	extractor *Extractor
	cleaner   *TextCleaner
	throttle  *utils.Throttle
	logger    *utils.Logger
}

// NewEnricher creates an Enricher from its collaborators.
func NewEnricher(fetcher linkedin.Fetcher, extractor *Extractor, cleaner *TextCleaner,
	throttle *utils.Throttle, logger *utils.Logger) *Enricher {
	return &Enricher{
		fetcher:   fetcher,
		extractor: extractor,
		cleaner:   cleaner,
		throttle:  throttle,
		logger:    logger,
	}
}

// Enrich processes every row in order and returns exactly one post per row.
func (e *Enricher) Enrich(table *models.ExportTable) []*models.Post {
	posts := make([]*models.Post, 0, len(table.Rows))

	for i, row := range table.Rows {
		e.logger.Info("[enricher] Processing post %d/%d: %s", i+1, len(table.Rows), row.URL)

		e.throttle.Wait()
		posts = append(posts, e.enrichRow(row))
	}

	e.logger.Info("[enricher] Processed %d posts", len(posts))
	return posts
}

// enrichRow fetches one post page and derives its features. Fetch and parse
// failures degrade to empty text and zero features.
func (e *Enricher) enrichRow(row models.ExportRow) *models.Post {
	post := &models.Post{Row: row}
	if !row.PublishedAt.IsZero() {
		post.DayOfWeek = row.PublishedAt.Weekday().String()
	}

	pageHTML, err := e.fetcher.Fetch(row.URL)
	if err != nil {
		e.logger.Warn("[enricher] Fetch failed, keeping row with empty features: %v", err)
		return post
	}
	post.Fetched = true
	post.FetchedAt = time.Now()

	rawText, err := e.extractor.Text(pageHTML)
	if err != nil {
		e.logger.Warn("[enricher] Parse failed for %s, keeping row with empty features: %v",
			row.URL, err)
		return post
	}

	// Tags and links are counted on the raw text; URL stripping during
	// cleaning would erase them.
	post.Mentions = e.cleaner.CountMentions(rawText)
	post.Hashtags = e.cleaner.CountHashtags(rawText)
	post.ExternalLink = e.cleaner.HasExternalLink(rawText, row.URL)
	post.Media = e.extractor.HasMedia(pageHTML)

	post.Text = e.cleaner.Clean(rawText)
	post.WordCount = e.cleaner.WordCount(post.Text)

	e.logger.Debug("[enricher] %s: %d words, %d tags, %d hashtags, link=%t, media=%t",
		row.URL, post.WordCount, post.Mentions, post.Hashtags, post.ExternalLink, post.Media)
	return post
}
