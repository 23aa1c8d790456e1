package models

import "time"

// ExportTable holds the rows read from a LinkedIn analytics export workbook.
// Columns are the normalized header names in their original order; every cell
// passes through to the output unchanged.
type ExportTable struct {
	Columns []string
	Rows    []ExportRow
}

// ExportRow is one spreadsheet row — one LinkedIn post. Values carries the raw
// cells for passthrough; the typed fields are parsed out of them once so the
// pipeline never re-reads the workbook.
type ExportRow struct {
	Values []string

	// URL is the post URL with any query string stripped. Empty when the
	// post_url cell is blank.
	URL string

	// Impressions is the parsed impressions cell. HasImpressions is false
	// when the cell is missing or not numeric.
	Impressions    int64
	HasImpressions bool

	// PublishedAt is the parsed post timestamp, zero when the export has no
	// usable date column for this row.
	PublishedAt time.Time
}

// Post is the enriched record: the export row plus the features derived from
// the post's public page. Written once to the output CSV, never updated.
type Post struct {
	Row ExportRow

	// Text is the cleaned post text, empty when the fetch or parse failed.
	Text         string
	WordCount    int
	Mentions     int
	Hashtags     int
	ExternalLink bool
	Media        bool

	// DayOfWeek is Monday..Sunday from the post timestamp, empty when the
	// timestamp is unknown.
	DayOfWeek string

	// Fetched records whether the page came back at all. Not an output
	// column; the insight report uses it to count failures.
	Fetched   bool
	FetchedAt time.Time
}

// InsightReport holds the computed analytics over the enriched dataset.
type InsightReport struct {
	TotalPosts    int
	FetchFailures int

	AvgWordCount          float64
	WithMedia             int
	WithExternalLink      int
	WithMentions          int
	WithHashtags          int
	AvgImpressions        float64
	AvgImpressionsMedia   float64
	AvgImpressionsNoMedia float64
	TopPost               *Post
	PostsByWeekday        map[string]int
}
