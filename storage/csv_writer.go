package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"linkedin-post-scraper/models"
)

// featureColumns are appended after the export's own columns, in this order.
var featureColumns = []string{
	"post_text", "word_count", "n_tags", "n_hashtags",
	"external_link", "media", "day_of_week",
}

// CSVWriter writes the enriched dataset to a CSV file. Create it only after
// enrichment finishes so a failed run never clobbers a previous output.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates (or truncates) the CSV file at the given path.
// Intermediate directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	return &CSVWriter{file: f, writer: csv.NewWriter(f)}, nil
}

// WritePosts writes the header (export columns plus feature columns) and one
// row per post, original cells passed through unchanged.
func (c *CSVWriter) WritePosts(columns []string, posts []*models.Post) error {
	header := append(append([]string{}, columns...), featureColumns...)
	if err := c.writer.Write(header); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}

	for _, p := range posts {
		row := make([]string, 0, len(header))
		for i := range columns {
			if i < len(p.Row.Values) {
				row = append(row, p.Row.Values[i])
			} else {
				row = append(row, "")
			}
		}
		row = append(row,
			p.Text,
			strconv.Itoa(p.WordCount),
			strconv.Itoa(p.Mentions),
			strconv.Itoa(p.Hashtags),
			strconv.FormatBool(p.ExternalLink),
			strconv.FormatBool(p.Media),
			p.DayOfWeek,
		)
		if err := c.writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	if err := c.writer.Error(); err != nil {
		_ = c.file.Close()
		return err
	}
	return c.file.Close()
}
