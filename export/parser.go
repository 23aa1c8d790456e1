package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"linkedin-post-scraper/models"
)

// preferredSheet is the sheet LinkedIn writes post analytics to.
const preferredSheet = "Sheet1"

// dateColumns are the normalized header names that may carry the post
// timestamp. The first one present wins.
var dateColumns = []string{"created_date", "post_date", "publish_date", "posted_at", "created_at", "date"}

// dateLayouts covers the timestamp formats seen in analytics exports.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	"1/2/2006 15:04",
	"1/2/2006",
	"01/02/2006",
	"Jan 2, 2006",
	time.RFC3339,
}

// excelEpoch is day zero of Excel's serial date numbering.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// Parse reads a LinkedIn analytics export workbook and returns its rows with
// the post URL, impressions and publish timestamp parsed out. Every cell also
// passes through untouched in Values so the output keeps the original
// columns.
func Parse(path string) (*models.ExportTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("export: open %q: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(preferredSheet)
	if err != nil {
		// Exports saved through other tools sometimes rename the sheet;
		// fall back to the first one in the workbook.
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("export: %q has no sheets", path)
		}
		rows, err = f.GetRows(sheets[0])
		if err != nil {
			return nil, fmt.Errorf("export: read sheet %q: %w", sheets[0], err)
		}
	}

	headerIdx := -1
	for i, row := range rows {
		if !rowEmpty(row) {
			headerIdx = i
			break
		}
	}
	if headerIdx == -1 {
		return nil, fmt.Errorf("export: %q contains no header row", path)
	}

	columns := normalizeHeader(rows[headerIdx])
	urlCol := indexOf(columns, "post_url")
	if urlCol == -1 {
		return nil, fmt.Errorf("export: %q has no post_url column (found: %s)",
			path, strings.Join(columns, ", "))
	}
	imprCol := indexOf(columns, "impressions")
	dateCol := -1
	for _, name := range dateColumns {
		if idx := indexOf(columns, name); idx != -1 {
			dateCol = idx
			break
		}
	}

	table := &models.ExportTable{Columns: columns}
	for _, row := range rows[headerIdx+1:] {
		if rowEmpty(row) {
			continue
		}

		values := make([]string, len(columns))
		for i := range values {
			if i < len(row) {
				values[i] = row[i]
			}
		}

		r := models.ExportRow{Values: values}
		r.URL = canonicalURL(values[urlCol])
		if imprCol != -1 {
			r.Impressions, r.HasImpressions = parseCount(values[imprCol])
		}
		if dateCol != -1 {
			r.PublishedAt = parseDate(values[dateCol])
		}
		table.Rows = append(table.Rows, r)
	}

	return table, nil
}

// canonicalURL strips the tracking query string LinkedIn appends to post URLs.
func canonicalURL(raw string) string {
	url := strings.TrimSpace(raw)
	if i := strings.IndexByte(url, '?'); i != -1 {
		url = url[:i]
	}
	return url
}

// parseCount reads a numeric cell, tolerating thousands separators and the
// float rendering Excel gives whole numbers.
func parseCount(cell string) (int64, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(cell), ",", "")
	if s == "" {
		return 0, false
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f), true
	}
	return 0, false
}

// parseDate tries the known export layouts, then Excel's serial date numbers.
// Returns the zero time when nothing matches.
func parseDate(cell string) time.Time {
	s := strings.TrimSpace(cell)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 {
		days := int(serial)
		frac := serial - float64(days)
		return excelEpoch.AddDate(0, 0, days).
			Add(time.Duration(frac * 24 * float64(time.Hour)))
	}
	return time.Time{}
}

// normalizeHeader lowercases header cells and turns spaces into underscores,
// matching the column names the raw export uses.
func normalizeHeader(row []string) []string {
	columns := make([]string, len(row))
	for i, cell := range row {
		columns[i] = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(cell)), " ", "_")
	}
	return columns
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func indexOf(columns []string, name string) int {
	for i, c := range columns {
		if c == name {
			return i
		}
	}
	return -1
}
