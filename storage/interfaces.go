package storage

import "linkedin-post-scraper/models"

// PostWriter is the interface any output backend must satisfy.
type PostWriter interface {
	WritePosts(columns []string, posts []*models.Post) error
	Close() error
}
