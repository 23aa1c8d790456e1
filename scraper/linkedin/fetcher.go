package linkedin

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"linkedin-post-scraper/config"
	"linkedin-post-scraper/utils"
)

// Fetcher retrieves the public HTML of a LinkedIn post page. Implementations
// return an error instead of a page; the pipeline degrades per row and never
// aborts on a failed fetch.
type Fetcher interface {
	Fetch(url string) (string, error)
}

// maxBodyBytes caps how much of a response is kept. Post pages are well under
// this.
const maxBodyBytes = 4 << 20

// New returns the fetcher selected by configuration: a headless browser when
// USE_BROWSER is set, a plain HTTP client otherwise.
func New(cfg *config.Config, logger *utils.Logger) Fetcher {
	if cfg.UseBrowser {
		return NewBrowserFetcher(cfg, logger)
	}
	return NewHTTPFetcher(cfg, logger)
}

// HTTPFetcher downloads post pages with a single GET per post, presenting
// itself as a regular browser. LinkedIn serves a public, meta-tagged page to
// such requests.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
	logger    *utils.Logger
}

// NewHTTPFetcher creates an HTTPFetcher with the configured timeout.
func NewHTTPFetcher(cfg *config.Config, logger *utils.Logger) *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{
			Timeout: time.Duration(cfg.FetchTimeoutMs) * time.Millisecond,
		},
		userAgent: cfg.UserAgent,
		logger:    logger,
	}
}

// Fetch issues one GET and returns the page body. Non-2xx responses are
// errors.
func (f *HTTPFetcher) Fetch(url string) (string, error) {
	if url == "" {
		return "", fmt.Errorf("linkedin: empty post URL")
	}

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("linkedin: build request for %q: %w", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Connection", "keep-alive")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("linkedin: get %q: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("linkedin: get %q: unexpected status %s", url, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("linkedin: read body of %q: %w", url, err)
	}

	return string(body), nil
}
