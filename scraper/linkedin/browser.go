package linkedin

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/chromedp/chromedp"

	"linkedin-post-scraper/config"
	"linkedin-post-scraper/utils"
)

// BrowserFetcher renders post pages in headless Chrome. LinkedIn's authwall
// sometimes rejects plain HTTP clients; a real browser gets the public page.
type BrowserFetcher struct {
	cfg    *config.Config
	logger *utils.Logger

	allocCtx    context.Context
	cancelCtx   context.CancelFunc
	cancelAlloc context.CancelFunc
}

// NewBrowserFetcher creates the fetcher and its Chrome allocator. The browser
// process itself starts lazily on the first Fetch.
func NewBrowserFetcher(cfg *config.Config, logger *utils.Logger) *BrowserFetcher {
	chromeBin := findChromeBinary(cfg.ChromeBin)
	if chromeBin != "" {
		logger.Info("[linkedin] Using browser binary: %s", chromeBin)
	} else {
		logger.Warn("[linkedin] No Chrome binary found, relying on chromedp defaults")
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.UserAgent(cfg.UserAgent),
	)
	if chromeBin != "" {
		opts = append(opts, chromedp.ExecPath(chromeBin))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)

	// Suppress chromedp log noise
	silentCtx, cancelSilent := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(func(string, ...interface{}) {}))

	return &BrowserFetcher{
		cfg:         cfg,
		logger:      logger,
		allocCtx:    silentCtx,
		cancelCtx:   cancelSilent,
		cancelAlloc: cancelAlloc,
	}
}

// Fetch navigates to the post URL and returns the rendered page HTML.
func (f *BrowserFetcher) Fetch(url string) (string, error) {
	if url == "" {
		return "", fmt.Errorf("linkedin: empty post URL")
	}

	ctx, cancel := chromedp.NewContext(f.allocCtx)
	defer cancel()

	ctx, cancelTimeout := context.WithTimeout(ctx,
		time.Duration(f.cfg.FetchTimeoutMs)*time.Millisecond)
	defer cancelTimeout()

	var html string
	err := chromedp.Run(ctx,
		chromedp.Navigate(url),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("linkedin: render %q: %w", url, err)
	}

	return html, nil
}

// Close shuts down the browser and its allocator.
func (f *BrowserFetcher) Close() {
	f.cancelCtx()
	f.cancelAlloc()
}

// findChromeBinary locates a Chrome/Chromium binary, preferring the
// configured override.
func findChromeBinary(override string) string {
	if override != "" {
		return override
	}

	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
