package main

import (
	"errors"
	"fmt"
	"os"

	"linkedin-post-scraper/config"
	"linkedin-post-scraper/export"
	"linkedin-post-scraper/scraper/linkedin"
	"linkedin-post-scraper/services"
	"linkedin-post-scraper/storage"
	"linkedin-post-scraper/utils"
)

func main() {
	cfg := config.Load()
	logger := utils.NewLogger(cfg.Debug)

	logger.Info("=== LinkedIn Post Feature Extraction starting ===")
	logger.Info("Config — export dir: %s | output: %s | timeout: %dms | delay: %d-%dms | browser: %t",
		cfg.ExportDir, cfg.CSVOutputPath, cfg.FetchTimeoutMs, cfg.DelayMinMs, cfg.DelayMaxMs, cfg.UseBrowser)

	exportPath, err := export.Locate(cfg.ExportDir)
	if err != nil {
		if errors.Is(err, export.ErrNoExportFound) {
			logger.Error("No analytics export found in %s — download one from LinkedIn first", cfg.ExportDir)
		} else {
			logger.Error("Export lookup failed: %v", err)
		}
		os.Exit(1)
	}
	logger.Info("Using export: %s", exportPath)

	table, err := export.Parse(exportPath)
	if err != nil {
		logger.Error("Export parse failed: %v", err)
		os.Exit(1)
	}
	logger.Info("Parsed %d posts from export", len(table.Rows))

	fetcher := linkedin.New(cfg, logger)
	if bf, ok := fetcher.(*linkedin.BrowserFetcher); ok {
		defer bf.Close()
	}

	extractor := services.NewExtractor(logger)
	cleaner := services.NewTextCleaner(cfg.LowercaseText, logger)
	throttle := utils.NewThrottle(cfg.DelayMinMs, cfg.DelayMaxMs)

	enricher := services.NewEnricher(fetcher, extractor, cleaner, throttle, logger)
	posts := enricher.Enrich(table)

	csvWriter, err := storage.NewCSVWriter(cfg.CSVOutputPath)
	if err != nil {
		logger.Error("Failed to create CSV writer: %v", err)
		os.Exit(1)
	}
	if err := csvWriter.WritePosts(table.Columns, posts); err != nil {
		logger.Error("CSV write failed: %v", err)
		_ = csvWriter.Close()
		os.Exit(1)
	}
	if err := csvWriter.Close(); err != nil {
		logger.Error("CSV close failed: %v", err)
		os.Exit(1)
	}
	logger.Info("Dataset saved to %s", cfg.CSVOutputPath)

	insightSvc := services.NewInsightService(logger)
	report := insightSvc.Generate(posts)
	insightSvc.Print(report)

	fmt.Printf("  Done. Dataset → %s\n\n", cfg.CSVOutputPath)
}
