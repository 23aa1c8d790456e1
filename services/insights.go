package services

import (
	"fmt"
	"strings"
	"time"

	"linkedin-post-scraper/models"
	"linkedin-post-scraper/utils"
)

type InsightService struct {
	logger *utils.Logger
}

func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

func (s *InsightService) Generate(posts []*models.Post) *models.InsightReport {
	report := &models.InsightReport{
		PostsByWeekday: make(map[string]int),
	}

	if len(posts) == 0 {
		return report
	}

	report.TotalPosts = len(posts)

	var totalWords int
	var imprPosts, mediaImpr, noMediaImpr []int64

	for _, p := range posts {
		if !p.Fetched {
			report.FetchFailures++
		}
		totalWords += p.WordCount
		if p.Media {
			report.WithMedia++
		}
		if p.ExternalLink {
			report.WithExternalLink++
		}
		if p.Mentions > 0 {
			report.WithMentions++
		}
		if p.Hashtags > 0 {
			report.WithHashtags++
		}
		if p.DayOfWeek != "" {
			report.PostsByWeekday[p.DayOfWeek]++
		}
		if p.Row.HasImpressions {
			imprPosts = append(imprPosts, p.Row.Impressions)
			if p.Media {
				mediaImpr = append(mediaImpr, p.Row.Impressions)
			} else {
				noMediaImpr = append(noMediaImpr, p.Row.Impressions)
			}
			if report.TopPost == nil || p.Row.Impressions > report.TopPost.Row.Impressions {
				report.TopPost = p
			}
		}
	}

	report.AvgWordCount = round2(float64(totalWords) / float64(len(posts)))
	report.AvgImpressions = average(imprPosts)
	report.AvgImpressionsMedia = average(mediaImpr)
	report.AvgImpressionsNoMedia = average(noMediaImpr)

	return report
}

func (s *InsightService) Print(r *models.InsightReport) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  📊 LINKEDIN POST INSIGHTS\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	// Overview
	fmt.Printf("\033[1;33m  Overview\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Total posts          : \033[1m%d\033[0m\n", r.TotalPosts)
	fmt.Printf("  Fetch failures       : \033[1m%d\033[0m\n", r.FetchFailures)
	fmt.Printf("  Average word count   : \033[1m%.2f\033[0m\n", r.AvgWordCount)
	fmt.Printf("  With media           : \033[1m%d\033[0m\n", r.WithMedia)
	fmt.Printf("  With external link   : \033[1m%d\033[0m\n", r.WithExternalLink)
	fmt.Printf("  With mentions        : \033[1m%d\033[0m\n", r.WithMentions)
	fmt.Printf("  With hashtags        : \033[1m%d\033[0m\n", r.WithHashtags)
	fmt.Println()

	// Impressions
	fmt.Printf("\033[1;33m  Impressions\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if r.AvgImpressions > 0 {
		fmt.Printf("  Average            : \033[1;32m%.1f\033[0m\n", r.AvgImpressions)
		fmt.Printf("  Average with media : \033[1;32m%.1f\033[0m\n", r.AvgImpressionsMedia)
		fmt.Printf("  Average no media   : \033[1;32m%.1f\033[0m\n", r.AvgImpressionsNoMedia)
	} else {
		fmt.Printf("  No impression data available\n")
	}
	fmt.Println()

	// Top Post
	if r.TopPost != nil {
		fmt.Printf("\033[1;33m  Top Post by Impressions\033[0m\n")
		fmt.Printf("  %s\n", thin)
		fmt.Printf("  %s\n", truncate(r.TopPost.Text, 50))
		fmt.Printf("  URL         : %s\n", r.TopPost.Row.URL)
		fmt.Printf("  Impressions : \033[1;31m%d\033[0m\n", r.TopPost.Row.Impressions)
		fmt.Println()
	}

	// Posts by Weekday
	fmt.Printf("\033[1;33m  Posts by Weekday\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(r.PostsByWeekday) == 0 {
		fmt.Printf("  No date data\n")
	} else {
		weekdays := []time.Weekday{time.Monday, time.Tuesday, time.Wednesday,
			time.Thursday, time.Friday, time.Saturday, time.Sunday}
		for _, d := range weekdays {
			name := d.String()
			if cnt := r.PostsByWeekday[name]; cnt > 0 {
				bar := strings.Repeat("█", cnt)
				fmt.Printf("  %-10s %s (%d)\n", name, bar, cnt)
			}
		}
	}

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}

func average(vals []int64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var total int64
	for _, v := range vals {
		total += v
	}
	return round2(float64(total) / float64(len(vals)))
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
