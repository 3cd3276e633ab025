package analytics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"launchpad-bot/internal/storage"
)

// DailyStats aggregates one day of submissions for the staff report.
type DailyStats struct {
	Date             string
	TotalSubmissions int
	ByCategory       map[string]int
	UniqueSubmitters int
}

// Daily buckets records falling on targetDate's calendar day.
func Daily(records []storage.Record, targetDate time.Time) *DailyStats {
	startOfDay := time.Date(targetDate.Year(), targetDate.Month(), targetDate.Day(), 0, 0, 0, 0, targetDate.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	stats := &DailyStats{
		Date:       startOfDay.Format("2006-01-02"),
		ByCategory: make(map[string]int),
	}
	submitters := make(map[string]bool)

	for _, rec := range records {
		if rec.Timestamp.Before(startOfDay) || !rec.Timestamp.Before(endOfDay) {
			continue
		}
		stats.TotalSubmissions++
		stats.ByCategory[rec.Category]++
		submitters[rec.Submitter] = true
	}
	stats.UniqueSubmitters = len(submitters)
	return stats
}

// Format renders the stats as a plain-text report message.
func (s *DailyStats) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Submissions report for %s\n", s.Date)
	fmt.Fprintf(&b, "Total: %d\n", s.TotalSubmissions)
	fmt.Fprintf(&b, "Unique submitters: %d\n", s.UniqueSubmitters)

	categories := make([]string, 0, len(s.ByCategory))
	for c := range s.ByCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	for _, c := range categories {
		fmt.Fprintf(&b, "- %s: %d\n", c, s.ByCategory[c])
	}
	return strings.TrimRight(b.String(), "\n")
}
