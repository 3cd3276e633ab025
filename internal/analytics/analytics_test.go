package analytics

import (
	"strings"
	"testing"
	"time"

	"launchpad-bot/internal/storage"
)

func rec(ts time.Time, submitter, category string) storage.Record {
	return storage.Record{Timestamp: ts, Submitter: submitter, Category: category}
}

func TestDailyBucketsOnlyTargetDay(t *testing.T) {
	day := time.Date(2025, 10, 7, 15, 0, 0, 0, time.UTC)
	records := []storage.Record{
		rec(day.Add(-2*time.Hour), "Alice (@alice)", "support-request"),
		rec(day, "@bob", "get-listed"),
		rec(day.Add(8*time.Hour), "Alice (@alice)", "support-request"),
		rec(day.Add(-24*time.Hour), "old", "support-request"),
		rec(day.Add(24*time.Hour), "future", "get-listed"),
	}

	stats := Daily(records, day)
	if stats.TotalSubmissions != 3 {
		t.Fatalf("want 3 submissions, got %d", stats.TotalSubmissions)
	}
	if stats.UniqueSubmitters != 2 {
		t.Fatalf("want 2 unique submitters, got %d", stats.UniqueSubmitters)
	}
	if stats.ByCategory["support-request"] != 2 || stats.ByCategory["get-listed"] != 1 {
		t.Fatalf("category buckets wrong: %v", stats.ByCategory)
	}
}

func TestFormatListsCategoriesSorted(t *testing.T) {
	stats := &DailyStats{
		Date:             "2025-10-07",
		TotalSubmissions: 3,
		UniqueSubmitters: 2,
		ByCategory:       map[string]int{"support-request": 2, "get-listed": 1},
	}
	out := stats.Format()
	if !strings.Contains(out, "Total: 3") {
		t.Fatalf("total missing: %q", out)
	}
	if strings.Index(out, "get-listed") > strings.Index(out, "support-request") {
		t.Fatalf("categories should be sorted: %q", out)
	}
}

func TestDailyEmptyInput(t *testing.T) {
	stats := Daily(nil, time.Date(2025, 10, 7, 0, 0, 0, 0, time.UTC))
	if stats.TotalSubmissions != 0 || stats.UniqueSubmitters != 0 {
		t.Fatalf("empty input should yield zero stats: %+v", stats)
	}
}
