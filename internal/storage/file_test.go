package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func TestFileStoreAppendAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "submissions.jsonl")
	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("init: %v", err)
	}

	ctx := context.Background()
	first := Record{
		Timestamp: time.Date(2025, 10, 7, 12, 0, 0, 0, time.UTC),
		Submitter: "Alice",
		Category:  "support-request",
		Fields:    map[string]string{"name": "Alice", "email": "a@x.com", "question": "bug in X"},
	}
	second := Record{
		Timestamp: time.Date(2025, 10, 7, 13, 0, 0, 0, time.UTC),
		Submitter: "@bob",
		Category:  "get-listed",
		Fields:    map[string]string{"token_ticker": "OMFG"},
	}
	if err := s.Append(ctx, first); err != nil {
		t.Fatalf("append first: %v", err)
	}
	if err := s.Append(ctx, second); err != nil {
		t.Fatalf("append second: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 records, got %d", len(got))
	}
	if got[0].Submitter != "Alice" || got[0].Fields["question"] != "bug in X" {
		t.Fatalf("first record mismatch: %+v", got[0])
	}
	if got[1].Category != "get-listed" || !got[1].Timestamp.Equal(second.Timestamp) {
		t.Fatalf("second record mismatch: %+v", got[1])
	}
}

func TestFileStoreLoadEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.jsonl")
	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("want no records, got %d", len(got))
	}
}
