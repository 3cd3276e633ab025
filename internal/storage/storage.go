package storage

import (
	"context"
	"time"
)

// Record is the finalized output of a completed form. It is created once per
// successful finalization and never mutated afterwards.
type Record struct {
	Timestamp time.Time         `json:"timestamp"`
	Submitter string            `json:"submitter"`
	Category  string            `json:"category"`
	Fields    map[string]string `json:"fields"`
}

// Appender abstracts the persistence collaborator that receives completed
// submissions. The storage layout (columns, sheets, files) is the
// implementation's concern; the core only hands over a flat field map.
// Implementations must be safe for concurrent use.
type Appender interface {
	Append(ctx context.Context, rec Record) error
}

// Loader reads back previously appended records, in append order.
// Used by the daily report, not by the submission path.
type Loader interface {
	Load() ([]Record, error)
}
