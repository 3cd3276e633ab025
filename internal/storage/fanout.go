package storage

import (
	"context"
	"log"
)

// Fanout writes each record to a primary appender and, best-effort, to any
// number of secondary ones (e.g. a local audit log next to the Sheets
// store). Only the primary's error is surfaced; secondary failures are
// logged and swallowed.
type Fanout struct {
	Primary   Appender
	Secondary []Appender
}

func (f *Fanout) Append(ctx context.Context, rec Record) error {
	if err := f.Primary.Append(ctx, rec); err != nil {
		return err
	}
	for _, a := range f.Secondary {
		if err := a.Append(ctx, rec); err != nil {
			log.Printf("secondary append failed: %v", err)
		}
	}
	return nil
}
