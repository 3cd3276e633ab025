package sheets

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"launchpad-bot/internal/storage"
)

// Store appends submission records as rows of a Google Sheet. It owns the
// column layout: timestamp, submitter, category, then the form's fields in
// declaration order.
type Store struct {
	svc           *gsheets.Service
	spreadsheetID string
	// columns maps a record category to its field order. Unknown
	// categories fall back to sorted field names.
	columns map[string][]string
}

// New builds a Store from service-account credentials JSON.
func New(ctx context.Context, credentialsJSON []byte, spreadsheetID string, columns map[string][]string) (*Store, error) {
	conf, err := google.JWTConfigFromJSON(credentialsJSON, gsheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parse service account credentials: %w", err)
	}
	svc, err := gsheets.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("init sheets service: %w", err)
	}
	return &Store{svc: svc, spreadsheetID: spreadsheetID, columns: columns}, nil
}

func (s *Store) Append(ctx context.Context, rec storage.Record) error {
	row := buildRow(rec, s.columns[rec.Category])
	vr := &gsheets.ValueRange{Values: [][]interface{}{row}}
	_, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, "A1", vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append row: %w", err)
	}
	return nil
}

func buildRow(rec storage.Record, fieldOrder []string) []interface{} {
	row := []interface{}{
		rec.Timestamp.Format("2006-01-02 15:04:05"),
		rec.Submitter,
		rec.Category,
	}
	if fieldOrder == nil {
		fieldOrder = make([]string, 0, len(rec.Fields))
		for k := range rec.Fields {
			fieldOrder = append(fieldOrder, k)
		}
		sort.Strings(fieldOrder)
	}
	for _, name := range fieldOrder {
		row = append(row, rec.Fields[name])
	}
	return row
}
