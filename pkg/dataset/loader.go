// Package dataset reads the labeled news CSV and ingests it into the
// record store. The file is read exactly once per process; every later
// Load call returns the memoized result.
package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/araddon/dateparse"

	"github.com/umputun/newspulse/pkg/domain"
)

// required input columns, the timestamp column is configurable and optional
const (
	columnText      = "text"
	columnLabel     = "fake_news_label"
	columnSentiment = "sentiment_label"
)

// Store receives the parsed records, implemented by the record repository
type Store interface {
	InsertRecords(ctx context.Context, records []domain.Record) error
}

// Loader performs the one-time dataset load
type Loader struct {
	path     string
	tsColumn string
	store    Store

	once   sync.Once
	result *Result
	err    error
}

// Result is the outcome of the load. Records and the capability flag are
// read-only for the rest of the process.
type Result struct {
	Records       []domain.Record
	HasTimestamps bool
}

// New creates a loader for the given file path and timestamp column name
func New(path, tsColumn string, store Store) *Loader {
	return &Loader{path: path, tsColumn: tsColumn, store: store}
}

// Load reads and ingests the dataset, computed at most once per process.
// Any failure is fatal for the caller: there is no partial or fallback data.
func (l *Loader) Load(ctx context.Context) (*Result, error) {
	l.once.Do(func() {
		l.result, l.err = l.load(ctx)
	})
	return l.result, l.err
}

func (l *Loader) load(ctx context.Context) (*Result, error) {
	f, err := os.Open(l.path) //nolint:gosec // file path comes from config
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", l.path, err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range []string{columnText, columnLabel, columnSentiment} {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("dataset %s missing required column %q", l.path, name)
		}
	}

	tsIdx, hasTimestamps := columns[l.tsColumn]
	if !hasTimestamps {
		log.Printf("[WARN] dataset has no %q column, week-based views disabled", l.tsColumn)
	}

	var records []domain.Record
	for rowNum := 1; ; rowNum++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read dataset row %d: %w", rowNum, err)
		}

		rec, err := parseRecord(row, columns, tsIdx, hasTimestamps)
		if err != nil {
			return nil, fmt.Errorf("parse dataset row %d: %w", rowNum, err)
		}
		rec.Index = len(records)
		records = append(records, rec)
	}

	if err := l.store.InsertRecords(ctx, records); err != nil {
		return nil, fmt.Errorf("ingest records: %w", err)
	}

	log.Printf("[INFO] loaded %d records from %s, timestamps: %v", len(records), l.path, hasTimestamps)
	return &Result{Records: records, HasTimestamps: hasTimestamps}, nil
}

// parseRecord converts one CSV row into a domain record
func parseRecord(row []string, columns map[string]int, tsIdx int, hasTimestamps bool) (domain.Record, error) {
	get := func(idx int) string {
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	labelValue := get(columns[columnLabel])
	label, err := strconv.Atoi(labelValue)
	if err != nil || (label != 0 && label != 1) {
		return domain.Record{}, fmt.Errorf("invalid label %q", labelValue)
	}

	sentiment := domain.Sentiment(get(columns[columnSentiment]))
	if !sentiment.Valid() {
		return domain.Record{}, fmt.Errorf("invalid sentiment %q", sentiment)
	}

	rec := domain.Record{
		Text:      get(columns[columnText]),
		Label:     domain.Label(label),
		Sentiment: sentiment,
	}

	// an empty timestamp cell leaves the record out of week-based views
	// without failing the load
	if hasTimestamps {
		if tsValue := get(tsIdx); tsValue != "" {
			ts, err := dateparse.ParseAny(tsValue)
			if err != nil {
				return domain.Record{}, fmt.Errorf("invalid timestamp %q: %w", tsValue, err)
			}
			rec.CreatedAt = ts.UTC()
		}
	}

	return rec, nil
}
