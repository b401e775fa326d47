package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/newspulse/pkg/domain"
)

// ErrIndexOutOfRange is returned for record lookups outside the dataset bounds
var ErrIndexOutOfRange = errors.New("record index out of range")

// RecordRepository handles record-related database operations
type RecordRepository struct {
	db *sqlx.DB
}

// recordSQL represents a record for SQL operations
type recordSQL struct {
	Idx       int        `db:"idx"`
	Text      string     `db:"text"`
	Label     int        `db:"label"`
	Sentiment string     `db:"sentiment"`
	CreatedAt *time.Time `db:"created_at"`
}

// distributionSQL holds one GROUP BY bucket
type distributionSQL struct {
	Key   string `db:"key"`
	Count int    `db:"cnt"`
}

// NewRecordRepository creates a new record repository
func NewRecordRepository(database *sqlx.DB) *RecordRepository {
	return &RecordRepository{db: database}
}

// Close closes the database connection
func (r *RecordRepository) Close() error {
	return r.db.Close()
}

// InsertRecords stores the loaded dataset in a single transaction
func (r *RecordRepository) InsertRecords(ctx context.Context, records []domain.Record) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("begin insert tx: %w", err)}
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		query := `INSERT INTO records (idx, text, label, sentiment, created_at)
		          VALUES (:idx, :text, :label, :sentiment, :created_at)`
		for i := range records {
			rec := &records[i]
			sqlRec := recordSQL{
				Idx:       rec.Index,
				Text:      rec.Text,
				Label:     int(rec.Label),
				Sentiment: string(rec.Sentiment),
			}
			if !rec.CreatedAt.IsZero() {
				ts := rec.CreatedAt
				sqlRec.CreatedAt = &ts
			}
			if _, err := tx.NamedExecContext(ctx, query, sqlRec); err != nil {
				if isLockError(err) {
					return err
				}
				return &criticalError{err: fmt.Errorf("insert record %d: %w", rec.Index, err)}
			}
		}

		if err := tx.Commit(); err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("commit records: %w", err)}
		}
		return nil
	})
}

// GetRecords returns all records ordered by their source position
func (r *RecordRepository) GetRecords(ctx context.Context) ([]domain.Record, error) {
	var sqlRecords []recordSQL
	err := r.db.SelectContext(ctx, &sqlRecords,
		"SELECT idx, text, label, sentiment, created_at FROM records ORDER BY idx")
	if err != nil {
		return nil, fmt.Errorf("get records: %w", err)
	}

	records := make([]domain.Record, len(sqlRecords))
	for i, sr := range sqlRecords {
		records[i] = toDomainRecord(&sr)
	}
	return records, nil
}

// GetRecord returns the record at the given zero-based index. Indexes
// outside [0, count-1] are rejected with ErrIndexOutOfRange.
func (r *RecordRepository) GetRecord(ctx context.Context, idx int) (domain.Record, error) {
	count, err := r.Count(ctx)
	if err != nil {
		return domain.Record{}, err
	}
	if idx < 0 || idx >= count {
		return domain.Record{}, fmt.Errorf("%w: %d not in [0, %d]", ErrIndexOutOfRange, idx, count-1)
	}

	var sqlRec recordSQL
	err = r.db.GetContext(ctx, &sqlRec,
		"SELECT idx, text, label, sentiment, created_at FROM records WHERE idx = ?", idx)
	if err != nil {
		return domain.Record{}, fmt.Errorf("get record %d: %w", idx, err)
	}
	return toDomainRecord(&sqlRec), nil
}

// GetPreview returns the first limit records in source order
func (r *RecordRepository) GetPreview(ctx context.Context, limit int) ([]domain.Record, error) {
	var sqlRecords []recordSQL
	err := r.db.SelectContext(ctx, &sqlRecords,
		"SELECT idx, text, label, sentiment, created_at FROM records ORDER BY idx LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("get preview: %w", err)
	}

	records := make([]domain.Record, len(sqlRecords))
	for i, sr := range sqlRecords {
		records[i] = toDomainRecord(&sr)
	}
	return records, nil
}

// Count returns the number of loaded records
func (r *RecordRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM records"); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return count, nil
}

// LabelDistribution returns per-label counts in fixed Real, Fake order,
// zero-filled for labels with no records
func (r *RecordRepository) LabelDistribution(ctx context.Context) ([]domain.LabelCount, error) {
	var rows []distributionSQL
	err := r.db.SelectContext(ctx, &rows,
		"SELECT CAST(label AS TEXT) AS key, COUNT(*) AS cnt FROM records GROUP BY label")
	if err != nil {
		return nil, fmt.Errorf("label distribution: %w", err)
	}

	counts := map[string]int{}
	for _, row := range rows {
		counts[row.Key] = row.Count
	}

	result := make([]domain.LabelCount, 0, 2)
	for _, label := range domain.Labels() {
		result = append(result, domain.LabelCount{
			Label: label,
			Count: counts[fmt.Sprintf("%d", int(label))],
		})
	}
	return result, nil
}

// SentimentDistribution returns per-sentiment counts in fixed
// Negative, Neutral, Positive order, zero-filled for absent categories
func (r *RecordRepository) SentimentDistribution(ctx context.Context) ([]domain.SentimentCount, error) {
	var rows []distributionSQL
	err := r.db.SelectContext(ctx, &rows,
		"SELECT sentiment AS key, COUNT(*) AS cnt FROM records GROUP BY sentiment")
	if err != nil {
		return nil, fmt.Errorf("sentiment distribution: %w", err)
	}

	counts := map[string]int{}
	for _, row := range rows {
		counts[row.Key] = row.Count
	}

	result := make([]domain.SentimentCount, 0, 3)
	for _, sentiment := range domain.Sentiments() {
		result = append(result, domain.SentimentCount{
			Sentiment: sentiment,
			Count:     counts[string(sentiment)],
		})
	}
	return result, nil
}

// crossTabSQL holds one label+sentiment GROUP BY bucket
type crossTabSQL struct {
	Label     int    `db:"label"`
	Sentiment string `db:"sentiment"`
	Count     int    `db:"cnt"`
}

// CrossTab returns the 2x3 label-by-sentiment count table with absent
// combinations filled with zero
func (r *RecordRepository) CrossTab(ctx context.Context) (domain.CrossTab, error) {
	var rows []crossTabSQL
	err := r.db.SelectContext(ctx, &rows,
		"SELECT label, sentiment, COUNT(*) AS cnt FROM records GROUP BY label, sentiment")
	if err != nil {
		return domain.CrossTab{}, fmt.Errorf("crosstab: %w", err)
	}

	table := domain.NewCrossTab()
	for _, row := range rows {
		table.Add(domain.Label(row.Label), domain.Sentiment(row.Sentiment), row.Count)
	}
	return table, nil
}

// toDomainRecord converts SQL representation to domain record
func toDomainRecord(sr *recordSQL) domain.Record {
	rec := domain.Record{
		Index:     sr.Idx,
		Text:      sr.Text,
		Label:     domain.Label(sr.Label),
		Sentiment: domain.Sentiment(sr.Sentiment),
	}
	if sr.CreatedAt != nil {
		rec.CreatedAt = *sr.CreatedAt
	}
	return rec
}
