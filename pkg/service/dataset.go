// Package service composes the loader, the record store and the analytics
// functions into the read-only views consumed by the HTTP server.
package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/umputun/newspulse/pkg/analytics"
	"github.com/umputun/newspulse/pkg/dataset"
	"github.com/umputun/newspulse/pkg/domain"
)

// Store is the subset of the record repository used by the service
type Store interface {
	GetRecord(ctx context.Context, idx int) (domain.Record, error)
	GetPreview(ctx context.Context, limit int) ([]domain.Record, error)
	Count(ctx context.Context) (int, error)
	LabelDistribution(ctx context.Context) ([]domain.LabelCount, error)
	SentimentDistribution(ctx context.Context) ([]domain.SentimentCount, error)
	CrossTab(ctx context.Context) (domain.CrossTab, error)
}

// DatasetService provides fully materialized, read-only views over the
// loaded dataset. Weekly and smoothed series are recomputed per call from
// the immutable records, so concurrent render passes share no state.
type DatasetService struct {
	loader      *dataset.Loader
	store       Store
	window      int
	previewRows int
}

// Overview is everything the dashboard page needs in one snapshot
type Overview struct {
	Summary    domain.Summary
	Preview    []domain.Record
	Labels     []domain.LabelCount
	Sentiments []domain.SentimentCount
	CrossTab   domain.CrossTab
}

// NewDataset creates the service. window is the smoothing window in weeks,
// previewRows the number of rows shown on the preview panel.
func NewDataset(loader *dataset.Loader, store Store, window, previewRows int) *DatasetService {
	return &DatasetService{loader: loader, store: store, window: window, previewRows: previewRows}
}

// Summary returns the dataset size and the timestamp capability flag
func (s *DatasetService) Summary(ctx context.Context) (domain.Summary, error) {
	res, err := s.loader.Load(ctx)
	if err != nil {
		return domain.Summary{}, err
	}
	return domain.Summary{Rows: len(res.Records), HasTimestamps: res.HasTimestamps}, nil
}

// Records returns the full dataset in source order
func (s *DatasetService) Records(ctx context.Context) ([]domain.Record, error) {
	res, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	return res.Records, nil
}

// Record returns the record at the given index, bounds-checked by the store
func (s *DatasetService) Record(ctx context.Context, idx int) (domain.Record, error) {
	return s.store.GetRecord(ctx, idx)
}

// LabelDistribution returns fake/real counts in fixed order
func (s *DatasetService) LabelDistribution(ctx context.Context) ([]domain.LabelCount, error) {
	return s.store.LabelDistribution(ctx)
}

// SentimentDistribution returns sentiment counts in fixed order
func (s *DatasetService) SentimentDistribution(ctx context.Context) ([]domain.SentimentCount, error) {
	return s.store.SentimentDistribution(ctx)
}

// CrossTab returns the 2x3 label-by-sentiment count table
func (s *DatasetService) CrossTab(ctx context.Context) (domain.CrossTab, error) {
	return s.store.CrossTab(ctx)
}

// WeeklyStats returns per-week rates sorted ascending by week start.
// The result is empty when the dataset carries no timestamps.
func (s *DatasetService) WeeklyStats(ctx context.Context) ([]domain.WeeklyStat, error) {
	res, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	if !res.HasTimestamps {
		return []domain.WeeklyStat{}, nil
	}
	return analytics.Weekly(res.Records), nil
}

// SmoothedStats returns the weekly series smoothed with the configured
// trailing window
func (s *DatasetService) SmoothedStats(ctx context.Context) ([]domain.WeeklyStat, error) {
	stats, err := s.WeeklyStats(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.Smooth(stats, s.window), nil
}

// Overview gathers the dashboard snapshot, fetching independent views
// concurrently
func (s *DatasetService) Overview(ctx context.Context) (*Overview, error) {
	summary, err := s.Summary(ctx)
	if err != nil {
		return nil, err
	}

	ov := &Overview{Summary: summary}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		ov.Preview, err = s.store.GetPreview(gctx, s.previewRows)
		return err
	})
	g.Go(func() (err error) {
		ov.Labels, err = s.store.LabelDistribution(gctx)
		return err
	})
	g.Go(func() (err error) {
		ov.Sentiments, err = s.store.SentimentDistribution(gctx)
		return err
	})
	g.Go(func() (err error) {
		ov.CrossTab, err = s.store.CrossTab(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ov, nil
}
