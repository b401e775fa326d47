package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newspulse/pkg/domain"
)

func makeSeries(fakeRates ...float64) []domain.WeeklyStat {
	start := time.Date(2021, 1, 4, 0, 0, 0, 0, time.UTC)
	stats := make([]domain.WeeklyStat, len(fakeRates))
	for i, rate := range fakeRates {
		stats[i] = domain.WeeklyStat{Week: start.AddDate(0, 0, 7*i), FakeRate: rate}
	}
	return stats
}

func TestSmooth(t *testing.T) {
	t.Run("expanding then trailing window of four", func(t *testing.T) {
		stats := makeSeries(0.2, 0.4, 0.6, 0.8, 1.0)

		smoothed := Smooth(stats, 4)
		require.Len(t, smoothed, 5)

		want := []float64{0.2, 0.3, 0.4, 0.5, 0.7}
		for i, w := range want {
			assert.InDelta(t, w, smoothed[i].FakeRate, 1e-9, "row %d", i)
		}
	})

	t.Run("first row unchanged", func(t *testing.T) {
		stats := makeSeries(0.9, 0.1, 0.5)
		smoothed := Smooth(stats, 4)
		assert.Equal(t, stats[0], smoothed[0])
	})

	t.Run("weeks preserved", func(t *testing.T) {
		stats := makeSeries(0.1, 0.2, 0.3)
		smoothed := Smooth(stats, 4)
		for i := range stats {
			assert.Equal(t, stats[i].Week, smoothed[i].Week)
		}
	})

	t.Run("identity for window one", func(t *testing.T) {
		stats := makeSeries(0.2, 0.8, 0.5)
		smoothed := Smooth(stats, 1)
		assert.Equal(t, stats, smoothed)
	})

	t.Run("identity for single row", func(t *testing.T) {
		stats := makeSeries(0.7)
		smoothed := Smooth(stats, 4)
		assert.Equal(t, stats, smoothed)
	})

	t.Run("smooths all metrics independently", func(t *testing.T) {
		start := time.Date(2021, 1, 4, 0, 0, 0, 0, time.UTC)
		stats := []domain.WeeklyStat{
			{Week: start, FakeRate: 0.0, Pos: 1.0, Neg: 0.0, Neu: 0.0},
			{Week: start.AddDate(0, 0, 7), FakeRate: 1.0, Pos: 0.0, Neg: 1.0, Neu: 0.0},
		}

		smoothed := Smooth(stats, 4)
		require.Len(t, smoothed, 2)
		assert.InDelta(t, 0.5, smoothed[1].FakeRate, 1e-9)
		assert.InDelta(t, 0.5, smoothed[1].Pos, 1e-9)
		assert.InDelta(t, 0.5, smoothed[1].Neg, 1e-9)
		assert.Zero(t, smoothed[1].Neu)
	})

	t.Run("does not mutate input", func(t *testing.T) {
		stats := makeSeries(0.2, 0.4, 0.6)
		Smooth(stats, 2)
		assert.InDelta(t, 0.4, stats[1].FakeRate, 1e-9)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Smooth(nil, 4))
	})
}
