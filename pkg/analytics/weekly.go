// Package analytics derives weekly trend series from the loaded records.
// All functions are pure: they take materialized slices and return new
// slices, so render passes can recompute them without coordination.
package analytics

import (
	"sort"
	"time"

	"github.com/umputun/newspulse/pkg/domain"
)

// Weekly groups records into ISO calendar weeks and computes per-week
// fake-news rate and sentiment proportions. Records without a timestamp
// are skipped. The result is sorted ascending by week start; sentiment
// proportions of every returned week sum to 1.
func Weekly(records []domain.Record) []domain.WeeklyStat {
	type bucket struct {
		total int
		fake  int
		sent  [3]int
	}

	buckets := make(map[time.Time]*bucket)
	for _, rec := range records {
		if rec.CreatedAt.IsZero() {
			continue
		}
		week := WeekStart(rec.CreatedAt)
		b, ok := buckets[week]
		if !ok {
			b = &bucket{}
			buckets[week] = b
		}
		b.total++
		if rec.Label == domain.LabelFake {
			b.fake++
		}
		b.sent[domain.SentimentIndex(rec.Sentiment)]++
	}

	weeks := make([]time.Time, 0, len(buckets))
	for week := range buckets {
		weeks = append(weeks, week)
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].Before(weeks[j]) })

	stats := make([]domain.WeeklyStat, 0, len(weeks))
	for _, week := range weeks {
		b := buckets[week]
		n := float64(b.total) // always > 0, weeks exist only for seen records
		stats = append(stats, domain.WeeklyStat{
			Week:     week,
			FakeRate: float64(b.fake) / n,
			Neg:      float64(b.sent[0]) / n,
			Neu:      float64(b.sent[1]) / n,
			Pos:      float64(b.sent[2]) / n,
		})
	}
	return stats
}

// WeekStart returns the Monday of the ISO week containing ts, at midnight UTC.
// Both trend views label weeks with this single convention.
func WeekStart(ts time.Time) time.Time {
	t := ts.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7 // days since monday
	return day.AddDate(0, 0, -offset)
}
