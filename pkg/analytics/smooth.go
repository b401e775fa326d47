package analytics

import "github.com/umputun/newspulse/pkg/domain"

// Smooth replaces each numeric field with its trailing mean over up to
// window rows ending at the current one: an expanding window until enough
// history accumulates, then a fixed trailing window. The input must be
// sorted ascending by week. The result has the same length as the input,
// row 0 is always unchanged, and window<=1 or inputs of at most one row
// come back as a copy.
func Smooth(stats []domain.WeeklyStat, window int) []domain.WeeklyStat {
	out := make([]domain.WeeklyStat, len(stats))
	copy(out, stats)
	if window <= 1 || len(stats) <= 1 {
		return out
	}

	for i := range stats {
		lo := i - window + 1
		if lo < 0 {
			lo = 0
		}
		var fakeRate, pos, neg, neu float64
		for j := lo; j <= i; j++ {
			fakeRate += stats[j].FakeRate
			pos += stats[j].Pos
			neg += stats[j].Neg
			neu += stats[j].Neu
		}
		n := float64(i - lo + 1)
		out[i].FakeRate = fakeRate / n
		out[i].Pos = pos / n
		out[i].Neg = neg / n
		out[i].Neu = neu / n
	}
	return out
}
