package domain

import "time"

// WeeklyStat is one calendar week of aggregated rates. Week is the Monday
// of the ISO week; FakeRate is the mean of the binary label, Pos/Neg/Neu
// are sentiment proportions summing to 1 for any week with records.
type WeeklyStat struct {
	Week     time.Time
	FakeRate float64
	Pos      float64
	Neg      float64
	Neu      float64
}

// WeekLabel returns the week's start date in YYYY-MM-DD form
func (w WeeklyStat) WeekLabel() string {
	return w.Week.Format("2006-01-02")
}

// LabelCount is a single bar of the label distribution
type LabelCount struct {
	Label Label
	Count int
}

// SentimentCount is a single bar of the sentiment distribution
type SentimentCount struct {
	Sentiment Sentiment
	Count     int
}

// CrossTab is the 2x3 count table of label vs sentiment. Rows are ordered
// Real, Fake and columns Negative, Neutral, Positive; absent combinations
// hold zero.
type CrossTab struct {
	Rows [2]CrossTabRow
}

// CrossTabRow is one label row of the crosstab
type CrossTabRow struct {
	Label  Label
	Counts [3]int
}

// NewCrossTab returns a zero-filled table with fixed row ordering
func NewCrossTab() CrossTab {
	return CrossTab{Rows: [2]CrossTabRow{{Label: LabelReal}, {Label: LabelFake}}}
}

// Add increments the cell for the given label and sentiment combination
func (c *CrossTab) Add(l Label, s Sentiment, n int) {
	row := 0
	if l == LabelFake {
		row = 1
	}
	c.Rows[row].Counts[SentimentIndex(s)] += n
}

// Total returns the sum over all six cells, which equals the dataset size
func (c CrossTab) Total() int {
	total := 0
	for _, row := range c.Rows {
		for _, n := range row.Counts {
			total += n
		}
	}
	return total
}

// SentimentIndex maps a sentiment to its fixed column position
func SentimentIndex(s Sentiment) int {
	switch s {
	case SentimentNeutral:
		return 1
	case SentimentPositive:
		return 2
	}
	return 0
}
