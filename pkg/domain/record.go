package domain

import "time"

// Label marks a record as real or fake news as assigned in the source dataset.
type Label int

// Label values match the numeric encoding of the input file.
const (
	LabelReal Label = 0
	LabelFake Label = 1
)

// String returns the display name for the label
func (l Label) String() string {
	if l == LabelFake {
		return "Fake"
	}
	return "Real"
}

// Labels lists label values in fixed display order
func Labels() []Label {
	return []Label{LabelReal, LabelFake}
}

// Sentiment is the three-way sentiment class assigned to a record
type Sentiment string

// Sentiment values as they appear in the input file.
const (
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
	SentimentPositive Sentiment = "Positive"
)

// Sentiments lists sentiment categories in fixed display order
func Sentiments() []Sentiment {
	return []Sentiment{SentimentNegative, SentimentNeutral, SentimentPositive}
}

// Valid reports whether s is one of the known sentiment categories
func (s Sentiment) Valid() bool {
	return s == SentimentNegative || s == SentimentNeutral || s == SentimentPositive
}

// Glyph returns the emoji shown for the sentiment on the pulse panel
func (s Sentiment) Glyph() string {
	switch s {
	case SentimentPositive:
		return "😊"
	case SentimentNegative:
		return "😠"
	case SentimentNeutral:
		return "😐"
	}
	return "✨"
}

// Record is one labeled news item. Records are immutable after load.
type Record struct {
	Index     int
	Text      string
	Label     Label
	Sentiment Sentiment
	CreatedAt time.Time // zero when the dataset has no timestamp column
}

// Summary describes the loaded dataset as a whole
type Summary struct {
	Rows          int
	HasTimestamps bool
}
