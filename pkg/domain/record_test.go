package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLabel_String(t *testing.T) {
	assert.Equal(t, "Real", LabelReal.String())
	assert.Equal(t, "Fake", LabelFake.String())
}

func TestSentiment_Valid(t *testing.T) {
	assert.True(t, SentimentNegative.Valid())
	assert.True(t, SentimentNeutral.Valid())
	assert.True(t, SentimentPositive.Valid())
	assert.False(t, Sentiment("").Valid())
	assert.False(t, Sentiment("positive").Valid()) // case matters
	assert.False(t, Sentiment("Angry").Valid())
}

func TestSentiment_Glyph(t *testing.T) {
	assert.Equal(t, "😊", SentimentPositive.Glyph())
	assert.Equal(t, "😠", SentimentNegative.Glyph())
	assert.Equal(t, "😐", SentimentNeutral.Glyph())
	assert.Equal(t, "✨", Sentiment("Unknown").Glyph())
}

func TestCrossTab(t *testing.T) {
	table := NewCrossTab()
	assert.Equal(t, LabelReal, table.Rows[0].Label)
	assert.Equal(t, LabelFake, table.Rows[1].Label)
	assert.Equal(t, 0, table.Total())

	table.Add(LabelReal, SentimentNegative, 2)
	table.Add(LabelReal, SentimentNegative, 1)
	table.Add(LabelFake, SentimentPositive, 4)

	assert.Equal(t, [3]int{3, 0, 0}, table.Rows[0].Counts)
	assert.Equal(t, [3]int{0, 0, 4}, table.Rows[1].Counts)
	assert.Equal(t, 7, table.Total())
}

func TestSentimentIndex(t *testing.T) {
	assert.Equal(t, 0, SentimentIndex(SentimentNegative))
	assert.Equal(t, 1, SentimentIndex(SentimentNeutral))
	assert.Equal(t, 2, SentimentIndex(SentimentPositive))
}

func TestWeeklyStat_WeekLabel(t *testing.T) {
	st := WeeklyStat{Week: time.Date(2021, 1, 4, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "2021-01-04", st.WeekLabel())
}
