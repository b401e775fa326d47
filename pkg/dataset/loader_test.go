package dataset

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newspulse/pkg/domain"
)

// storeMock collects inserted records
type storeMock struct {
	mu      sync.Mutex
	calls   int
	records []domain.Record
	err     error
}

func (s *storeMock) InsertRecords(_ context.Context, records []domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.records = records
	return s.err
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load(t *testing.T) {
	csvContent := `text,fake_news_label,sentiment_label,tweetcreatedts
"breaking news, crisis deepens",1,Negative,2021-01-04 10:15:00
all quiet today,0,Neutral,2021-01-05 08:00:00
markets rally on vaccine hopes,0,Positive,2021-01-11 12:30:00
`

	t.Run("parses all columns", func(t *testing.T) {
		store := &storeMock{}
		l := New(writeCSV(t, csvContent), "tweetcreatedts", store)

		res, err := l.Load(context.Background())
		require.NoError(t, err)
		require.NotNil(t, res)

		assert.True(t, res.HasTimestamps)
		require.Len(t, res.Records, 3)

		assert.Equal(t, 0, res.Records[0].Index)
		assert.Equal(t, "breaking news, crisis deepens", res.Records[0].Text)
		assert.Equal(t, domain.LabelFake, res.Records[0].Label)
		assert.Equal(t, domain.SentimentNegative, res.Records[0].Sentiment)
		assert.Equal(t, time.Date(2021, 1, 4, 10, 15, 0, 0, time.UTC), res.Records[0].CreatedAt)

		assert.Equal(t, domain.LabelReal, res.Records[1].Label)
		assert.Equal(t, domain.SentimentPositive, res.Records[2].Sentiment)

		// records handed to the store
		assert.Equal(t, res.Records, store.records)
	})

	t.Run("computed once per process", func(t *testing.T) {
		store := &storeMock{}
		l := New(writeCSV(t, csvContent), "tweetcreatedts", store)

		res1, err := l.Load(context.Background())
		require.NoError(t, err)
		res2, err := l.Load(context.Background())
		require.NoError(t, err)

		assert.Same(t, res1, res2)
		assert.Equal(t, 1, store.calls)
	})

	t.Run("missing timestamp column disables week views", func(t *testing.T) {
		store := &storeMock{}
		content := `text,fake_news_label,sentiment_label
some text,1,Positive
other text,0,Negative
`
		l := New(writeCSV(t, content), "tweetcreatedts", store)

		res, err := l.Load(context.Background())
		require.NoError(t, err)
		assert.False(t, res.HasTimestamps)
		require.Len(t, res.Records, 2)
		assert.True(t, res.Records[0].CreatedAt.IsZero())
	})

	t.Run("empty timestamp cell skips the record from week views", func(t *testing.T) {
		store := &storeMock{}
		content := `text,fake_news_label,sentiment_label,tweetcreatedts
dated,1,Positive,2021-01-04 10:00:00
undated,0,Negative,
`
		l := New(writeCSV(t, content), "tweetcreatedts", store)

		res, err := l.Load(context.Background())
		require.NoError(t, err)
		assert.True(t, res.HasTimestamps)
		assert.False(t, res.Records[0].CreatedAt.IsZero())
		assert.True(t, res.Records[1].CreatedAt.IsZero())
	})

	t.Run("missing file is fatal", func(t *testing.T) {
		l := New("no-such-file.csv", "tweetcreatedts", &storeMock{})
		_, err := l.Load(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "open dataset")
	})

	t.Run("load error is memoized too", func(t *testing.T) {
		l := New("no-such-file.csv", "tweetcreatedts", &storeMock{})
		_, err1 := l.Load(context.Background())
		_, err2 := l.Load(context.Background())
		require.Error(t, err1)
		assert.Equal(t, err1, err2)
	})

	t.Run("missing required column is fatal", func(t *testing.T) {
		content := `text,sentiment_label
no label here,Positive
`
		l := New(writeCSV(t, content), "tweetcreatedts", &storeMock{})
		_, err := l.Load(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fake_news_label")
	})

	t.Run("invalid label is fatal", func(t *testing.T) {
		content := `text,fake_news_label,sentiment_label
bad label,2,Positive
`
		l := New(writeCSV(t, content), "tweetcreatedts", &storeMock{})
		_, err := l.Load(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid label")
	})

	t.Run("invalid sentiment is fatal", func(t *testing.T) {
		content := `text,fake_news_label,sentiment_label
bad sentiment,0,Angry
`
		l := New(writeCSV(t, content), "tweetcreatedts", &storeMock{})
		_, err := l.Load(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid sentiment")
	})

	t.Run("invalid timestamp is fatal", func(t *testing.T) {
		content := `text,fake_news_label,sentiment_label,tweetcreatedts
bad date,0,Neutral,not-a-date
`
		l := New(writeCSV(t, content), "tweetcreatedts", &storeMock{})
		_, err := l.Load(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid timestamp")
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		store := &storeMock{err: assert.AnError}
		l := New(writeCSV(t, csvContent), "tweetcreatedts", store)
		_, err := l.Load(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ingest records")
	})
}
