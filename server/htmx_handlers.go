package server

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/umputun/newspulse/pkg/domain"
)

// inspectorView holds data for rendering the single-record inspector
type inspectorView struct {
	Index     int
	MaxIndex  int
	Text      string
	Label     domain.Label
	Sentiment domain.Sentiment
	HasDate   bool
	Date      string
}

// dashboardHandler displays the full dashboard page
func (s *Server) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	overview, err := s.data.Overview(ctx)
	if err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to load dataset overview", err)
		return
	}

	// inspector opens on the first row; skipped entirely for empty datasets
	var inspector *inspectorView
	if overview.Summary.Rows > 0 {
		view, err := s.inspectorViewFor(ctx, 0, overview.Summary.Rows)
		if err != nil {
			s.respondWithError(w, http.StatusInternalServerError, "Failed to load record", err)
			return
		}
		inspector = &view
	}

	data := struct {
		ActivePage    string
		Version       string
		Summary       domain.Summary
		Preview       []domain.Record
		Labels        []domain.LabelCount
		Sentiments    []domain.SentimentCount
		CrossTab      domain.CrossTab
		SentimentCols []domain.Sentiment
		Inspector     *inspectorView
	}{
		ActivePage:    "home",
		Version:       s.version,
		Summary:       overview.Summary,
		Preview:       overview.Preview,
		Labels:        overview.Labels,
		Sentiments:    overview.Sentiments,
		CrossTab:      overview.CrossTab,
		SentimentCols: domain.Sentiments(),
		Inspector:     inspector,
	}

	if err := s.renderPage(w, "dashboard.html", data); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to render page", err)
		return
	}
}

// inspectHandler renders the record inspector partial for a user-picked
// row. The index is clamped to the dataset bounds, so out-of-range input
// shows the nearest valid record instead of failing.
func (s *Server) inspectHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := s.data.Summary(ctx)
	if err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to load dataset", err)
		return
	}
	if summary.Rows == 0 {
		s.respondWithError(w, http.StatusNotFound, "Dataset is empty", nil)
		return
	}

	index := 0
	if idxStr := r.URL.Query().Get("index"); idxStr != "" {
		if idx, err := strconv.Atoi(idxStr); err == nil {
			index = idx
		}
	}
	index = clampIndex(index, summary.Rows)

	view, err := s.inspectorViewFor(ctx, index, summary.Rows)
	if err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to load record", err)
		return
	}

	if err := s.templates.ExecuteTemplate(w, "record-inspector.html", view); err != nil {
		log.Printf("[WARN] failed to render inspector: %v", err)
	}
}

// inspectorViewFor builds the inspector data for one record
func (s *Server) inspectorViewFor(ctx context.Context, index, rows int) (inspectorView, error) {
	rec, err := s.data.Record(ctx, index)
	if err != nil {
		return inspectorView{}, err
	}

	view := inspectorView{
		Index:     rec.Index,
		MaxIndex:  rows - 1,
		Text:      s.sanitizer.Sanitize(rec.Text),
		Label:     rec.Label,
		Sentiment: rec.Sentiment,
	}
	if !rec.CreatedAt.IsZero() {
		view.HasDate = true
		view.Date = rec.CreatedAt.Format("2006-01-02 15:04")
	}
	return view, nil
}

// clampIndex bounds a user-supplied index to [0, rows-1]
func clampIndex(index, rows int) int {
	if index < 0 {
		return 0
	}
	if index >= rows {
		return rows - 1
	}
	return index
}
