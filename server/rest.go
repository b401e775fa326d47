package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/umputun/newspulse/pkg/domain"
	"github.com/umputun/newspulse/pkg/repository"
)

// trendSeries holds one set of weekly metric values, index-aligned with
// the weeks slice of the enclosing response
type trendSeries struct {
	FakeNewsRate []float64 `json:"fake_news_rate"`
	Pos          []float64 `json:"pos"`
	Neg          []float64 `json:"neg"`
	Neu          []float64 `json:"neu"`
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// labelDistributionHandler returns fake/real counts for the label bar chart
func (s *Server) labelDistributionHandler(w http.ResponseWriter, r *http.Request) {
	counts, err := s.data.LabelDistribution(r.Context())
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	resp := struct {
		Labels []string `json:"labels"`
		Counts []int    `json:"counts"`
	}{}
	for _, c := range counts {
		resp.Labels = append(resp.Labels, c.Label.String())
		resp.Counts = append(resp.Counts, c.Count)
	}
	renderJSON(w, r, http.StatusOK, resp)
}

// sentimentDistributionHandler returns per-sentiment counts for the
// sentiment bar chart
func (s *Server) sentimentDistributionHandler(w http.ResponseWriter, r *http.Request) {
	counts, err := s.data.SentimentDistribution(r.Context())
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	resp := struct {
		Labels []string `json:"labels"`
		Counts []int    `json:"counts"`
	}{}
	for _, c := range counts {
		resp.Labels = append(resp.Labels, string(c.Sentiment))
		resp.Counts = append(resp.Counts, c.Count)
	}
	renderJSON(w, r, http.StatusOK, resp)
}

// weeklyTrendsHandler returns the weekly series, raw and smoothed, for
// the rolling-average line chart
func (s *Server) weeklyTrendsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := s.data.Summary(ctx)
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if !summary.HasTimestamps {
		renderError(w, r, fmt.Errorf("dataset has no timestamps, week-based views disabled"), http.StatusNotFound)
		return
	}

	raw, err := s.data.WeeklyStats(ctx)
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	smoothed, err := s.data.SmoothedStats(ctx)
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	resp := struct {
		Weeks    []string    `json:"weeks"`
		Raw      trendSeries `json:"raw"`
		Smoothed trendSeries `json:"smoothed"`
	}{
		Weeks:    weekLabels(raw),
		Raw:      toTrendSeries(raw),
		Smoothed: toTrendSeries(smoothed),
	}
	renderJSON(w, r, http.StatusOK, resp)
}

// stackedTrendsHandler returns raw weekly sentiment proportions for the
// stacked bar chart
func (s *Server) stackedTrendsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := s.data.Summary(ctx)
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if !summary.HasTimestamps {
		renderError(w, r, fmt.Errorf("dataset has no timestamps, week-based views disabled"), http.StatusNotFound)
		return
	}

	stats, err := s.data.WeeklyStats(ctx)
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	resp := struct {
		Weeks []string  `json:"weeks"`
		Pos   []float64 `json:"pos"`
		Neg   []float64 `json:"neg"`
		Neu   []float64 `json:"neu"`
	}{Weeks: weekLabels(stats)}
	for _, st := range stats {
		resp.Pos = append(resp.Pos, st.Pos)
		resp.Neg = append(resp.Neg, st.Neg)
		resp.Neu = append(resp.Neu, st.Neu)
	}
	renderJSON(w, r, http.StatusOK, resp)
}

// crosstabHandler returns the 2x3 label-by-sentiment count table
func (s *Server) crosstabHandler(w http.ResponseWriter, r *http.Request) {
	table, err := s.data.CrossTab(r.Context())
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	type crossTabRow struct {
		Label  string `json:"label"`
		Counts [3]int `json:"counts"`
	}
	resp := struct {
		Columns []string      `json:"columns"`
		Rows    []crossTabRow `json:"rows"`
		Total   int           `json:"total"`
	}{Total: table.Total()}
	for _, sentiment := range domain.Sentiments() {
		resp.Columns = append(resp.Columns, string(sentiment))
	}
	for _, row := range table.Rows {
		resp.Rows = append(resp.Rows, crossTabRow{Label: row.Label.String(), Counts: row.Counts})
	}
	renderJSON(w, r, http.StatusOK, resp)
}

// recordHandler returns a single record by index. Unlike the inspector
// partial this endpoint rejects out-of-range indexes with a bounds message.
func (s *Server) recordHandler(w http.ResponseWriter, r *http.Request) {
	idxStr := r.PathValue("index")
	idx, err := strconv.Atoi(idxStr)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid record index"), http.StatusBadRequest)
		return
	}

	rec, err := s.data.Record(r.Context(), idx)
	if err != nil {
		if errors.Is(err, repository.ErrIndexOutOfRange) {
			renderError(w, r, err, http.StatusBadRequest)
			return
		}
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	resp := struct {
		Index     int    `json:"index"`
		Text      string `json:"text"`
		Label     string `json:"label"`
		Sentiment string `json:"sentiment"`
		Glyph     string `json:"glyph"`
		CreatedAt string `json:"created_at,omitempty"`
	}{
		Index:     rec.Index,
		Text:      s.sanitizer.Sanitize(rec.Text),
		Label:     rec.Label.String(),
		Sentiment: string(rec.Sentiment),
		Glyph:     rec.Sentiment.Glyph(),
	}
	if !rec.CreatedAt.IsZero() {
		resp.CreatedAt = rec.CreatedAt.Format(time.RFC3339)
	}
	renderJSON(w, r, http.StatusOK, resp)
}

// weekLabels formats week start dates for chart axes
func weekLabels(stats []domain.WeeklyStat) []string {
	labels := make([]string, len(stats))
	for i, st := range stats {
		labels[i] = st.WeekLabel()
	}
	return labels
}

// toTrendSeries splits weekly stats into per-metric slices
func toTrendSeries(stats []domain.WeeklyStat) trendSeries {
	var ts trendSeries
	for _, st := range stats {
		ts.FakeNewsRate = append(ts.FakeNewsRate, st.FakeRate)
		ts.Pos = append(ts.Pos, st.Pos)
		ts.Neg = append(ts.Neg, st.Neg)
		ts.Neu = append(ts.Neu, st.Neu)
	}
	return ts
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
