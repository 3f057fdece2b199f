package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/benji822/pod-dash-app/pkg/poddash"
	"github.com/benji822/pod-dash-app/pkg/poddash/models"
	"github.com/benji822/pod-dash-app/pkg/poddash/render"
	"go.uber.org/zap"
)

// OutputResponse is the body of /api/v1/output.
type OutputResponse struct {
	Line     string              `json:"line"`
	Date     string              `json:"date"`
	Workcell int                 `json:"workcell"`
	Rows     []poddash.OutputRow `json:"rows"`
}

// BreakdownResponse is the body of /api/v1/downtime/breakdown.
type BreakdownResponse struct {
	Line     string           `json:"line"`
	Date     string           `json:"date"`
	Workcell int              `json:"workcell"`
	Column   string           `json:"column"`
	Reasons  models.Breakdown `json:"reasons"`
	Total    int64            `json:"total_seconds"`
}

// HourlyResponse is the body of /api/v1/downtime/hourly.
type HourlyResponse struct {
	Line     string                        `json:"line"`
	Date     string                        `json:"date"`
	Workcell int                           `json:"workcell"`
	Records  []models.DowntimeHourlyRecord `json:"records"`
}

// errorResponse is the body of every non-2xx reply.
type errorResponse struct {
	Error string `json:"error"`
}

// badRequest marks a query parameter problem.
type badRequest struct{ msg string }

func (e *badRequest) Error() string { return e.msg }

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"snapshot":  s.ds.Snapshot(),
		"loaded_at": s.ds.LoadedAt(),
		"lines":     len(s.ds.Lines()),
	})
}

func (s *Server) handleFilters(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, render.FiltersOf(s.ds))
}

func (s *Server) handleOutput(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	records, err := s.ds.OutputSlice(q.line, q.workcell, q.date)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, OutputResponse{
		Line:     q.line,
		Date:     poddash.FormatDate(q.date),
		Workcell: q.workcell,
		Rows:     poddash.FormatOutputRows(records),
	})
}

func (s *Server) handleBreakdown(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	bd, err := s.ds.DowntimeBreakdown(q.line, q.date, q.workcell)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, BreakdownResponse{
		Line:     q.line,
		Date:     poddash.FormatDate(q.date),
		Workcell: q.workcell,
		Column:   poddash.BreakdownColumn(q.workcell),
		Reasons:  bd,
		Total:    bd.Total(),
	})
}

func (s *Server) handleHourly(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	records, err := s.ds.HourlyDowntime(q.line, q.date, q.workcell)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if records == nil {
		records = []models.DowntimeHourlyRecord{}
	}
	s.writeJSON(w, http.StatusOK, HourlyResponse{
		Line:     q.line,
		Date:     poddash.FormatDate(q.date),
		Workcell: q.workcell,
		Records:  records,
	})
}

func (s *Server) handleRaw(w http.ResponseWriter, r *http.Request) {
	line, date, err := lineAndDate(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	raw, err := s.ds.RawDowntime(line, date)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, raw)
}

// cached answers conditional requests from the dataset snapshot id. The
// dataset never changes while the server runs, so the id is a strong ETag.
func (s *Server) cached(next http.HandlerFunc) http.HandlerFunc {
	etag := `"` + s.ds.Snapshot() + `"`
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("ETag", etag)
		if match := r.Header.Get("If-None-Match"); match != "" {
			for _, candidate := range strings.Split(match, ",") {
				if c := strings.TrimSpace(candidate); c == etag || c == "*" {
					w.WriteHeader(http.StatusNotModified)
					return
				}
			}
		}
		next(w, r)
	}
}

type query struct {
	line     string
	date     civil.Date
	workcell int
}

func parseQuery(r *http.Request) (query, error) {
	line, date, err := lineAndDate(r)
	if err != nil {
		return query{}, err
	}
	raw := r.URL.Query().Get("workcell")
	if raw == "" {
		return query{}, &badRequest{"missing query parameter: workcell"}
	}
	wc, err := strconv.Atoi(raw)
	if err != nil {
		return query{}, &badRequest{fmt.Sprintf("invalid workcell %q", raw)}
	}
	return query{line: line, date: date, workcell: wc}, nil
}

func lineAndDate(r *http.Request) (string, civil.Date, error) {
	values := r.URL.Query()
	line := values.Get("line")
	if line == "" {
		return "", civil.Date{}, &badRequest{"missing query parameter: line"}
	}
	raw := values.Get("date")
	if raw == "" {
		return "", civil.Date{}, &badRequest{"missing query parameter: date"}
	}
	date, err := poddash.ParseDate(raw)
	if err != nil {
		return "", civil.Date{}, &badRequest{err.Error()}
	}
	return line, date, nil
}

// statusOf maps query errors onto HTTP status codes.
func statusOf(err error) int {
	var br *badRequest
	switch {
	case errors.As(err, &br):
		return http.StatusBadRequest
	case errors.Is(err, poddash.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, poddash.ErrBadDuration), errors.Is(err, poddash.ErrMissingColumn):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		s.log.Error("query failed", zap.Error(err))
	} else {
		s.log.Debug("query rejected", zap.Int("status", status), zap.Error(err))
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := render.ToJSON(v, false)
	if err != nil {
		s.log.Error("encode response", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
