package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/couchcryptid/air-quality-aqi-service/internal/domain"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
)

const (
	outcomeRanked      = "ranked"
	outcomePlaceholder = "placeholder"
	outcomeEmpty       = "empty"
	outcomeInvalid     = "invalid"
)

// summaryRequest carries the readings the dashboard already holds together
// with the current selection. Readings without AQI scores get them derived
// from their concentrations.
type summaryRequest struct {
	Readings  []domain.Reading `json:"readings"`
	Selection domain.Selection `json:"selection"`
	K         int              `json:"k,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type regionOption struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type fieldOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type optionsResponse struct {
	Categories   []domain.CategoryColor            `json:"categories"`
	Regions      []regionOption                    `json:"regions"`
	StationTypes map[string][]string               `json:"station_types"`
	Fields       []fieldOption                     `json:"fields"`
	Breakpoints  map[string]domain.BreakpointTable `json:"breakpoints"`
	DefaultK     int                               `json:"default_k"`
}

func (s *Server) handleOptions(w http.ResponseWriter, _ *http.Request) {
	resp := optionsResponse{
		Categories:   domain.CategoryLegend(),
		StationTypes: make(map[string][]string),
		Breakpoints:  make(map[string]domain.BreakpointTable, len(domain.Pollutants)),
		DefaultK:     s.rankSize,
	}
	for _, code := range domain.RegionCodes() {
		resp.Regions = append(resp.Regions, regionOption{Code: code, Name: domain.RegionName(code)})
	}
	for _, key := range domain.StationTypeKeys() {
		group, _ := domain.StationTypeGroup(key)
		resp.StationTypes[key] = group
	}
	for _, kind := range domain.Pollutants {
		for _, mode := range []domain.DataMode{domain.ModeConcentration, domain.ModeAQI} {
			f := domain.FieldFor(kind, mode)
			resp.Fields = append(resp.Fields, fieldOption{Value: f.String(), Label: f.DisplayName()})
		}
		table, err := domain.Breakpoints(kind)
		if err != nil {
			s.logger.Error("breakpoint table lookup failed", "pollutant", kind.String(), "error", err)
			sharedobs.WriteJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}
		resp.Breakpoints[kind.String()] = table
	}
	sharedobs.WriteJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() {
		s.metrics.SummaryDuration.Observe(time.Since(start).Seconds())
	}()

	r.Body = http.MaxBytesReader(w, r.Body, s.maxRequestBytes)

	var req summaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.metrics.SummaryRequests.WithLabelValues(outcomeInvalid).Inc()
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			sharedobs.WriteJSON(w, http.StatusRequestEntityTooLarge, errorResponse{
				Error: fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit),
			})
			return
		}
		sharedobs.WriteJSON(w, http.StatusBadRequest, errorResponse{Error: "decode request: " + err.Error()})
		return
	}

	readings := make([]domain.Reading, len(req.Readings))
	for i, reading := range req.Readings {
		derived, err := domain.DeriveMissingAQI(reading)
		if err != nil {
			s.metrics.SummaryRequests.WithLabelValues(outcomeInvalid).Inc()
			sharedobs.WriteJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("reading %d: %v", i, err)})
			return
		}
		readings[i] = derived
	}

	k := req.K
	if k <= 0 {
		k = s.rankSize
	}

	summary, err := domain.Summarize(readings, req.Selection, k)
	if err != nil {
		status, outcome := statusForError(err)
		s.metrics.SummaryRequests.WithLabelValues(outcome).Inc()
		if status == http.StatusInternalServerError {
			s.logger.Error("summarize failed", "error", err)
		} else {
			s.logger.Debug("summary rejected", "error", err, "status", status)
		}
		sharedobs.WriteJSON(w, status, errorResponse{Error: err.Error()})
		return
	}

	outcome := outcomeRanked
	if summary.Placeholder {
		outcome = outcomePlaceholder
	}
	s.metrics.SummaryRequests.WithLabelValues(outcome).Inc()
	s.logger.Debug("summary served",
		"outcome", outcome,
		"readings", summary.Readings,
		"region", req.Selection.Region,
	)
	sharedobs.WriteJSON(w, http.StatusOK, summary)
}

// statusForError maps domain errors onto HTTP status codes and metric outcomes.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrEmptyInput):
		return http.StatusUnprocessableEntity, outcomeEmpty
	case errors.Is(err, domain.ErrInvalidField),
		errors.Is(err, domain.ErrInvalidPollutantKind),
		errors.Is(err, domain.ErrInvalidConcentration):
		return http.StatusBadRequest, outcomeInvalid
	default:
		return http.StatusInternalServerError, outcomeInvalid
	}
}
