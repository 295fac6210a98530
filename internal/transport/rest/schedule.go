package rest

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
	"github.com/heartmarshall/syllabus-backend/internal/schedule"
)

type scheduleCompiler interface {
	Compile(text string, referenceYear int) (*schedule.Result, error)
}

// ScheduleHandler compiles schedule text without storing it.
type ScheduleHandler struct {
	compiler      scheduleCompiler
	referenceYear int
	maxBodyBytes  int64
	log           *slog.Logger
}

// NewScheduleHandler creates a ScheduleHandler.
func NewScheduleHandler(compiler scheduleCompiler, referenceYear int, maxBodyBytes int64, logger *slog.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		compiler:      compiler,
		referenceYear: referenceYear,
		maxBodyBytes:  maxBodyBytes,
		log:           logger.With("handler", "schedule"),
	}
}

// scheduleRequest is the JSON form of a compile or import request. A
// text/plain body carries the text alone and takes the rest from the query.
type scheduleRequest struct {
	Text          string `json:"text"`
	ReferenceYear int    `json:"reference_year"`
	Editor        string `json:"editor"`
	ChangeSummary string `json:"change_summary"`
}

type compileResponse struct {
	Courses []domain.CourseDocument `json:"courses"`
	Summary schedule.Summary        `json:"summary"`
}

// Compile handles POST /api/v1/schedule/compile. The response is YAML when
// ?format=yaml or the Accept header asks for it, JSON otherwise.
func (h *ScheduleHandler) Compile(w http.ResponseWriter, r *http.Request) {
	req, ok := readScheduleRequest(w, r, h.maxBodyBytes)
	if !ok {
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		handleError(h.log, w, r, domain.NewValidationError("text", "required"))
		return
	}

	year := req.ReferenceYear
	if year == 0 {
		year = h.referenceYear
	}
	if !schedule.ValidReferenceYear(year) {
		handleError(h.log, w, r, domain.NewValidationError("reference_year",
			fmt.Sprintf("must be between %d and %d", schedule.MinReferenceYear, schedule.MaxReferenceYear)))
		return
	}

	result, err := h.compiler.Compile(req.Text, year)
	if err != nil {
		if errors.Is(err, schedule.ErrNoCourseBlocksFound) {
			writeError(w, http.StatusUnprocessableEntity, "no course blocks found")
			return
		}
		handleError(h.log, w, r, err)
		return
	}

	if wantsYAML(r) {
		w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
		if result.Summary.BlocksFailed > 0 {
			w.Header().Set("X-Blocks-Failed", strconv.Itoa(result.Summary.BlocksFailed))
		}
		w.WriteHeader(http.StatusOK)
		if err := schedule.WriteYAML(w, result.Courses); err != nil {
			h.log.ErrorContext(r.Context(), "write yaml", slog.String("error", err.Error()))
		}
		return
	}

	writeJSON(w, http.StatusOK, compileResponse{Courses: result.Courses, Summary: result.Summary})
}

// readScheduleRequest accepts either a JSON body or raw schedule text.
func readScheduleRequest(w http.ResponseWriter, r *http.Request, maxBytes int64) (scheduleRequest, bool) {
	var req scheduleRequest
	if isJSON(r) {
		if !decodeJSON(w, r, maxBytes, &req) {
			return req, false
		}
		return req, true
	}

	if maxBytes <= 0 {
		maxBytes = defaultMaxBodyBytes
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return req, false
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return req, false
	}

	year, err := queryInt(r, "year", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return req, false
	}
	q := r.URL.Query()
	req = scheduleRequest{
		Text:          string(body),
		ReferenceYear: year,
		Editor:        q.Get("editor"),
		ChangeSummary: q.Get("change_summary"),
	}
	return req, true
}

func isJSON(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "application/json"
}

func wantsYAML(r *http.Request) bool {
	switch strings.ToLower(r.URL.Query().Get("format")) {
	case "yaml", "yml":
		return true
	case "json":
		return false
	}
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "application/yaml") || strings.Contains(accept, "text/yaml")
}
