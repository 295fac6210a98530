package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
	"github.com/heartmarshall/syllabus-backend/internal/exporter"
	"github.com/heartmarshall/syllabus-backend/internal/schedule"
	"github.com/heartmarshall/syllabus-backend/internal/service/syllabus"
	"github.com/heartmarshall/syllabus-backend/pkg/ctxutil"
)

type syllabusService interface {
	Import(ctx context.Context, input syllabus.ImportInput) (*syllabus.ImportResult, error)
	Update(ctx context.Context, input syllabus.UpdateInput) (*syllabus.CourseImport, error)
	List(ctx context.Context, input syllabus.ListInput) (*syllabus.ListResult, error)
	Get(ctx context.Context, courseID string, version int) (*syllabus.Detail, error)
	ListVersions(ctx context.Context, courseID string) ([]domain.SyllabusVersion, error)
	Diff(ctx context.Context, courseID string, from, to int) (*domain.VersionDiff, error)
}

// SyllabusHandler serves stored syllabi: public reads and admin writes.
type SyllabusHandler struct {
	svc          syllabusService
	tz           *time.Location
	maxBodyBytes int64
	log          *slog.Logger
}

// NewSyllabusHandler creates a SyllabusHandler. tz places calendar events.
func NewSyllabusHandler(svc syllabusService, tz *time.Location, maxBodyBytes int64, logger *slog.Logger) *SyllabusHandler {
	return &SyllabusHandler{
		svc:          svc,
		tz:           tz,
		maxBodyBytes: maxBodyBytes,
		log:          logger.With("handler", "syllabus"),
	}
}

type syllabusResponse struct {
	CourseID       string    `json:"course_id"`
	Name           string    `json:"name"`
	Year           string    `json:"year"`
	CurrentVersion int       `json:"current_version"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type listResponse struct {
	Items  []syllabusResponse `json:"items"`
	Total  int                `json:"total"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}

type versionResponse struct {
	Version       int                  `json:"version"`
	Editor        string               `json:"editor"`
	ChangeSummary string               `json:"change_summary"`
	Changes       []domain.FieldChange `json:"changes"`
	CreatedAt     time.Time            `json:"created_at"`
}

type detailResponse struct {
	syllabusResponse
	Version  versionResponse       `json:"version"`
	Document domain.CourseDocument `json:"document"`
}

type courseImportResponse struct {
	CourseID string               `json:"course_id"`
	Version  int                  `json:"version"`
	Created  bool                 `json:"created"`
	Changed  bool                 `json:"changed"`
	Changes  []domain.FieldChange `json:"changes"`
}

type importResponse struct {
	Courses []courseImportResponse `json:"courses"`
	Summary schedule.Summary       `json:"summary"`
}

type updateRequest struct {
	Document      domain.CourseDocument `json:"document"`
	Editor        string                `json:"editor"`
	ChangeSummary string                `json:"change_summary"`
}

// List handles GET /api/v1/syllabi?search=&year=&limit=&offset=.
func (h *SyllabusHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 50)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.List(r.Context(), syllabus.ListInput{
		Search: optionalString(r, "search"),
		Year:   optionalString(r, "year"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := make([]syllabusResponse, 0, len(result.Syllabi))
	for _, s := range result.Syllabi {
		items = append(items, toSyllabusResponse(s))
	}
	writeJSON(w, http.StatusOK, listResponse{Items: items, Total: result.Total, Limit: limit, Offset: offset})
}

// Get handles GET /api/v1/syllabi/{id}?version=N.
func (h *SyllabusHandler) Get(w http.ResponseWriter, r *http.Request) {
	detail, ok := h.loadDetail(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, detailResponse{
		syllabusResponse: toSyllabusResponse(detail.Syllabus),
		Version:          toVersionResponse(detail.Version),
		Document:         detail.Version.Document,
	})
}

// Versions handles GET /api/v1/syllabi/{id}/versions.
func (h *SyllabusHandler) Versions(w http.ResponseWriter, r *http.Request) {
	versions, err := h.svc.ListVersions(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]versionResponse, 0, len(versions))
	for _, v := range versions {
		out = append(out, toVersionResponse(v))
	}
	writeJSON(w, http.StatusOK, out)
}

// Diff handles GET /api/v1/syllabi/{id}/diff?from=&to=.
func (h *SyllabusHandler) Diff(w http.ResponseWriter, r *http.Request) {
	from, err := queryInt(r, "from", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	to, err := queryInt(r, "to", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	diff, err := h.svc.Diff(r.Context(), r.PathValue("id"), from, to)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, diff)
}

// Calendar handles GET /api/v1/syllabi/{id}/calendar.ics?version=N.
func (h *SyllabusHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	detail, ok := h.loadDetail(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+contentDispositionName(detail.Syllabus.CourseID))
	if err := exporter.WriteICS(w, detail.Version.Document, h.tz); err != nil {
		h.log.ErrorContext(r.Context(), "write calendar", slog.String("error", err.Error()))
	}
}

// Import handles POST /api/v1/admin/syllabi/import.
func (h *SyllabusHandler) Import(w http.ResponseWriter, r *http.Request) {
	req, ok := readScheduleRequest(w, r, h.maxBodyBytes)
	if !ok {
		return
	}

	result, err := h.svc.Import(r.Context(), syllabus.ImportInput{
		Text:          req.Text,
		ReferenceYear: req.ReferenceYear,
		Editor:        editorOrAdmin(r, req.Editor),
		ChangeSummary: req.ChangeSummary,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := importResponse{Courses: make([]courseImportResponse, 0, len(result.Courses)), Summary: result.Summary}
	for _, c := range result.Courses {
		resp.Courses = append(resp.Courses, toCourseImportResponse(c))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Update handles PUT /api/v1/admin/syllabi/{id}.
func (h *SyllabusHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if !decodeJSON(w, r, h.maxBodyBytes, &req) {
		return
	}

	result, err := h.svc.Update(r.Context(), syllabus.UpdateInput{
		CourseID:      r.PathValue("id"),
		Document:      req.Document,
		Editor:        editorOrAdmin(r, req.Editor),
		ChangeSummary: req.ChangeSummary,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCourseImportResponse(*result))
}

func (h *SyllabusHandler) loadDetail(w http.ResponseWriter, r *http.Request) (*syllabus.Detail, bool) {
	version, err := queryInt(r, "version", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return nil, false
	}
	detail, err := h.svc.Get(r.Context(), r.PathValue("id"), version)
	if err != nil {
		handleError(h.log, w, r, err)
		return nil, false
	}
	return detail, true
}

// editorOrAdmin falls back to the authenticated admin's name.
func editorOrAdmin(r *http.Request, editor string) string {
	if editor != "" {
		return editor
	}
	name, _ := ctxutil.AdminFromCtx(r.Context())
	return name
}

func toSyllabusResponse(s domain.Syllabus) syllabusResponse {
	return syllabusResponse{
		CourseID:       s.CourseID,
		Name:           s.Name,
		Year:           s.Year,
		CurrentVersion: s.CurrentVersion,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func toVersionResponse(v domain.SyllabusVersion) versionResponse {
	changes := v.Changes
	if changes == nil {
		changes = []domain.FieldChange{}
	}
	return versionResponse{
		Version:       v.Version,
		Editor:        v.Editor,
		ChangeSummary: v.ChangeSummary,
		Changes:       changes,
		CreatedAt:     v.CreatedAt,
	}
}

func toCourseImportResponse(c syllabus.CourseImport) courseImportResponse {
	changes := c.Changes
	if changes == nil {
		changes = []domain.FieldChange{}
	}
	return courseImportResponse{
		CourseID: c.CourseID,
		Version:  c.Version,
		Created:  c.Created,
		Changed:  c.Changed,
		Changes:  changes,
	}
}

func contentDispositionName(courseID string) string {
	return strconv.Quote(courseID + ".ics")
}
