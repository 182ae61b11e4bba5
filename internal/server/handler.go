// Package server serves the weekly schedule over HTTP.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/TheoAcker12/weekly-scheduler/internal/schedule"
	"github.com/TheoAcker12/weekly-scheduler/internal/weekly"
)

//go:generate mockgen -source=handler.go -destination=../mocks/server/mock_server.go -package=mock_server

// WeeklyService is the part of weekly.Service the handlers use.
type WeeklyService interface {
	View(ctx context.Context, query url.Values) (weekly.View, error)
	Categories(ctx context.Context) ([]schedule.Category, error)
	Schedules(ctx context.Context) ([]schedule.ScheduleRecord, error)
	ReplaceScheduleFields(ctx context.Context, scheduleID int, fieldIDs []int) error
}

// Handler implements the HTTP API.
type Handler struct {
	service  WeeklyService
	validate *validator.Validate
}

func NewHandler(service WeeklyService) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Routes registers every endpoint on a new mux. Unknown paths get 404 and
// known paths with another method get 405 from the mux itself.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", h.Health)
	mux.HandleFunc("GET /api/weekly-schedule", h.WeeklySchedule)
	mux.HandleFunc("GET /api/categories", h.Categories)
	mux.HandleFunc("GET /api/schedules", h.Schedules)
	mux.HandleFunc("PUT /api/schedules/{id}/fields", h.ReplaceScheduleFields)
	return mux
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// WeeklySchedule returns the weekly view for the sort, filter and display
// parameters of the query string. Invalid parameters are ignored.
func (h *Handler) WeeklySchedule(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.View(r.Context(), r.URL.Query())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, categories)
}

func (h *Handler) Schedules(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.service.Schedules(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, schedules)
}

type replaceScheduleFieldsRequest struct {
	FieldIDs []int `json:"field_ids" validate:"required,dive,gt=0"`
}

// ReplaceScheduleFields sets the fields attached to the schedule in the path.
func (h *Handler) ReplaceScheduleFields(w http.ResponseWriter, r *http.Request) {
	scheduleID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || scheduleID <= 0 {
		WriteError(w, r, CodeBadRequest, fmt.Sprintf("invalid schedule id %q", r.PathValue("id")))
		return
	}

	var req replaceScheduleFieldsRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		WriteError(w, r, CodeBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		WriteError(w, r, CodeBadRequest, validationMessage(err))
		return
	}

	if err := h.service.ReplaceScheduleFields(r.Context(), scheduleID, req.FieldIDs); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func validationMessage(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, fmt.Sprintf("%s failed on %s", e.Namespace(), e.Tag()))
	}
	return strings.Join(messages, ", ")
}
