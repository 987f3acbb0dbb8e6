package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/avermeer/lectio/internal/contract"
	"github.com/avermeer/lectio/internal/service"
)

// userHeader carries the tenant discriminator. Authentication itself is
// handled upstream; the API only needs to know which user to act for.
const userHeader = "X-User-ID"

// Handler serves the study-plan endpoints.
type Handler struct {
	plans      service.PlanService
	applies    service.ApplyService
	recommends service.RecommendationService
	metrics    service.MetricsService
	logger     *slog.Logger
}

// NewHandler creates a new Handler.
func NewHandler(
	plans service.PlanService,
	applies service.ApplyService,
	recommends service.RecommendationService,
	metrics service.MetricsService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		plans:      plans,
		applies:    applies,
		recommends: recommends,
		metrics:    metrics,
		logger:     logger,
	}
}

// GeneratePlan handles POST /api/v1/plan/generate.
func (h *Handler) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req contract.GeneratePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	plan, err := h.plans.Generate(r.Context(), userID, req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

// ApplyPlan handles POST /api/v1/plan/apply.
func (h *Handler) ApplyPlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req contract.ApplyPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	events, err := h.applies.Apply(r.Context(), userID, req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	created := make([]contract.ApplySession, 0, len(events))
	for _, e := range events {
		created = append(created, contract.ApplySession{
			Title:      e.Title,
			StartTime:  e.StartTime,
			EndTime:    e.EndTime,
			WorkItemID: e.WorkItemID,
		})
	}
	writeJSON(w, http.StatusCreated, map[string]any{"events": created})
}

// Recommendations handles GET /api/v1/recommendations.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	recs, err := h.recommends.Derive(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.NewRecommendationsResponse(recs))
}

// LogMetrics handles POST /api/v1/metrics.
func (h *Handler) LogMetrics(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req contract.LogMetricsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := h.metrics.Log(r.Context(), userID, req); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := r.Header.Get(userHeader)
	if userID == "" {
		writeError(w, http.StatusBadRequest, userHeader+" header is required")
		return "", false
	}
	return userID, true
}

// writeServiceError maps typed contract errors to 400/409 and surfaces
// everything else as an opaque 500.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var planErr *contract.PlanError
	if errors.As(err, &planErr) {
		status := http.StatusBadRequest
		if planErr.Code == contract.ErrDuplicateApplication {
			status = http.StatusConflict
		}
		writeError(w, status, planErr.Message)
		return
	}

	var metricsErr *contract.MetricsError
	if errors.As(err, &metricsErr) {
		writeError(w, http.StatusBadRequest, metricsErr.Message)
		return
	}

	h.logger.ErrorContext(r.Context(), "request failed",
		"path", r.URL.Path,
		"error", err,
	)
	writeError(w, http.StatusInternalServerError, "internal error")
}
