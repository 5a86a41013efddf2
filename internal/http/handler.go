package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/davidbz/terra/internal/config"
	"github.com/davidbz/terra/internal/domain"
	"github.com/davidbz/terra/internal/observability"
	"github.com/davidbz/terra/internal/provider/groq"
)

const maxBodyBytes = 1 << 20

// Handler handles HTTP requests.
type Handler struct {
	estimator *domain.EstimatorService
	defaults  domain.UsageParameters
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(estimator *domain.EstimatorService, estimateCfg *config.EstimateConfig) *Handler {
	return &Handler{
		estimator: estimator,
		defaults:  estimateCfg.Usage(),
	}
}

type modelView struct {
	Model            domain.ModelID `json:"model"`
	Label            string         `json:"label"`
	InputPerMillion  string         `json:"input_per_million"`
	OutputPerMillion string         `json:"output_per_million"`
	Default          bool           `json:"default"`
}

type modelsResponse struct {
	Models   []modelView      `json:"models"`
	Defaults []domain.ModelID `json:"defaults"`
}

type selectionRequest struct {
	Models  []domain.ModelID         `json:"models"`
	Weights domain.AllocationWeights `json:"weights,omitempty"`
}

type weightsResponse struct {
	Weights domain.AllocationWeights `json:"weights"`
}

type validationResponse struct {
	domain.ValidationResult
	Message string `json:"message,omitempty"`
}

type estimateResponse struct {
	Validation validationResponse `json:"validation"`
	Report     *domain.CostReport `json:"report"`
	Cached     bool               `json:"cached"`
}

// estimateBody is the wire form of an estimate request; omitted usage fields
// take the configured defaults.
type estimateBody struct {
	Models  []domain.ModelID         `json:"models"`
	Weights domain.AllocationWeights `json:"weights"`
	Usage   domain.UsageOverrides    `json:"usage"`
}

type probeRequest struct {
	Model  domain.ModelID `json:"model"`
	Prompt string         `json:"prompt"`
}

// HandleModels lists the pricing catalog.
func (h *Handler) HandleModels(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	defaults := groq.DefaultModels()
	isDefault := make(map[domain.ModelID]bool, len(defaults))
	for _, m := range defaults {
		isDefault[m] = true
	}

	entries := h.estimator.Catalog(r.Context())
	views := make([]modelView, 0, len(entries))
	for _, e := range entries {
		views = append(views, modelView{
			Model:            e.Model,
			Label:            e.Label(),
			InputPerMillion:  e.Price.InputPerMillion.String(),
			OutputPerMillion: e.Price.OutputPerMillion.String(),
			Default:          isDefault[e.Model],
		})
	}

	writeJSON(w, r, http.StatusOK, modelsResponse{Models: views, Defaults: defaults})
}

// HandleEqualSplit returns the equal split for the posted selection.
func (h *Handler) HandleEqualSplit(w http.ResponseWriter, r *http.Request) {
	h.handleWeights(w, r, domain.EqualSplit)
}

// HandleResetWeights returns zero weights for the posted selection.
func (h *Handler) HandleResetWeights(w http.ResponseWriter, r *http.Request) {
	h.handleWeights(w, r, domain.ResetWeights)
}

func (h *Handler) handleWeights(
	w http.ResponseWriter,
	r *http.Request,
	assign func([]domain.ModelID) domain.AllocationWeights,
) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req selectionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	weights := assign(req.Models)
	if _, err := h.estimator.Validate(r.Context(), req.Models, weights); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, weightsResponse{Weights: weights})
}

// HandleValidate reports whether the posted allocation can be priced.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req selectionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.estimator.Validate(r.Context(), req.Models, req.Weights)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, validationResponse{ValidationResult: result, Message: result.Message()})
}

// HandleEstimate computes a cost estimate. An invalid allocation answers 422
// with the validation payload and no report.
func (h *Handler) HandleEstimate(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	req, ok := h.decodeEstimate(w, r)
	if !ok {
		return
	}

	estimate, err := h.estimator.Estimate(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	status := http.StatusOK
	if !estimate.Validation.Valid {
		status = http.StatusUnprocessableEntity
	}

	setCacheHeader(w, estimate)

	writeJSON(w, r, status, estimateResponse{
		Validation: validationResponse{
			ValidationResult: estimate.Validation,
			Message:          estimate.Validation.Message(),
		},
		Report: estimate.Report,
		Cached: estimate.Cached,
	})
}

// HandleReport serves the rendered report as a plain-text download.
func (h *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	req, ok := h.decodeEstimate(w, r)
	if !ok {
		return
	}

	text, err := h.estimator.Render(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", domain.ReportContentType+"; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", domain.ReportFileName))
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write([]byte(text)); err != nil {
		observability.FromContext(r.Context()).Error("failed to write report", observability.Error(err))
	}
}

// HandleProbe measures the tokens a sample question consumes.
func (h *Handler) HandleProbe(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req probeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.Model == "" {
		http.Error(w, "model is required", http.StatusBadRequest)
		return
	}
	if req.Prompt == "" {
		http.Error(w, "prompt is required", http.StatusBadRequest)
		return
	}

	sample, err := h.estimator.Probe(r.Context(), req.Model, req.Prompt)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, sample)
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status": "healthy",
	}); err != nil {
		// Already written status, can't change it, just log.
		return
	}
}

func (h *Handler) decodeEstimate(w http.ResponseWriter, r *http.Request) (*domain.EstimateRequest, bool) {
	var body estimateBody
	if !decodeBody(w, r, &body) {
		return nil, false
	}

	req := domain.EstimateRequest{
		Models:  body.Models,
		Weights: body.Weights,
		Usage:   body.Usage.Resolve(h.defaults),
	}

	observability.FromContext(r.Context()).Info("estimate request received",
		observability.Int("models", len(req.Models)),
		observability.Int64("users", req.Usage.UserCount))

	return &req, true
}

// setCacheHeader reports whether the estimate was served from cache.
func setCacheHeader(w http.ResponseWriter, estimate *domain.Estimate) {
	if estimate.Report == nil {
		return
	}
	if estimate.Cached {
		w.Header().Set("X-Terra-Cache", "HIT")
		return
	}
	w.Header().Set("X-Terra-Cache", "MISS")
}

func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		observability.FromContext(r.Context()).Error("failed to encode response", observability.Error(err))
	}
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnknownModel):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrNoModelsSelected),
		errors.Is(err, domain.ErrWeightMismatch):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidUsage),
		errors.Is(err, domain.ErrDuplicateModel),
		errors.Is(err, domain.ErrInvalidWeight):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrProbeNotConfigured):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)

	logger := observability.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", observability.Error(err), observability.Int("status", status))
	} else {
		logger.Info("request rejected", observability.Error(err), observability.Int("status", status))
	}

	http.Error(w, err.Error(), status)
}
