package handler

import (
	"net/http"

	"github.com/deportesurjc/platform/internal/domain"
	"github.com/deportesurjc/platform/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ResultHandler exposes the result lifecycle endpoints.
type ResultHandler struct {
	svc *service.ResultService
}

// NewResultHandler creates a new ResultHandler.
func NewResultHandler(svc *service.ResultService) *ResultHandler {
	return &ResultHandler{svc: svc}
}

// Create handles POST /results.
func (h *ResultHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.ResultInput
	if err := DecodeJSON(r, &input); err != nil {
		RespondError(w, domain.ErrValidation("invalid JSON body"))
		return
	}

	res, err := h.svc.CreateResult(r.Context(), input)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusCreated, res)
}

// Update handles PUT /results/{id}.
func (h *ResultHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		RespondError(w, domain.ErrValidation("invalid result id"))
		return
	}

	var input service.ResultInput
	if err := DecodeJSON(r, &input); err != nil {
		RespondError(w, domain.ErrValidation("invalid JSON body"))
		return
	}

	res, err := h.svc.UpdateResult(r.Context(), id, input)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, res)
}

// Delete handles DELETE /results/{id}.
func (h *ResultHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		RespondError(w, domain.ErrValidation("invalid result id"))
		return
	}

	if err := h.svc.DeleteResult(r.Context(), id); err != nil {
		RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// resultListResponse wraps a team's results.
type resultListResponse struct {
	Results []domain.Result `json:"results"`
}

// ListByTeam handles GET /teams/{id}/results.
func (h *ResultHandler) ListByTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		RespondError(w, domain.ErrValidation("invalid team id"))
		return
	}

	results, err := h.svc.ListResultsByTeam(r.Context(), teamID)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, resultListResponse{Results: results})
}
