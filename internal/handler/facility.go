package handler

import (
	"net/http"
	"time"

	"github.com/deportesurjc/platform/internal/domain"
	"github.com/deportesurjc/platform/internal/repository"
	"github.com/deportesurjc/platform/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// FacilityHandler handles facility listing and creation.
type FacilityHandler struct {
	facilities repository.FacilityRepository
	db         repository.DBTX
}

// NewFacilityHandler creates a new FacilityHandler.
func NewFacilityHandler(facilities repository.FacilityRepository, db repository.DBTX) *FacilityHandler {
	return &FacilityHandler{facilities: facilities, db: db}
}

// List handles GET /facilities.
func (h *FacilityHandler) List(w http.ResponseWriter, r *http.Request) {
	facilities, err := h.facilities.List(r.Context(), h.db)
	if err != nil {
		RespondError(w, domain.ErrInternal("list facilities", err))
		return
	}
	RespondJSON(w, http.StatusOK, map[string][]domain.Facility{"facilities": facilities})
}

// createFacilityRequest is the shape of POST /facilities.
type createFacilityRequest struct {
	Name         string `json:"name"`
	Kind         string `json:"kind"`
	PricePerHour int64  `json:"price_per_hour"`
	Capacity     int    `json:"capacity"`
}

// Create handles POST /facilities (admin only).
func (h *FacilityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createFacilityRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondError(w, domain.ErrValidation("invalid JSON body"))
		return
	}
	if req.Name == "" {
		RespondError(w, domain.ErrValidation("facility name is required"))
		return
	}
	if err := domain.ValidatePositiveAmount(req.PricePerHour); err != nil {
		RespondError(w, domain.ErrValidation(err.Error()))
		return
	}

	now := time.Now()
	facility := &domain.Facility{
		ID:           uuid.New(),
		Name:         req.Name,
		Kind:         req.Kind,
		PricePerHour: req.PricePerHour,
		Capacity:     req.Capacity,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := h.facilities.Create(r.Context(), h.db, facility); err != nil {
		RespondError(w, domain.ErrInternal("create facility", err))
		return
	}
	RespondJSON(w, http.StatusCreated, facility)
}

// ReservationHandler handles booking endpoints.
type ReservationHandler struct {
	svc *service.ReservationService
}

// NewReservationHandler creates a new ReservationHandler.
func NewReservationHandler(svc *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

// Create handles POST /reservations.
func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r)
	if err != nil {
		RespondError(w, err)
		return
	}

	var input service.ReservationInput
	if err := DecodeJSON(r, &input); err != nil {
		RespondError(w, domain.ErrValidation("invalid JSON body"))
		return
	}

	res, err := h.svc.CreateReservation(r.Context(), userID, input)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusCreated, res)
}

// List handles GET /reservations for the authenticated user.
func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r)
	if err != nil {
		RespondError(w, err)
		return
	}

	reservations, err := h.svc.ListReservations(r.Context(), userID)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, map[string][]domain.Reservation{"reservations": reservations})
}

// Delete handles DELETE /reservations/{id}.
func (h *ReservationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r)
	if err != nil {
		RespondError(w, err)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		RespondError(w, domain.ErrValidation("invalid reservation id"))
		return
	}

	if err := h.svc.CancelReservation(r.Context(), userID, id); err != nil {
		RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
