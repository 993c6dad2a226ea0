package handler

import (
	"net/http"
	"time"

	"github.com/deportesurjc/platform/internal/domain"
	"github.com/deportesurjc/platform/internal/repository"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// TeamHandler handles team CRUD and standings endpoints.
type TeamHandler struct {
	teams repository.TeamRepository
	db    repository.DBTX
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(teams repository.TeamRepository, db repository.DBTX) *TeamHandler {
	return &TeamHandler{teams: teams, db: db}
}

// createTeamRequest is the shape of POST /teams.
type createTeamRequest struct {
	Name  string `json:"name"`
	Sport string `json:"sport"`
}

// Create handles POST /teams (admin only). Teams start with a zeroed
// aggregate; only the reconciler moves the counters afterwards.
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTeamRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondError(w, domain.ErrValidation("invalid JSON body"))
		return
	}
	if err := domain.ValidateTeamName(req.Name); err != nil {
		RespondError(w, domain.ErrValidation(err.Error()))
		return
	}
	if err := domain.ValidateSport(req.Sport); err != nil {
		RespondError(w, domain.ErrValidation(err.Error()))
		return
	}

	now := time.Now()
	team := &domain.Team{
		ID:        uuid.New(),
		Name:      req.Name,
		Sport:     req.Sport,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.teams.Create(r.Context(), h.db, team); err != nil {
		RespondError(w, domain.ErrInternal("create team", err))
		return
	}
	RespondJSON(w, http.StatusCreated, team)
}

// Get handles GET /teams/{id}.
func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		RespondError(w, domain.ErrValidation("invalid team id"))
		return
	}

	team, err := h.teams.FindByID(r.Context(), h.db, id)
	if err != nil {
		RespondError(w, domain.ErrInternal("find team", err))
		return
	}
	if team == nil {
		RespondError(w, domain.ErrNotFound("team", id.String()))
		return
	}
	RespondJSON(w, http.StatusOK, team)
}

// List handles GET /teams. With ?sport= it returns that sport's table in
// standings order; without it, every team ordered by sport and name.
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	sport := r.URL.Query().Get("sport")

	var (
		teams []domain.Team
		err   error
	)
	if sport != "" {
		teams, err = h.teams.ListBySport(r.Context(), h.db, sport)
	} else {
		teams, err = h.teams.ListAll(r.Context(), h.db)
	}
	if err != nil {
		RespondError(w, domain.ErrInternal("list teams", err))
		return
	}
	RespondJSON(w, http.StatusOK, teams)
}

// standingsResponse wraps the league table for a sport.
type standingsResponse struct {
	Sport string        `json:"sport"`
	Table []domain.Team `json:"table"`
}

// Standings handles GET /teams/standings?sport=. The table is read straight
// from the stored aggregates; it is never recomputed from results.
func (h *TeamHandler) Standings(w http.ResponseWriter, r *http.Request) {
	sport := r.URL.Query().Get("sport")
	if err := domain.ValidateSport(sport); err != nil {
		RespondError(w, domain.ErrValidation(err.Error()))
		return
	}

	teams, err := h.teams.ListBySport(r.Context(), h.db, sport)
	if err != nil {
		RespondError(w, domain.ErrInternal("list standings", err))
		return
	}
	RespondJSON(w, http.StatusOK, standingsResponse{Sport: sport, Table: teams})
}
