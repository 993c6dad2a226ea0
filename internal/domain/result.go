package domain

import (
	"time"

	"github.com/google/uuid"
)

// Result represents one played fixture between two teams.
type Result struct {
	ID              uuid.UUID    `json:"id"`
	Sport           string       `json:"sport"`
	Round           int          `json:"round"`
	PlayedAt        time.Time    `json:"played_at"`
	Venue           string       `json:"venue,omitempty"`
	LocalTeamID     uuid.UUID    `json:"local_team_id"`
	VisitorTeamID   uuid.UUID    `json:"visitor_team_id"`
	LocalTeamName   string       `json:"local_team_name"`
	VisitorTeamName string       `json:"visitor_team_name"`
	LocalGoals      int          `json:"local_goals"`
	VisitorGoals    int          `json:"visitor_goals"`
	Outcome         OutcomeLabel `json:"outcome"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// Score returns the fixture's goal pair as (local, visitor).
func (r *Result) Score() (int, int) {
	return r.LocalGoals, r.VisitorGoals
}
