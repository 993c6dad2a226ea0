package domain

import (
	"time"

	"github.com/google/uuid"
)

// Aggregate holds the derived standings counters stored per team. It is a
// materialized view over the team's results, maintained by incremental
// deltas — never recomputed by scanning results on the read path.
type Aggregate struct {
	Wins   int `json:"wins"`
	Draws  int `json:"draws"`
	Losses int `json:"losses"`
	Points int `json:"points"`
}

// Apply returns the aggregate after adding the signed adjustment.
func (a Aggregate) Apply(d AggregateDelta) Aggregate {
	return Aggregate{
		Wins:   a.Wins + d.Wins,
		Draws:  a.Draws + d.Draws,
		Losses: a.Losses + d.Losses,
		Points: a.Points + d.Points,
	}
}

// Team represents a competing side within a sport.
type Team struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Sport string    `json:"sport"`
	Aggregate
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
