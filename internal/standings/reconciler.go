package standings

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/deportesurjc/platform/internal/domain"
	"github.com/deportesurjc/platform/internal/repository"
	"github.com/google/uuid"
)

// Reconciler is the single write path onto team aggregates. No other code
// may mutate wins/draws/losses/points.
type Reconciler struct {
	teams  repository.TeamRepository
	outbox repository.OutboxRepository
	logger *slog.Logger
}

// NewReconciler creates a reconciler over the given repositories.
func NewReconciler(teams repository.TeamRepository, outbox repository.OutboxRepository, logger *slog.Logger) *Reconciler {
	return &Reconciler{teams: teams, outbox: outbox, logger: logger}
}

// Apply adds the signed adjustment to the stored aggregate for teamID and
// records a standings event alongside it. The increment executes as one
// server-side read-modify-write, so concurrent reconciliations of different
// fixtures against the same team cannot lose updates. Zero deltas are
// applied like any other.
func (r *Reconciler) Apply(ctx context.Context, db repository.DBTX, teamID uuid.UUID, delta domain.AggregateDelta) (*domain.Team, error) {
	team, err := r.teams.IncrementAggregate(ctx, db, teamID, delta)
	if err != nil {
		return nil, fmt.Errorf("increment aggregate: %w", err)
	}
	if team == nil {
		return nil, domain.ErrNotFound("team", teamID.String())
	}
	if err := r.outbox.Insert(ctx, db, domain.NewStandingsAdjustedEvent(team, delta)); err != nil {
		// The increment is already committed as far as this handle is
		// concerned; a lost event is observability, not state.
		r.logger.Error("standings event not recorded", "team_id", teamID, "error", err)
	}
	return team, nil
}

// Reconcile applies the delta pair for one lifecycle transition of a
// fixture. The two sides are independent increments: a failure on one is
// logged and does not block the other, and the already-committed result
// mutation stands either way. Callers therefore get no error back.
func (r *Reconciler) Reconcile(ctx context.Context, db repository.DBTX, localTeamID, visitorTeamID uuid.UUID, t Transition) {
	local, visitor, err := Deltas(t)
	if err != nil {
		r.logger.Error("invalid standings transition", "error", err)
		return
	}

	if _, err := r.Apply(ctx, db, localTeamID, local); err != nil {
		r.logger.Error("reconciliation failed",
			"side", "local",
			"team_id", localTeamID,
			"delta", local,
			"error", domain.ErrReconciliation(localTeamID.String(), err),
		)
	}
	if _, err := r.Apply(ctx, db, visitorTeamID, visitor); err != nil {
		r.logger.Error("reconciliation failed",
			"side", "visitante",
			"team_id", visitorTeamID,
			"delta", visitor,
			"error", domain.ErrReconciliation(visitorTeamID.String(), err),
		)
	}
}
