package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/deportesurjc/platform/internal/domain"
	"github.com/deportesurjc/platform/internal/repository"
	"github.com/deportesurjc/platform/internal/standings"
	"github.com/google/uuid"
)

// ResultService owns the lifecycle of results: recording, correcting and
// voiding fixtures, plus driving the standings reconciler for each
// transition. Aggregate updates never happen anywhere else.
type ResultService struct {
	pool       repository.Pool
	teams      repository.TeamRepository
	results    repository.ResultRepository
	outbox     repository.OutboxRepository
	reconciler *standings.Reconciler
	logger     *slog.Logger
}

// NewResultService creates a ResultService.
func NewResultService(
	pool repository.Pool,
	teams repository.TeamRepository,
	results repository.ResultRepository,
	outbox repository.OutboxRepository,
	reconciler *standings.Reconciler,
	logger *slog.Logger,
) *ResultService {
	return &ResultService{
		pool:       pool,
		teams:      teams,
		results:    results,
		outbox:     outbox,
		reconciler: reconciler,
		logger:     logger,
	}
}

// ResultInput holds the fields a caller supplies for a fixture.
type ResultInput struct {
	Sport         string    `json:"sport"`
	Round         int       `json:"round"`
	PlayedAt      time.Time `json:"played_at"`
	Venue         string    `json:"venue"`
	LocalTeamID   uuid.UUID `json:"local_team_id"`
	VisitorTeamID uuid.UUID `json:"visitor_team_id"`
	LocalGoals    int       `json:"local_goals"`
	VisitorGoals  int       `json:"visitor_goals"`
}

func (in *ResultInput) validate() error {
	if err := domain.ValidateSport(in.Sport); err != nil {
		return domain.ErrValidation(err.Error())
	}
	if err := domain.ValidateRound(in.Round); err != nil {
		return domain.ErrValidation(err.Error())
	}
	if err := domain.ValidateGoals(in.LocalGoals); err != nil {
		return domain.ErrValidation(err.Error())
	}
	if err := domain.ValidateGoals(in.VisitorGoals); err != nil {
		return domain.ErrValidation(err.Error())
	}
	if in.LocalTeamID == uuid.Nil || in.VisitorTeamID == uuid.Nil {
		return domain.ErrValidation("local and visitor team references are required")
	}
	if in.LocalTeamID == in.VisitorTeamID {
		return domain.ErrValidation("a team cannot play itself")
	}
	return nil
}

// CreateResult records a fixture. Both referenced teams must exist; nothing
// is persisted otherwise. After the result commits, the reconciler applies
// the insert deltas to both teams' aggregates.
func (s *ResultService) CreateResult(ctx context.Context, input ResultInput) (*domain.Result, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	local, err := s.teams.FindByID(ctx, s.pool, input.LocalTeamID)
	if err != nil {
		return nil, domain.ErrInternal("find local team", err)
	}
	visitor, err := s.teams.FindByID(ctx, s.pool, input.VisitorTeamID)
	if err != nil {
		return nil, domain.ErrInternal("find visitor team", err)
	}
	if local == nil || visitor == nil {
		return nil, domain.ErrReference("one or both teams do not exist")
	}

	now := time.Now()
	res := &domain.Result{
		ID:              uuid.New(),
		Sport:           input.Sport,
		Round:           input.Round,
		PlayedAt:        input.PlayedAt,
		Venue:           input.Venue,
		LocalTeamID:     local.ID,
		VisitorTeamID:   visitor.ID,
		LocalTeamName:   local.Name,
		VisitorTeamName: visitor.Name,
		LocalGoals:      input.LocalGoals,
		VisitorGoals:    input.VisitorGoals,
		Outcome:         domain.ClassifyScore(input.LocalGoals, input.VisitorGoals).Label,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, domain.ErrInternal("begin tx", err)
	}
	defer tx.Rollback(ctx)

	inserted, err := s.results.Insert(ctx, tx, res)
	if err != nil {
		return nil, domain.ErrInternal("insert result", err)
	}
	if err := s.outbox.Insert(ctx, tx, domain.NewResultEvent(domain.EventResultRecorded, inserted)); err != nil {
		return nil, domain.ErrInternal("insert result event", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, domain.ErrInternal("commit result", err)
	}

	// The result is committed; aggregate failures from here on are logged
	// by the reconciler, not surfaced.
	s.reconciler.Reconcile(ctx, s.pool, res.LocalTeamID, res.VisitorTeamID,
		standings.Insert(res.LocalGoals, res.VisitorGoals))

	return inserted, nil
}

// UpdateResult corrects an existing fixture. Team identities cannot change
// on a correction; the reconciler receives the previous and new goal pairs
// and adjusts both teams by their exact difference.
func (s *ResultService) UpdateResult(ctx context.Context, id uuid.UUID, input ResultInput) (*domain.Result, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	prev, err := s.results.FindByID(ctx, s.pool, id)
	if err != nil {
		return nil, domain.ErrInternal("find result", err)
	}
	if prev == nil {
		return nil, domain.ErrNotFound("result", id.String())
	}
	if input.LocalTeamID != prev.LocalTeamID || input.VisitorTeamID != prev.VisitorTeamID {
		return nil, domain.ErrValidation("teams cannot change on a correction; void the result and record a new one")
	}

	next := *prev
	next.Sport = input.Sport
	next.Round = input.Round
	next.PlayedAt = input.PlayedAt
	next.Venue = input.Venue
	next.LocalGoals = input.LocalGoals
	next.VisitorGoals = input.VisitorGoals
	next.Outcome = domain.ClassifyScore(input.LocalGoals, input.VisitorGoals).Label

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, domain.ErrInternal("begin tx", err)
	}
	defer tx.Rollback(ctx)

	updated, err := s.results.ReplaceFields(ctx, tx, &next)
	if err != nil {
		return nil, domain.ErrInternal("replace result fields", err)
	}
	if updated == nil {
		return nil, domain.ErrNotFound("result", id.String())
	}
	if err := s.outbox.Insert(ctx, tx, domain.NewResultEvent(domain.EventResultCorrected, updated)); err != nil {
		return nil, domain.ErrInternal("insert result event", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, domain.ErrInternal("commit result", err)
	}

	s.reconciler.Reconcile(ctx, s.pool, prev.LocalTeamID, prev.VisitorTeamID,
		standings.Edit(
			standings.Score{LocalGoals: prev.LocalGoals, VisitorGoals: prev.VisitorGoals},
			standings.Score{LocalGoals: next.LocalGoals, VisitorGoals: next.VisitorGoals},
		))

	return updated, nil
}

// DeleteResult voids a fixture: the stored score is retracted from both
// teams' aggregates, then the row is removed.
func (s *ResultService) DeleteResult(ctx context.Context, id uuid.UUID) error {
	res, err := s.results.FindByID(ctx, s.pool, id)
	if err != nil {
		return domain.ErrInternal("find result", err)
	}
	if res == nil {
		return domain.ErrNotFound("result", id.String())
	}

	s.reconciler.Reconcile(ctx, s.pool, res.LocalTeamID, res.VisitorTeamID,
		standings.Retract(res.LocalGoals, res.VisitorGoals))

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return domain.ErrInternal("begin tx", err)
	}
	defer tx.Rollback(ctx)

	if err := s.results.DeleteByID(ctx, tx, id); err != nil {
		return domain.ErrInternal("delete result", err)
	}
	if err := s.outbox.Insert(ctx, tx, domain.NewResultEvent(domain.EventResultVoided, res)); err != nil {
		return domain.ErrInternal("insert result event", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.ErrInternal("commit delete", err)
	}
	return nil
}

// ListResultsByTeam returns every result where the team appears as local or
// visitor. Read-only; no reconciliation side effect.
func (s *ResultService) ListResultsByTeam(ctx context.Context, teamID uuid.UUID) ([]domain.Result, error) {
	results, err := s.results.FindByTeam(ctx, s.pool, teamID)
	if err != nil {
		return nil, domain.ErrInternal("find results by team", err)
	}
	return results, nil
}
