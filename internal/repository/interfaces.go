package repository

import (
	"context"
	"time"

	"github.com/deportesurjc/platform/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX abstracts pgx.Tx and pgxpool.Pool so repositories work with both.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// Pool is the subset of pgxpool.Pool the services depend on.
type Pool interface {
	DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TeamRepository provides access to teams.
type TeamRepository interface {
	// FindByID returns a team by ID, or nil if absent.
	FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.Team, error)

	// Create inserts a new team with a zeroed aggregate.
	Create(ctx context.Context, db DBTX, team *domain.Team) error

	// IncrementAggregate adds the signed delta to the stored counters using
	// server-side arithmetic, as one atomic read-modify-write. A zero delta
	// is still executed. Returns nil if the team does not exist.
	IncrementAggregate(ctx context.Context, db DBTX, id uuid.UUID, delta domain.AggregateDelta) (*domain.Team, error)

	// ListBySport returns teams in a sport ordered by points descending.
	ListBySport(ctx context.Context, db DBTX, sport string) ([]domain.Team, error)

	// ListAll returns every team ordered by sport then name.
	ListAll(ctx context.Context, db DBTX) ([]domain.Team, error)
}

// ResultRepository provides access to results.
type ResultRepository interface {
	// FindByID returns a result by ID, or nil if absent.
	FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.Result, error)

	// Insert creates a new result row. Returns the inserted row.
	Insert(ctx context.Context, db DBTX, res *domain.Result) (*domain.Result, error)

	// ReplaceFields overwrites the mutable fields of an existing result.
	// Returns nil if the row does not exist.
	ReplaceFields(ctx context.Context, db DBTX, res *domain.Result) (*domain.Result, error)

	// DeleteByID removes a result row.
	DeleteByID(ctx context.Context, db DBTX, id uuid.UUID) error

	// FindByTeam returns every result where the team appears as local or
	// visitor, newest first.
	FindByTeam(ctx context.Context, db DBTX, teamID uuid.UUID) ([]domain.Result, error)
}

// UserRepository provides access to users.
type UserRepository interface {
	FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.User, error)
	FindByEmail(ctx context.Context, db DBTX, email string) (*domain.User, error)
	Create(ctx context.Context, db DBTX, user *domain.User) error
}

// FacilityRepository provides access to facilities.
type FacilityRepository interface {
	FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.Facility, error)
	Create(ctx context.Context, db DBTX, f *domain.Facility) error
	List(ctx context.Context, db DBTX) ([]domain.Facility, error)
}

// ReservationRepository provides access to reservations.
type ReservationRepository interface {
	FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.Reservation, error)
	Create(ctx context.Context, db DBTX, r *domain.Reservation) error
	DeleteByID(ctx context.Context, db DBTX, id uuid.UUID) error
	ListByUser(ctx context.Context, db DBTX, userID uuid.UUID) ([]domain.Reservation, error)

	// Overlaps reports whether any reservation on the facility intersects
	// the [startsAt, startsAt+hours) window.
	Overlaps(ctx context.Context, db DBTX, facilityID uuid.UUID, startsAt time.Time, hours int) (bool, error)
}

// OutboxRepository provides access to the event_outbox table.
type OutboxRepository interface {
	// Insert writes an outbox event, ideally within the same transaction as
	// the state change it describes.
	Insert(ctx context.Context, db DBTX, draft domain.OutboxDraft) error

	// FetchUnpublished returns up to limit events not yet published.
	FetchUnpublished(ctx context.Context, db DBTX, limit int) ([]domain.OutboxDraft, error)

	// MarkPublished stamps events as delivered.
	MarkPublished(ctx context.Context, db DBTX, eventIDs []uuid.UUID) error
}
