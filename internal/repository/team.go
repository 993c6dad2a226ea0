package repository

import (
	"context"
	"fmt"

	"github.com/deportesurjc/platform/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type teamRepo struct{}

// NewTeamRepository returns a pgx-backed TeamRepository.
func NewTeamRepository() TeamRepository {
	return &teamRepo{}
}

const teamColumns = `id, name, sport, wins, draws, losses, points, created_at, updated_at`

func (r *teamRepo) FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.Team, error) {
	row := db.QueryRow(ctx, `SELECT `+teamColumns+` FROM teams WHERE id = $1`, id)
	return scanTeam(row)
}

func (r *teamRepo) Create(ctx context.Context, db DBTX, team *domain.Team) error {
	_, err := db.Exec(ctx, `
		INSERT INTO teams (id, name, sport, wins, draws, losses, points, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		team.ID, team.Name, team.Sport,
		team.Wins, team.Draws, team.Losses, team.Points,
		team.CreatedAt, team.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert team: %w", err)
	}
	return nil
}

// IncrementAggregate applies all four counter deltas in a single UPDATE with
// server-side arithmetic. Zero components are sent as-is so a zero delta is
// a genuine (harmless) write rather than a client-side skip.
func (r *teamRepo) IncrementAggregate(ctx context.Context, db DBTX, id uuid.UUID, delta domain.AggregateDelta) (*domain.Team, error) {
	row := db.QueryRow(ctx, `
		UPDATE teams SET
			wins = wins + $1,
			draws = draws + $2,
			losses = losses + $3,
			points = points + $4,
			updated_at = now()
		WHERE id = $5
		RETURNING `+teamColumns,
		delta.Wins, delta.Draws, delta.Losses, delta.Points, id)
	return scanTeam(row)
}

func (r *teamRepo) ListBySport(ctx context.Context, db DBTX, sport string) ([]domain.Team, error) {
	rows, err := db.Query(ctx, `
		SELECT `+teamColumns+` FROM teams
		WHERE sport = $1
		ORDER BY points DESC, wins DESC, name ASC`, sport)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	var teams []domain.Team
	for rows.Next() {
		var t domain.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Sport, &t.Wins, &t.Draws, &t.Losses, &t.Points, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan team row: %w", err)
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (r *teamRepo) ListAll(ctx context.Context, db DBTX) ([]domain.Team, error) {
	rows, err := db.Query(ctx, `
		SELECT `+teamColumns+` FROM teams
		ORDER BY sport ASC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	var teams []domain.Team
	for rows.Next() {
		var t domain.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Sport, &t.Wins, &t.Draws, &t.Losses, &t.Points, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan team row: %w", err)
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func scanTeam(row pgx.Row) (*domain.Team, error) {
	var t domain.Team
	err := row.Scan(&t.ID, &t.Name, &t.Sport, &t.Wins, &t.Draws, &t.Losses, &t.Points, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan team: %w", err)
	}
	return &t, nil
}
