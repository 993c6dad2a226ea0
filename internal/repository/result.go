package repository

import (
	"context"
	"fmt"

	"github.com/deportesurjc/platform/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type resultRepo struct{}

// NewResultRepository returns a pgx-backed ResultRepository.
func NewResultRepository() ResultRepository {
	return &resultRepo{}
}

const resultColumns = `id, sport, round, played_at, venue,
	local_team_id, visitor_team_id, local_team_name, visitor_team_name,
	local_goals, visitor_goals, outcome, created_at, updated_at`

func (r *resultRepo) FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.Result, error) {
	row := db.QueryRow(ctx, `SELECT `+resultColumns+` FROM results WHERE id = $1`, id)
	return scanResult(row)
}

func (r *resultRepo) Insert(ctx context.Context, db DBTX, res *domain.Result) (*domain.Result, error) {
	row := db.QueryRow(ctx, `
		INSERT INTO results (id, sport, round, played_at, venue,
			local_team_id, visitor_team_id, local_team_name, visitor_team_name,
			local_goals, visitor_goals, outcome, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING `+resultColumns,
		res.ID, res.Sport, res.Round, res.PlayedAt, res.Venue,
		res.LocalTeamID, res.VisitorTeamID, res.LocalTeamName, res.VisitorTeamName,
		res.LocalGoals, res.VisitorGoals, string(res.Outcome), res.CreatedAt, res.UpdatedAt)
	inserted, err := scanResult(row)
	if err != nil {
		return nil, fmt.Errorf("insert result: %w", err)
	}
	return inserted, nil
}

func (r *resultRepo) ReplaceFields(ctx context.Context, db DBTX, res *domain.Result) (*domain.Result, error) {
	row := db.QueryRow(ctx, `
		UPDATE results SET
			sport = $1, round = $2, played_at = $3, venue = $4,
			local_team_name = $5, visitor_team_name = $6,
			local_goals = $7, visitor_goals = $8, outcome = $9,
			updated_at = now()
		WHERE id = $10
		RETURNING `+resultColumns,
		res.Sport, res.Round, res.PlayedAt, res.Venue,
		res.LocalTeamName, res.VisitorTeamName,
		res.LocalGoals, res.VisitorGoals, string(res.Outcome), res.ID)
	return scanResult(row)
}

func (r *resultRepo) DeleteByID(ctx context.Context, db DBTX, id uuid.UUID) error {
	_, err := db.Exec(ctx, `DELETE FROM results WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete result: %w", err)
	}
	return nil
}

func (r *resultRepo) FindByTeam(ctx context.Context, db DBTX, teamID uuid.UUID) ([]domain.Result, error) {
	rows, err := db.Query(ctx, `
		SELECT `+resultColumns+` FROM results
		WHERE local_team_id = $1 OR visitor_team_id = $1
		ORDER BY played_at DESC`, teamID)
	if err != nil {
		return nil, fmt.Errorf("find results by team: %w", err)
	}
	defer rows.Close()

	var results []domain.Result
	for rows.Next() {
		var res domain.Result
		if err := rows.Scan(&res.ID, &res.Sport, &res.Round, &res.PlayedAt, &res.Venue,
			&res.LocalTeamID, &res.VisitorTeamID, &res.LocalTeamName, &res.VisitorTeamName,
			&res.LocalGoals, &res.VisitorGoals, &res.Outcome, &res.CreatedAt, &res.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan result row: %w", err)
		}
		results = append(results, res)
	}
	return results, rows.Err()
}

func scanResult(row pgx.Row) (*domain.Result, error) {
	var res domain.Result
	err := row.Scan(&res.ID, &res.Sport, &res.Round, &res.PlayedAt, &res.Venue,
		&res.LocalTeamID, &res.VisitorTeamID, &res.LocalTeamName, &res.VisitorTeamName,
		&res.LocalGoals, &res.VisitorGoals, &res.Outcome, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan result: %w", err)
	}
	return &res, nil
}
