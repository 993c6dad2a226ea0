package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/deportesurjc/platform/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type facilityRepo struct{}

// NewFacilityRepository returns a pgx-backed FacilityRepository.
func NewFacilityRepository() FacilityRepository {
	return &facilityRepo{}
}

const facilityColumns = `id, name, kind, price_per_hour, capacity, created_at, updated_at`

func (r *facilityRepo) FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.Facility, error) {
	row := db.QueryRow(ctx, `SELECT `+facilityColumns+` FROM facilities WHERE id = $1`, id)
	return scanFacility(row)
}

func (r *facilityRepo) Create(ctx context.Context, db DBTX, f *domain.Facility) error {
	_, err := db.Exec(ctx, `
		INSERT INTO facilities (id, name, kind, price_per_hour, capacity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		f.ID, f.Name, f.Kind, f.PricePerHour, f.Capacity, f.CreatedAt, f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert facility: %w", err)
	}
	return nil
}

func (r *facilityRepo) List(ctx context.Context, db DBTX) ([]domain.Facility, error) {
	rows, err := db.Query(ctx, `SELECT `+facilityColumns+` FROM facilities ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list facilities: %w", err)
	}
	defer rows.Close()

	var facilities []domain.Facility
	for rows.Next() {
		var f domain.Facility
		if err := rows.Scan(&f.ID, &f.Name, &f.Kind, &f.PricePerHour, &f.Capacity, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan facility row: %w", err)
		}
		facilities = append(facilities, f)
	}
	return facilities, rows.Err()
}

func scanFacility(row pgx.Row) (*domain.Facility, error) {
	var f domain.Facility
	err := row.Scan(&f.ID, &f.Name, &f.Kind, &f.PricePerHour, &f.Capacity, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan facility: %w", err)
	}
	return &f, nil
}

type reservationRepo struct{}

// NewReservationRepository returns a pgx-backed ReservationRepository.
func NewReservationRepository() ReservationRepository {
	return &reservationRepo{}
}

const reservationColumns = `id, facility_id, user_id, starts_at, hours, total_price, created_at`

func (r *reservationRepo) FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.Reservation, error) {
	row := db.QueryRow(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id)
	return scanReservation(row)
}

func (r *reservationRepo) Create(ctx context.Context, db DBTX, res *domain.Reservation) error {
	_, err := db.Exec(ctx, `
		INSERT INTO reservations (id, facility_id, user_id, starts_at, hours, total_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		res.ID, res.FacilityID, res.UserID, res.StartsAt, res.Hours, res.TotalPrice, res.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}
	return nil
}

func (r *reservationRepo) DeleteByID(ctx context.Context, db DBTX, id uuid.UUID) error {
	_, err := db.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}
	return nil
}

func (r *reservationRepo) ListByUser(ctx context.Context, db DBTX, userID uuid.UUID) ([]domain.Reservation, error) {
	rows, err := db.Query(ctx, `
		SELECT `+reservationColumns+` FROM reservations
		WHERE user_id = $1
		ORDER BY starts_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		var res domain.Reservation
		if err := rows.Scan(&res.ID, &res.FacilityID, &res.UserID, &res.StartsAt, &res.Hours, &res.TotalPrice, &res.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan reservation row: %w", err)
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

func (r *reservationRepo) Overlaps(ctx context.Context, db DBTX, facilityID uuid.UUID, startsAt time.Time, hours int) (bool, error) {
	var overlaps bool
	err := db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM reservations
			WHERE facility_id = $1
			  AND starts_at < $2 + make_interval(hours => $3)
			  AND starts_at + make_interval(hours => hours) > $2
		)`, facilityID, startsAt, hours).Scan(&overlaps)
	if err != nil {
		return false, fmt.Errorf("check reservation overlap: %w", err)
	}
	return overlaps, nil
}

func scanReservation(row pgx.Row) (*domain.Reservation, error) {
	var res domain.Reservation
	err := row.Scan(&res.ID, &res.FacilityID, &res.UserID, &res.StartsAt, &res.Hours, &res.TotalPrice, &res.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}
	return &res, nil
}
