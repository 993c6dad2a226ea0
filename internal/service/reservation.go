package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/deportesurjc/platform/internal/domain"
	"github.com/deportesurjc/platform/internal/repository"
	"github.com/google/uuid"
)

// ReservationService books and cancels facility reservations. The total
// price is derived from the facility's hourly rate at booking time.
type ReservationService struct {
	pool         repository.Pool
	facilities   repository.FacilityRepository
	reservations repository.ReservationRepository
	outbox       repository.OutboxRepository
	logger       *slog.Logger
}

// NewReservationService creates a ReservationService.
func NewReservationService(
	pool repository.Pool,
	facilities repository.FacilityRepository,
	reservations repository.ReservationRepository,
	outbox repository.OutboxRepository,
	logger *slog.Logger,
) *ReservationService {
	return &ReservationService{
		pool:         pool,
		facilities:   facilities,
		reservations: reservations,
		outbox:       outbox,
		logger:       logger,
	}
}

// ReservationInput holds the booking request fields.
type ReservationInput struct {
	FacilityID uuid.UUID `json:"facility_id"`
	StartsAt   time.Time `json:"starts_at"`
	Hours      int       `json:"hours"`
}

// CreateReservation books a facility for the user.
func (s *ReservationService) CreateReservation(ctx context.Context, userID uuid.UUID, input ReservationInput) (*domain.Reservation, error) {
	if err := domain.ValidateHours(input.Hours); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}
	if input.StartsAt.IsZero() {
		return nil, domain.ErrValidation("starts_at is required")
	}

	facility, err := s.facilities.FindByID(ctx, s.pool, input.FacilityID)
	if err != nil {
		return nil, domain.ErrInternal("find facility", err)
	}
	if facility == nil {
		return nil, domain.ErrReference("facility does not exist")
	}

	overlaps, err := s.reservations.Overlaps(ctx, s.pool, facility.ID, input.StartsAt, input.Hours)
	if err != nil {
		return nil, domain.ErrInternal("check overlap", err)
	}
	if overlaps {
		return nil, domain.ErrConflict("facility is already reserved for that time")
	}

	res := &domain.Reservation{
		ID:         uuid.New(),
		FacilityID: facility.ID,
		UserID:     userID,
		StartsAt:   input.StartsAt,
		Hours:      input.Hours,
		TotalPrice: facility.PricePerHour * int64(input.Hours),
		CreatedAt:  time.Now(),
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, domain.ErrInternal("begin tx", err)
	}
	defer tx.Rollback(ctx)

	if err := s.reservations.Create(ctx, tx, res); err != nil {
		return nil, domain.ErrInternal("create reservation", err)
	}
	if err := s.outbox.Insert(ctx, tx, domain.NewReservationEvent(domain.EventReservationBooked, res)); err != nil {
		return nil, domain.ErrInternal("insert reservation event", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, domain.ErrInternal("commit reservation", err)
	}
	return res, nil
}

// CancelReservation removes a booking. Only the owner may cancel it.
func (s *ReservationService) CancelReservation(ctx context.Context, userID, id uuid.UUID) error {
	res, err := s.reservations.FindByID(ctx, s.pool, id)
	if err != nil {
		return domain.ErrInternal("find reservation", err)
	}
	if res == nil {
		return domain.ErrNotFound("reservation", id.String())
	}
	if res.UserID != userID {
		return domain.ErrForbidden("reservation belongs to another user")
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return domain.ErrInternal("begin tx", err)
	}
	defer tx.Rollback(ctx)

	if err := s.reservations.DeleteByID(ctx, tx, id); err != nil {
		return domain.ErrInternal("delete reservation", err)
	}
	if err := s.outbox.Insert(ctx, tx, domain.NewReservationEvent(domain.EventReservationDropped, res)); err != nil {
		return domain.ErrInternal("insert reservation event", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.ErrInternal("commit cancellation", err)
	}
	return nil
}

// ListReservations returns the user's bookings, newest first.
func (s *ReservationService) ListReservations(ctx context.Context, userID uuid.UUID) ([]domain.Reservation, error) {
	reservations, err := s.reservations.ListByUser(ctx, s.pool, userID)
	if err != nil {
		return nil, domain.ErrInternal("list reservations", err)
	}
	return reservations, nil
}
