package domain

import (
	"time"

	"github.com/google/uuid"
)

// Facility is a bookable installation (court, pitch, pavilion).
type Facility struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Kind         string    `json:"kind"`
	PricePerHour int64     `json:"price_per_hour"` // cents
	Capacity     int       `json:"capacity"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Reservation books a facility for a user. TotalPrice is derived from the
// facility's hourly price at booking time and stored denormalized.
type Reservation struct {
	ID         uuid.UUID `json:"id"`
	FacilityID uuid.UUID `json:"facility_id"`
	UserID     uuid.UUID `json:"user_id"`
	StartsAt   time.Time `json:"starts_at"`
	Hours      int       `json:"hours"`
	TotalPrice int64     `json:"total_price"` // cents
	CreatedAt  time.Time `json:"created_at"`
}
