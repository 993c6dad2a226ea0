package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventType enumerates all domain event types.
type EventType string

const (
	EventUserRegistered     EventType = "liga.user.registered"
	EventResultRecorded     EventType = "liga.result.recorded"
	EventResultCorrected    EventType = "liga.result.corrected"
	EventResultVoided       EventType = "liga.result.voided"
	EventStandingsAdjusted  EventType = "liga.standings.adjusted"
	EventReservationBooked  EventType = "liga.reservation.booked"
	EventReservationDropped EventType = "liga.reservation.dropped"
)

// AggregateType enumerates the aggregate root types for outbox events.
type AggregateType string

const (
	AggregateTeam        AggregateType = "team"
	AggregateResult      AggregateType = "result"
	AggregateUser        AggregateType = "user"
	AggregateReservation AggregateType = "reservation"
)

// OutboxDraft is the payload written to the event_outbox table.
type OutboxDraft struct {
	EventID       uuid.UUID       `json:"event_id"`
	AggregateType AggregateType   `json:"aggregate_type"`
	AggregateID   string          `json:"aggregate_id"`
	EventType     EventType       `json:"event_type"`
	PartitionKey  string          `json:"partition_key"`
	Payload       json.RawMessage `json:"payload"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

// NewStandingsAdjustedEvent records an aggregate increment applied to a team.
func NewStandingsAdjustedEvent(team *Team, delta AggregateDelta) OutboxDraft {
	payload, _ := json.Marshal(map[string]interface{}{
		"team_id": team.ID.String(),
		"delta":   delta,
		"after":   team.Aggregate,
	})
	return OutboxDraft{
		EventID:       uuid.New(),
		AggregateType: AggregateTeam,
		AggregateID:   team.ID.String(),
		EventType:     EventStandingsAdjusted,
		PartitionKey:  team.ID.String(),
		Payload:       payload,
		OccurredAt:    time.Now(),
	}
}

// NewResultEvent records a lifecycle transition of a fixture.
func NewResultEvent(evtType EventType, res *Result) OutboxDraft {
	payload, _ := json.Marshal(res)
	return OutboxDraft{
		EventID:       uuid.New(),
		AggregateType: AggregateResult,
		AggregateID:   res.ID.String(),
		EventType:     evtType,
		PartitionKey:  res.ID.String(),
		Payload:       payload,
		OccurredAt:    time.Now(),
	}
}

// NewUserRegisteredEvent records a new account.
func NewUserRegisteredEvent(userID uuid.UUID, email string) OutboxDraft {
	payload, _ := json.Marshal(map[string]string{
		"user_id": userID.String(),
		"email":   email,
	})
	return OutboxDraft{
		EventID:       uuid.New(),
		AggregateType: AggregateUser,
		AggregateID:   userID.String(),
		EventType:     EventUserRegistered,
		PartitionKey:  userID.String(),
		Payload:       payload,
		OccurredAt:    time.Now(),
	}
}

// NewReservationEvent records a booking or cancellation.
func NewReservationEvent(evtType EventType, res *Reservation) OutboxDraft {
	payload, _ := json.Marshal(res)
	return OutboxDraft{
		EventID:       uuid.New(),
		AggregateType: AggregateReservation,
		AggregateID:   res.ID.String(),
		EventType:     evtType,
		PartitionKey:  res.FacilityID.String(),
		Payload:       payload,
		OccurredAt:    time.Now(),
	}
}
