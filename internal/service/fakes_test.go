package service

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/deportesurjc/platform/internal/domain"
	"github.com/deportesurjc/platform/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// fakePool satisfies repository.Pool for unit tests. The fakes below ignore
// the db handle entirely, so only Begin needs a real implementation.
type fakePool struct {
	repository.DBTX
}

type fakeTx struct {
	pgx.Tx
}

func (fakeTx) Commit(context.Context) error   { return nil }
func (fakeTx) Rollback(context.Context) error { return nil }

func (fakePool) Begin(context.Context) (pgx.Tx, error) { return fakeTx{}, nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- team store ---

type fakeTeamStore struct {
	teams      map[uuid.UUID]*domain.Team
	failFor    map[uuid.UUID]error
	increments int
}

func newFakeTeamStore() *fakeTeamStore {
	return &fakeTeamStore{teams: map[uuid.UUID]*domain.Team{}, failFor: map[uuid.UUID]error{}}
}

func (s *fakeTeamStore) add(name, sport string) uuid.UUID {
	id := uuid.New()
	s.teams[id] = &domain.Team{ID: id, Name: name, Sport: sport}
	return id
}

func (s *fakeTeamStore) FindByID(_ context.Context, _ repository.DBTX, id uuid.UUID) (*domain.Team, error) {
	return s.teams[id], nil
}

func (s *fakeTeamStore) Create(_ context.Context, _ repository.DBTX, team *domain.Team) error {
	s.teams[team.ID] = team
	return nil
}

func (s *fakeTeamStore) IncrementAggregate(_ context.Context, _ repository.DBTX, id uuid.UUID, delta domain.AggregateDelta) (*domain.Team, error) {
	if err := s.failFor[id]; err != nil {
		return nil, err
	}
	s.increments++
	team, ok := s.teams[id]
	if !ok {
		return nil, nil
	}
	team.Aggregate = team.Aggregate.Apply(delta)
	return team, nil
}

func (s *fakeTeamStore) ListBySport(_ context.Context, _ repository.DBTX, sport string) ([]domain.Team, error) {
	var out []domain.Team
	for _, t := range s.teams {
		if t.Sport == sport {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (s *fakeTeamStore) ListAll(_ context.Context, _ repository.DBTX) ([]domain.Team, error) {
	var out []domain.Team
	for _, t := range s.teams {
		out = append(out, *t)
	}
	return out, nil
}

// --- result store ---

type fakeResultStore struct {
	results map[uuid.UUID]*domain.Result
}

func newFakeResultStore() *fakeResultStore {
	return &fakeResultStore{results: map[uuid.UUID]*domain.Result{}}
}

func (s *fakeResultStore) FindByID(_ context.Context, _ repository.DBTX, id uuid.UUID) (*domain.Result, error) {
	if res, ok := s.results[id]; ok {
		cp := *res
		return &cp, nil
	}
	return nil, nil
}

func (s *fakeResultStore) Insert(_ context.Context, _ repository.DBTX, res *domain.Result) (*domain.Result, error) {
	cp := *res
	s.results[res.ID] = &cp
	return res, nil
}

func (s *fakeResultStore) ReplaceFields(_ context.Context, _ repository.DBTX, res *domain.Result) (*domain.Result, error) {
	if _, ok := s.results[res.ID]; !ok {
		return nil, nil
	}
	cp := *res
	cp.UpdatedAt = time.Now()
	s.results[res.ID] = &cp
	return &cp, nil
}

func (s *fakeResultStore) DeleteByID(_ context.Context, _ repository.DBTX, id uuid.UUID) error {
	delete(s.results, id)
	return nil
}

func (s *fakeResultStore) FindByTeam(_ context.Context, _ repository.DBTX, teamID uuid.UUID) ([]domain.Result, error) {
	var out []domain.Result
	for _, res := range s.results {
		if res.LocalTeamID == teamID || res.VisitorTeamID == teamID {
			out = append(out, *res)
		}
	}
	return out, nil
}

// --- outbox ---

type fakeOutbox struct {
	drafts []domain.OutboxDraft
}

func (o *fakeOutbox) Insert(_ context.Context, _ repository.DBTX, draft domain.OutboxDraft) error {
	o.drafts = append(o.drafts, draft)
	return nil
}

func (o *fakeOutbox) FetchUnpublished(_ context.Context, _ repository.DBTX, _ int) ([]domain.OutboxDraft, error) {
	return o.drafts, nil
}

func (o *fakeOutbox) MarkPublished(_ context.Context, _ repository.DBTX, _ []uuid.UUID) error {
	return nil
}

func (o *fakeOutbox) countType(t domain.EventType) int {
	n := 0
	for _, d := range o.drafts {
		if d.EventType == t {
			n++
		}
	}
	return n
}

// --- users ---

type fakeUserStore struct {
	users map[uuid.UUID]*domain.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[uuid.UUID]*domain.User{}}
}

func (s *fakeUserStore) FindByID(_ context.Context, _ repository.DBTX, id uuid.UUID) (*domain.User, error) {
	return s.users[id], nil
}

func (s *fakeUserStore) FindByEmail(_ context.Context, _ repository.DBTX, email string) (*domain.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) Create(_ context.Context, _ repository.DBTX, user *domain.User) error {
	s.users[user.ID] = user
	return nil
}

// --- facilities / reservations ---

type fakeFacilityStore struct {
	facilities map[uuid.UUID]*domain.Facility
}

func newFakeFacilityStore() *fakeFacilityStore {
	return &fakeFacilityStore{facilities: map[uuid.UUID]*domain.Facility{}}
}

func (s *fakeFacilityStore) add(name string, pricePerHour int64) uuid.UUID {
	id := uuid.New()
	s.facilities[id] = &domain.Facility{ID: id, Name: name, Kind: "pista", PricePerHour: pricePerHour, Capacity: 10}
	return id
}

func (s *fakeFacilityStore) FindByID(_ context.Context, _ repository.DBTX, id uuid.UUID) (*domain.Facility, error) {
	return s.facilities[id], nil
}

func (s *fakeFacilityStore) Create(_ context.Context, _ repository.DBTX, f *domain.Facility) error {
	s.facilities[f.ID] = f
	return nil
}

func (s *fakeFacilityStore) List(_ context.Context, _ repository.DBTX) ([]domain.Facility, error) {
	var out []domain.Facility
	for _, f := range s.facilities {
		out = append(out, *f)
	}
	return out, nil
}

type fakeReservationStore struct {
	reservations map[uuid.UUID]*domain.Reservation
}

func newFakeReservationStore() *fakeReservationStore {
	return &fakeReservationStore{reservations: map[uuid.UUID]*domain.Reservation{}}
}

func (s *fakeReservationStore) FindByID(_ context.Context, _ repository.DBTX, id uuid.UUID) (*domain.Reservation, error) {
	return s.reservations[id], nil
}

func (s *fakeReservationStore) Create(_ context.Context, _ repository.DBTX, r *domain.Reservation) error {
	s.reservations[r.ID] = r
	return nil
}

func (s *fakeReservationStore) DeleteByID(_ context.Context, _ repository.DBTX, id uuid.UUID) error {
	delete(s.reservations, id)
	return nil
}

func (s *fakeReservationStore) ListByUser(_ context.Context, _ repository.DBTX, userID uuid.UUID) ([]domain.Reservation, error) {
	var out []domain.Reservation
	for _, r := range s.reservations {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (s *fakeReservationStore) Overlaps(_ context.Context, _ repository.DBTX, facilityID uuid.UUID, startsAt time.Time, hours int) (bool, error) {
	end := startsAt.Add(time.Duration(hours) * time.Hour)
	for _, r := range s.reservations {
		if r.FacilityID != facilityID {
			continue
		}
		rEnd := r.StartsAt.Add(time.Duration(r.Hours) * time.Hour)
		if r.StartsAt.Before(end) && rEnd.After(startsAt) {
			return true, nil
		}
	}
	return false, nil
}
