package booking

import (
	"context"
	"errors"
	"sync"
	"time"

	"staycation/models"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func hourlyRes(id string, date time.Time, start, end string) models.Reservation {
	return models.Reservation{
		ID:          id,
		ListingID:   "listing-1",
		StartDate:   date,
		EndDate:     date,
		BookingType: models.BookingTypeHourly,
		StartTime:   start,
		EndTime:     end,
	}
}

func dailyRes(id string, start, end time.Time) models.Reservation {
	return models.Reservation{
		ID:          id,
		ListingID:   "listing-1",
		StartDate:   start,
		EndDate:     end,
		BookingType: models.BookingTypeDaily,
	}
}

var errStore = errors.New("store unavailable")

type fakeListingRepo struct {
	listings map[string]models.Listing
	err      error
}

func newFakeListingRepo(listings ...models.Listing) *fakeListingRepo {
	repo := &fakeListingRepo{listings: map[string]models.Listing{}}
	for _, l := range listings {
		repo.listings[l.ID] = l
	}
	return repo
}

func (r *fakeListingRepo) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	if r.err != nil {
		return nil, r.err
	}
	l, ok := r.listings[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (r *fakeListingRepo) List(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error) {
	out := []models.Listing{}
	for _, l := range r.listings {
		out = append(out, l)
	}
	return out, r.err
}

func (r *fakeListingRepo) Create(ctx context.Context, listing *models.Listing) error {
	r.listings[listing.ID] = *listing
	return r.err
}

type fakeReservationRepo struct {
	mu           sync.Mutex
	reservations []models.Reservation
	createErr    error
	findErr      error
	listErr      error
}

func (r *fakeReservationRepo) Create(ctx context.Context, reservation *models.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.reservations = append(r.reservations, *reservation)
	return nil
}

func (r *fakeReservationRepo) ListByListing(ctx context.Context, listingID string) ([]models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := []models.Reservation{}
	for _, res := range r.reservations {
		if res.ListingID == listingID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *fakeReservationRepo) ListByUser(ctx context.Context, userID string) ([]models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := []models.Reservation{}
	for _, res := range r.reservations {
		if res.UserID == userID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *fakeReservationRepo) FindHourlyOnDay(ctx context.Context, listingID string, d time.Time) ([]models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	out := []models.Reservation{}
	for _, res := range r.reservations {
		if res.ListingID == listingID && res.IsHourly() && res.StartDay() == d.UTC().Format(models.DayLayout) {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *fakeReservationRepo) FindOverlapping(ctx context.Context, listingID string, start, end time.Time) ([]models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	out := []models.Reservation{}
	for _, res := range r.reservations {
		if res.ListingID == listingID && !res.StartDate.After(end) && !res.EndDate.Before(start) {
			out = append(out, res)
		}
	}
	return out, nil
}

type fakeReminders struct {
	scheduled []string
	err       error
}

func (f *fakeReminders) ScheduleCheckInReminder(ctx context.Context, r models.Reservation, listing models.Listing) error {
	if f.err != nil {
		return f.err
	}
	f.scheduled = append(f.scheduled, r.ID)
	return nil
}

type memoryFlowStore struct {
	flows map[string]models.BookingFlow
}

func newMemoryFlowStore() *memoryFlowStore {
	return &memoryFlowStore{flows: map[string]models.BookingFlow{}}
}

func (s *memoryFlowStore) Save(ctx context.Context, flow models.BookingFlow) error {
	s.flows[flow.SessionID] = flow
	return nil
}

func (s *memoryFlowStore) Load(ctx context.Context, sessionID string) (models.BookingFlow, error) {
	flow, ok := s.flows[sessionID]
	if !ok {
		return models.BookingFlow{}, ErrSessionNotFound
	}
	return flow, nil
}

func (s *memoryFlowStore) Delete(ctx context.Context, sessionID string) error {
	delete(s.flows, sessionID)
	return nil
}
