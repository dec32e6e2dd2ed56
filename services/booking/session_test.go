package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"staycation/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSessionService(existing ...models.Reservation) (*DefaultBookingSessionService, *fakeReservationRepo) {
	listings := newFakeListingRepo(models.Listing{ID: "listing-1", Title: "Loft", Price: 110})
	reservations := &fakeReservationRepo{reservations: existing}
	rules := models.DefaultBookingRules()
	creator := &DefaultReservationService{
		Listings:     listings,
		Reservations: reservations,
		Rules:        rules,
		Logger:       zap.NewNop(),
	}
	return &DefaultBookingSessionService{
		Store:        newMemoryFlowStore(),
		Listings:     listings,
		Reservations: reservations,
		Creator:      creator,
		Rules:        rules,
	}, reservations
}

func TestSession_InitiateUpdateConfirm(t *testing.T) {
	svc, reservations := newSessionService()
	ctx := context.Background()

	flow, err := svc.InitiateSession(ctx, "u1", "listing-1")
	require.NoError(t, err)
	assert.Equal(t, models.FlowIdle, flow.State)
	assert.NotEmpty(t, flow.SessionID)

	flow, err = svc.UpdateSession(ctx, "u1", flow.SessionID, models.FlowSelection{
		BookingType: models.BookingTypeHourly,
		StartDate:   "2024-06-01",
		StartTime:   "10:00",
		EndTime:     "14:00",
	})
	require.NoError(t, err)
	assert.Equal(t, models.FlowValidated, flow.State)
	require.NotNil(t, flow.Quote)
	assert.Equal(t, 40, flow.Quote.TotalPrice)

	flow, listing, err := svc.ConfirmSession(ctx, "u1", flow.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.FlowSuccess, flow.State)
	assert.NotEmpty(t, flow.ReservationID)
	require.Len(t, listing.Reservations, 1)
	assert.Equal(t, flow.ReservationID, reservations.reservations[0].ID)
}

func TestSession_UpdateKeepsValidationError(t *testing.T) {
	svc, _ := newSessionService(dailyRes("r1", day(2024, 6, 10), day(2024, 6, 12)))
	ctx := context.Background()

	flow, err := svc.InitiateSession(ctx, "u1", "listing-1")
	require.NoError(t, err)

	flow, err = svc.UpdateSession(ctx, "u1", flow.SessionID, models.FlowSelection{StartDate: "2024-06-11", EndDate: "2024-06-13"})
	require.NoError(t, err)
	assert.Equal(t, "Dates not available", flow.Error)

	_, _, err = svc.ConfirmSession(ctx, "u1", flow.SessionID)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
}

func TestSession_IncompleteSelectionIsReported(t *testing.T) {
	svc, _ := newSessionService()
	ctx := context.Background()

	flow, _ := svc.InitiateSession(ctx, "u1", "listing-1")
	flow, err := svc.UpdateSession(ctx, "u1", flow.SessionID, models.FlowSelection{BookingType: models.BookingTypeHourly})
	require.NoError(t, err)

	assert.Equal(t, "Start date is missing", flow.Error)
	assert.False(t, IsValid(*flow))
}

func TestSession_ConfirmRaceFails(t *testing.T) {
	svc, reservations := newSessionService()
	ctx := context.Background()

	flow, _ := svc.InitiateSession(ctx, "u1", "listing-1")
	flow, err := svc.UpdateSession(ctx, "u1", flow.SessionID, models.FlowSelection{StartDate: "2024-06-01", EndDate: "2024-06-02"})
	require.NoError(t, err)
	require.True(t, IsValid(*flow))

	// Someone else books the same nights after validation.
	other := dailyRes("r9", day(2024, 6, 2), day(2024, 6, 3))
	reservations.reservations = append(reservations.reservations, other)

	flow, listing, err := svc.ConfirmSession(ctx, "u1", flow.SessionID)
	assert.Equal(t, CodeDateConflict, CodeOf(err))
	assert.Nil(t, listing)
	require.NotNil(t, flow)
	assert.Equal(t, models.FlowFailed, flow.State)
	assert.Equal(t, "Dates not available", flow.Error)
}

func TestSession_Ownership(t *testing.T) {
	svc, _ := newSessionService()
	ctx := context.Background()

	flow, _ := svc.InitiateSession(ctx, "u1", "listing-1")

	_, err := svc.UpdateSession(ctx, "u2", flow.SessionID, models.FlowSelection{StartDate: "2024-06-01"})
	assert.ErrorIs(t, err, ErrSessionForbidden)
	assert.ErrorIs(t, svc.CancelSession(ctx, "u2", flow.SessionID), ErrSessionForbidden)

	require.NoError(t, svc.CancelSession(ctx, "u1", flow.SessionID))
	_, err = svc.UpdateSession(ctx, "u1", flow.SessionID, models.FlowSelection{StartDate: "2024-06-01"})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSession_UnknownListing(t *testing.T) {
	svc, _ := newSessionService()

	_, err := svc.InitiateSession(context.Background(), "u1", "nope")

	assert.Equal(t, CodeNotFound, CodeOf(err))
}

func TestRedisFlowStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	store := NewRedisFlowStore(client)
	ctx := context.Background()

	flow := NewFlow("s1", "u1", "listing-1")
	flow.StartDate = "2024-06-01"
	require.NoError(t, store.Save(ctx, flow))
	assert.True(t, mr.Exists("bookingFlow:s1"))
	assert.Equal(t, SessionTTL, mr.TTL("bookingFlow:s1"))

	loaded, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, flow, loaded)

	mr.FastForward(SessionTTL + time.Second)
	_, err = store.Load(ctx, "s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	require.NoError(t, store.Save(ctx, flow))
	require.NoError(t, store.Delete(ctx, "s1"))
	_, err = store.Load(ctx, "s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
