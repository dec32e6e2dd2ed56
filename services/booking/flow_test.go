package booking

import (
	"errors"
	"testing"

	"staycation/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlow_HappyPath(t *testing.T) {
	rules := models.DefaultBookingRules()
	listing := models.Listing{ID: "listing-1", Price: 110}

	f := NewFlow("s1", "u1", listing.ID)
	assert.Equal(t, models.FlowIdle, f.State)
	assert.Equal(t, models.BookingTypeDaily, f.BookingType)

	f, err := ApplySelection(f, models.FlowSelection{
		BookingType: models.BookingTypeHourly,
		StartDate:   "2024-06-01",
		StartTime:   "10:00",
		EndTime:     "14:00",
	})
	require.NoError(t, err)
	assert.Equal(t, models.FlowTimesSelected, f.State)

	f, err = Validate(f, listing, nil, rules)
	require.NoError(t, err)
	require.True(t, IsValid(f))
	assert.Equal(t, 40, f.Quote.TotalPrice)

	f, err = BeginSubmit(f)
	require.NoError(t, err)
	assert.Equal(t, models.FlowSubmitting, f.State)

	req := RequestFromFlow(f)
	assert.Equal(t, models.ReservationRequest{
		ListingID:   "listing-1",
		StartDate:   "2024-06-01",
		TotalPrice:  40,
		BookingType: models.BookingTypeHourly,
		StartTime:   "10:00",
		EndTime:     "14:00",
	}, req)

	f, err = CompleteSubmit(f, "res-1", nil)
	require.NoError(t, err)
	assert.Equal(t, models.FlowSuccess, f.State)
	assert.Equal(t, "res-1", f.ReservationID)
}

func TestFlow_ValidationErrorBlocksSubmit(t *testing.T) {
	rules := models.DefaultBookingRules()
	listing := models.Listing{ID: "listing-1", Price: 100}
	existing := []models.Reservation{dailyRes("r1", day(2024, 6, 10), day(2024, 6, 12))}

	f, err := ApplySelection(NewFlow("s1", "u1", listing.ID), models.FlowSelection{StartDate: "2024-06-11", EndDate: "2024-06-13"})
	require.NoError(t, err)
	f, err = Validate(f, listing, existing, rules)
	require.NoError(t, err)

	assert.Equal(t, models.FlowValidated, f.State)
	assert.Equal(t, "Dates not available", f.Error)
	assert.Nil(t, f.Quote)
	assert.False(t, IsValid(f))

	_, err = BeginSubmit(f)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
}

func TestFlow_SelectionChangeDropsValidation(t *testing.T) {
	rules := models.DefaultBookingRules()
	listing := models.Listing{ID: "listing-1", Price: 100}

	f, _ := ApplySelection(NewFlow("s1", "u1", listing.ID), models.FlowSelection{StartDate: "2024-06-01", EndDate: "2024-06-04"})
	f, _ = Validate(f, listing, nil, rules)
	require.True(t, IsValid(f))
	assert.Equal(t, 330, f.Quote.TotalPrice)

	f, err := ApplySelection(f, models.FlowSelection{EndDate: "2024-06-02"})
	require.NoError(t, err)
	assert.Equal(t, models.FlowTimesSelected, f.State)
	assert.Nil(t, f.Quote)
	assert.Equal(t, "2024-06-01", f.StartDate)
	assert.Equal(t, "2024-06-02", f.EndDate)
}

func TestFlow_SwitchToDailyClearsTimes(t *testing.T) {
	f, _ := ApplySelection(NewFlow("s1", "u1", "listing-1"), models.FlowSelection{
		BookingType: models.BookingTypeHourly,
		StartDate:   "2024-06-01",
		StartTime:   "10:00",
		EndTime:     "14:00",
	})
	f, err := ApplySelection(f, models.FlowSelection{BookingType: models.BookingTypeDaily})
	require.NoError(t, err)

	assert.Empty(t, f.StartTime)
	assert.Empty(t, f.EndTime)
	assert.Empty(t, RequestFromFlow(f).StartTime)
}

func TestFlow_InvalidTransitions(t *testing.T) {
	rules := models.DefaultBookingRules()
	listing := models.Listing{ID: "listing-1", Price: 100}
	idle := NewFlow("s1", "u1", listing.ID)

	_, err := Validate(idle, listing, nil, rules)
	assert.True(t, errors.Is(err, ErrInvalidTransition))

	_, err = CompleteSubmit(idle, "res-1", nil)
	assert.True(t, errors.Is(err, ErrInvalidTransition))

	_, err = ApplySelection(idle, models.FlowSelection{BookingType: "weekly"})
	assert.Equal(t, CodeInvalidTimeRange, CodeOf(err))

	submitting := idle
	submitting.State = models.FlowSubmitting
	_, err = ApplySelection(submitting, models.FlowSelection{StartDate: "2024-06-01"})
	assert.True(t, errors.Is(err, ErrInvalidTransition))
}

func TestFlow_FailedSubmitCanRetry(t *testing.T) {
	rules := models.DefaultBookingRules()
	listing := models.Listing{ID: "listing-1", Price: 100}

	f, _ := ApplySelection(NewFlow("s1", "u1", listing.ID), models.FlowSelection{StartDate: "2024-06-01"})
	f, _ = Validate(f, listing, nil, rules)
	f, err := BeginSubmit(f)
	require.NoError(t, err)

	f, err = CompleteSubmit(f, "", NewDateConflictError("Dates not available"))
	require.NoError(t, err)
	assert.Equal(t, models.FlowFailed, f.State)
	assert.Equal(t, "Dates not available", f.Error)

	f, err = ApplySelection(f, models.FlowSelection{StartDate: "2024-06-05"})
	require.NoError(t, err)
	assert.Equal(t, models.FlowTimesSelected, f.State)
	assert.Empty(t, f.Error)
}
