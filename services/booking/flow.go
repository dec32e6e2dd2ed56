package booking

import (
	"fmt"

	"staycation/models"
)

// NewFlow starts an idle daily booking flow for a listing.
func NewFlow(sessionID, userID, listingID string) models.BookingFlow {
	return models.BookingFlow{
		SessionID:   sessionID,
		UserID:      userID,
		ListingID:   listingID,
		State:       models.FlowIdle,
		BookingType: models.BookingTypeDaily,
	}
}

func canSelect(state models.FlowState) bool {
	switch state {
	case models.FlowIdle, models.FlowTimesSelected, models.FlowValidated, models.FlowFailed:
		return true
	}
	return false
}

// ApplySelection records a change to the booking type, dates or times. Any
// change drops the previous validation, so the flow has to be validated
// again before it can be submitted.
func ApplySelection(f models.BookingFlow, sel models.FlowSelection) (models.BookingFlow, error) {
	if !canSelect(f.State) {
		return f, fmt.Errorf("%w: cannot change selection while %s", ErrInvalidTransition, f.State)
	}
	switch sel.BookingType {
	case "":
	case models.BookingTypeDaily, models.BookingTypeHourly:
		f.BookingType = sel.BookingType
	default:
		return f, NewInvalidTimeRangeError(fmt.Sprintf("Unknown booking type %q", sel.BookingType))
	}
	if sel.StartDate != "" {
		f.StartDate = sel.StartDate
	}
	if sel.EndDate != "" {
		f.EndDate = sel.EndDate
	}
	if sel.StartTime != "" {
		f.StartTime = sel.StartTime
	}
	if sel.EndTime != "" {
		f.EndTime = sel.EndTime
	}
	if f.BookingType == models.BookingTypeDaily {
		f.StartTime, f.EndTime = "", ""
	}

	f.State = models.FlowTimesSelected
	f.Quote = nil
	f.Error = ""
	f.ReservationID = ""
	return f, nil
}

// Selection returns the flow's current selection.
func Selection(f models.BookingFlow) models.FlowSelection {
	return models.FlowSelection{
		BookingType: f.BookingType,
		StartDate:   f.StartDate,
		EndDate:     f.EndDate,
		StartTime:   f.StartTime,
		EndTime:     f.EndTime,
	}
}

// Validate moves a flow with a selection to Validated. A rejected selection
// is kept in the flow's Error; a valid one carries its price quote.
func Validate(f models.BookingFlow, listing models.Listing, reservations []models.Reservation, rules models.BookingRules) (models.BookingFlow, error) {
	if f.State != models.FlowTimesSelected && f.State != models.FlowValidated {
		return f, fmt.Errorf("%w: cannot validate while %s", ErrInvalidTransition, f.State)
	}
	quote, err := Evaluate(listing, Selection(f), reservations, rules)
	f.State = models.FlowValidated
	if err != nil {
		f.Quote = nil
		f.Error = MessageOf(err)
		return f, nil
	}
	f.Quote = &quote
	f.Error = ""
	return f, nil
}

// IsValid reports whether the flow is Validated without error.
func IsValid(f models.BookingFlow) bool {
	return f.State == models.FlowValidated && f.Error == "" && f.Quote != nil
}

// BeginSubmit moves a successfully validated flow to Submitting.
func BeginSubmit(f models.BookingFlow) (models.BookingFlow, error) {
	if !IsValid(f) {
		return f, fmt.Errorf("%w: cannot submit while %s", ErrInvalidTransition, f.State)
	}
	f.State = models.FlowSubmitting
	return f, nil
}

// CompleteSubmit records the outcome of a submission.
func CompleteSubmit(f models.BookingFlow, reservationID string, submitErr error) (models.BookingFlow, error) {
	if f.State != models.FlowSubmitting {
		return f, fmt.Errorf("%w: cannot complete while %s", ErrInvalidTransition, f.State)
	}
	if submitErr != nil {
		f.State = models.FlowFailed
		f.Error = MessageOf(submitErr)
		return f, nil
	}
	f.State = models.FlowSuccess
	f.ReservationID = reservationID
	return f, nil
}

// RequestFromFlow builds the reservation request a submitting flow sends.
func RequestFromFlow(f models.BookingFlow) models.ReservationRequest {
	req := models.ReservationRequest{
		ListingID:   f.ListingID,
		StartDate:   f.StartDate,
		EndDate:     f.EndDate,
		BookingType: f.BookingType,
	}
	if f.Quote != nil {
		req.TotalPrice = f.Quote.TotalPrice
	}
	if f.BookingType == models.BookingTypeHourly {
		req.StartTime = f.StartTime
		req.EndTime = f.EndTime
	}
	return req
}
