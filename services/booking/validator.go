package booking

import (
	"fmt"
	"time"

	"staycation/models"
)

// ValidateHourly checks an hourly request against the rules and the
// disabled slots of its day.
func ValidateHourly(startTime, endTime string, slots []models.TimeSlot, rules models.BookingRules) error {
	if startTime == "" || endTime == "" {
		return NewMissingFieldError("Start time and end time are required for hourly bookings")
	}
	start, err := ParseHour(startTime)
	if err != nil {
		return NewInvalidTimeRangeError("Invalid start time")
	}
	end, err := ParseHour(endTime)
	if err != nil {
		return NewInvalidTimeRangeError("Invalid end time")
	}
	return checkHourRange(start, end, parseSlots(slots), rules)
}

func checkHourRange(start, end int, ranges []hourRange, rules models.BookingRules) error {
	if end <= start {
		return NewInvalidTimeRangeError("End time must be after start time")
	}
	if end-start < rules.MinBookingHours {
		return NewInvalidTimeRangeError(fmt.Sprintf("Minimum booking duration is %d hours", rules.MinBookingHours))
	}
	if end > rules.MaxEndHour {
		return NewInvalidTimeRangeError(fmt.Sprintf("Bookings must end by %s", FormatHour(rules.MaxEndHour)))
	}
	for _, r := range ranges {
		if OverlapsWithMargin(start, end, r.start, r.end, slotMargin(r.kind, rules)) {
			return NewInvalidTimeRangeError("Time slot not available or conflicts with cleaning time")
		}
	}
	return nil
}

// ValidateDaily rejects a daily request whose inclusive day range touches
// any existing reservation of the listing.
func ValidateDaily(start, end time.Time, reservations []models.Reservation) error {
	if start.IsZero() {
		return NewMissingFieldError("Start date is required")
	}
	start = truncateDay(start)
	if end.IsZero() {
		end = start
	}
	end = truncateDay(end)
	if end.Before(start) {
		return NewInvalidTimeRangeError("End date must not be before start date")
	}
	for _, res := range reservations {
		resStart := truncateDay(res.StartDate)
		resEnd := truncateDay(res.EndDate)
		if res.EndDate.IsZero() {
			resEnd = resStart
		}
		if !resStart.After(end) && !resEnd.Before(start) {
			return NewDateConflictError("Dates not available")
		}
	}
	return nil
}

// Evaluate runs the availability checker, the validator and the price
// calculator over one selection. reservations may be any superset of the
// listing's relevant reservations; filtering happens here.
func Evaluate(listing models.Listing, sel models.FlowSelection, reservations []models.Reservation, rules models.BookingRules) (models.PriceQuote, error) {
	start, end, err := selectionDays(sel)
	if err != nil {
		return models.PriceQuote{}, err
	}

	switch sel.BookingType {
	case models.BookingTypeHourly:
		slots := DisabledTimeSlots(reservations, start.Format(models.DayLayout), rules)
		if err := ValidateHourly(sel.StartTime, sel.EndTime, slots, rules); err != nil {
			return models.PriceQuote{}, err
		}
	case models.BookingTypeDaily, "":
		if err := ValidateDaily(start, end, reservations); err != nil {
			return models.PriceQuote{}, err
		}
	default:
		return models.PriceQuote{}, NewInvalidTimeRangeError(fmt.Sprintf("Unknown booking type %q", sel.BookingType))
	}

	return Quote(listing, sel, rules)
}

// selectionDays parses the day range of a selection. Hourly bookings and
// selections without an end date end on their start day.
func selectionDays(sel models.FlowSelection) (time.Time, time.Time, error) {
	if sel.StartDate == "" {
		return time.Time{}, time.Time{}, NewMissingFieldError("Start date is missing")
	}
	start, err := ParseDay(sel.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, NewInvalidTimeRangeError("Invalid start date")
	}
	if sel.BookingType == models.BookingTypeHourly || sel.EndDate == "" {
		return start, start, nil
	}
	end, err := ParseDay(sel.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, NewInvalidTimeRangeError("Invalid end date")
	}
	return start, end, nil
}
