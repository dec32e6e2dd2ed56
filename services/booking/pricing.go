package booking

import (
	"fmt"
	"math"
	"time"

	"staycation/models"
)

// HourlyRate derives the hourly price of a listing from its nightly price.
// It is never below 1.
func HourlyRate(listingPrice int, rules models.BookingRules) int {
	hours := rules.EffectiveAvailableHours
	if hours <= 0 {
		hours = 1
	}
	rate := int(math.Round(float64(listingPrice) / float64(hours)))
	if rate < 1 {
		return 1
	}
	return rate
}

// DailyTotal prices a stay from start to end. A same-day stay costs one
// night; stays longer than one night carry the multi-day premium.
func DailyTotal(listingPrice int, start, end time.Time, rules models.BookingRules) (total, nights int, premium bool) {
	nights = calendarDays(start, end)
	if nights <= 0 {
		return listingPrice, 0, false
	}
	total = nights * listingPrice
	if nights > 1 {
		return int(math.Round(float64(total) * (1 + rules.MultiDayPremium))), nights, true
	}
	return total, nights, false
}

// HourlyTotal prices an hourly booking. Bookings longer than the hourly
// maximum, or ending after the late cutoff, are charged the nightly price.
func HourlyTotal(listingPrice, startHour, endHour int, rules models.BookingRules) (total int, dailyRate bool) {
	hours := endHour - startHour
	total = hours * HourlyRate(listingPrice, rules)
	if hours > rules.MaxHourlyBookingHours {
		total, dailyRate = listingPrice, true
	}
	if endHour > rules.LateCutoffHour {
		total, dailyRate = listingPrice, true
	}
	return total, dailyRate
}

// Quote prices a selection without checking availability.
func Quote(listing models.Listing, sel models.FlowSelection, rules models.BookingRules) (models.PriceQuote, error) {
	if sel.BookingType == models.BookingTypeHourly {
		start, err := ParseHour(sel.StartTime)
		if err != nil {
			return models.PriceQuote{}, NewInvalidTimeRangeError("Invalid start time")
		}
		end, err := ParseHour(sel.EndTime)
		if err != nil {
			return models.PriceQuote{}, NewInvalidTimeRangeError("Invalid end time")
		}
		if end <= start {
			return models.PriceQuote{}, NewInvalidTimeRangeError("End time must be after start time")
		}
		total, dailyRate := HourlyTotal(listing.Price, start, end, rules)
		return models.PriceQuote{
			BookingType:      models.BookingTypeHourly,
			UnitPrice:        HourlyRate(listing.Price, rules),
			Units:            end - start,
			TotalPrice:       total,
			DailyRateApplied: dailyRate,
		}, nil
	}

	start, end, err := selectionDays(sel)
	if err != nil {
		return models.PriceQuote{}, err
	}
	if end.Before(start) {
		return models.PriceQuote{}, NewInvalidTimeRangeError(fmt.Sprintf("End date %s is before start date", end.Format(models.DayLayout)))
	}
	total, nights, premium := DailyTotal(listing.Price, start, end, rules)
	if nights == 0 {
		nights = 1
	}
	return models.PriceQuote{
		BookingType:    models.BookingTypeDaily,
		UnitPrice:      listing.Price,
		Units:          nights,
		TotalPrice:     total,
		PremiumApplied: premium,
	}, nil
}
