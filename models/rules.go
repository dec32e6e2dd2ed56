package models

import "fmt"

// BookingRules is the canonical rule set shared by the availability checker,
// the validator and the price calculator.
type BookingRules struct {
	MinBookingHours         int     `json:"minBookingHours"`
	MaxHourlyBookingHours   int     `json:"maxHourlyBookingHours"`
	LateCutoffHour          int     `json:"lateCutoffHour"`
	MaxEndHour              int     `json:"maxEndHour"`
	CleaningHours           int     `json:"cleaningHours"`
	EffectiveAvailableHours int     `json:"effectiveAvailableHours"`
	MultiDayPremium         float64 `json:"multiDayPremium"`
}

// DefaultBookingRules returns the rule set used when nothing is configured.
func DefaultBookingRules() BookingRules {
	return BookingRules{
		MinBookingHours:         3,
		MaxHourlyBookingHours:   8,
		LateCutoffHour:          22,
		MaxEndHour:              23,
		CleaningHours:           1,
		EffectiveAvailableHours: 11,
		MultiDayPremium:         0.10,
	}
}

// Describe renders the rules as the lines shown next to the hourly picker.
func (r BookingRules) Describe() []string {
	return []string{
		fmt.Sprintf("Minimum booking: %d hours", r.MinBookingHours),
		fmt.Sprintf("Bookings over %d hours will convert to daily rate", r.MaxHourlyBookingHours),
		fmt.Sprintf("No bookings available past %d:00", r.LateCutoffHour),
		fmt.Sprintf("Multi-day bookings include a %.0f%% premium", r.MultiDayPremium*100),
	}
}
