package models

import (
	"fmt"
	"time"
)

const (
	BookingTypeDaily  = "daily"
	BookingTypeHourly = "hourly"
)

// DayLayout is the calendar day key used when comparing reservation days.
const DayLayout = "2006-01-02"

// Reservation is a confirmed stay. It is read-only once created.
type Reservation struct {
	ID          string    `bson:"id" json:"id"`
	ListingID   string    `bson:"listingId" json:"listingId"`
	UserID      string    `bson:"userId" json:"userId"`
	StartDate   time.Time `bson:"startDate" json:"startDate"`
	EndDate     time.Time `bson:"endDate" json:"endDate"`
	BookingType string    `bson:"bookingType" json:"bookingType"`
	StartTime   string    `bson:"startTime,omitempty" json:"startTime,omitempty"` // "HH:00", hourly only
	EndTime     string    `bson:"endTime,omitempty" json:"endTime,omitempty"`     // "HH:00", hourly only
	TotalPrice  int       `bson:"totalPrice" json:"totalPrice"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// IsHourly reports whether the reservation is denominated in hours.
func (r Reservation) IsHourly() bool {
	return r.BookingType == BookingTypeHourly
}

// StartDay returns the UTC calendar day of the reservation start.
func (r Reservation) StartDay() string {
	return r.StartDate.UTC().Format(DayLayout)
}

// Label renders the trip line shown on a reservation card.
func (r Reservation) Label() string {
	const layout = "Jan 2, 2006"
	start := r.StartDate.UTC().Format(layout)
	if r.IsHourly() && r.StartTime != "" && r.EndTime != "" {
		return fmt.Sprintf("%s (%s - %s)", start, r.StartTime, r.EndTime)
	}
	return fmt.Sprintf("%s - %s", start, r.EndDate.UTC().Format(layout))
}

// ReservationRequest is the payload of the reservation creation endpoint.
type ReservationRequest struct {
	ListingID   string `json:"listingId"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
	TotalPrice  int    `json:"totalPrice"`
	BookingType string `json:"bookingType,omitempty"`
	StartTime   string `json:"startTime,omitempty"`
	EndTime     string `json:"endTime,omitempty"`
}

// Trip is a reservation as listed on the current user's trips page.
type Trip struct {
	Reservation Reservation `json:"reservation"`
	Listing     *Listing    `json:"listing,omitempty"`
	Label       string      `json:"label"`
}
