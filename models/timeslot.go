package models

const (
	SlotKindReservation = "reservation"
	SlotKindCleaning    = "cleaning"
)

// TimeSlot is an hour-granularity interval, inclusive start and exclusive
// end, e.g. {"14:00", "17:00"}.
type TimeSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Kind      string `json:"kind"`
}

// PriceQuote is the outcome of the price calculator for one request.
type PriceQuote struct {
	BookingType      string `json:"bookingType"`
	UnitPrice        int    `json:"unitPrice"`
	Units            int    `json:"units"`
	TotalPrice       int    `json:"totalPrice"`
	DailyRateApplied bool   `json:"dailyRateApplied,omitempty"`
	PremiumApplied   bool   `json:"premiumApplied,omitempty"`
}

// Availability is the reservation widget's view of a listing for one day.
type Availability struct {
	ListingID           string     `json:"listingId"`
	Date                string     `json:"date"`
	NightlyPrice        int        `json:"nightlyPrice"`
	HourlyPrice         int        `json:"hourlyPrice"`
	DisabledDates       []string   `json:"disabledDates"`
	DisabledTimeSlots   []TimeSlot `json:"disabledTimeSlots"`
	AvailableStartTimes []string   `json:"availableStartTimes"`
	AvailableEndTimes   []string   `json:"availableEndTimes,omitempty"` // only when a start time was given
	Rules               []string   `json:"rules"`
}
