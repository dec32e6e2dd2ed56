package models

// FlowState is a step of the booking flow.
type FlowState string

const (
	FlowIdle          FlowState = "idle"
	FlowTimesSelected FlowState = "timesSelected"
	FlowValidated     FlowState = "validated"
	FlowSubmitting    FlowState = "submitting"
	FlowSuccess       FlowState = "success"
	FlowFailed        FlowState = "failed"
)

// BookingFlow is the explicit state of one guest's booking attempt. It is
// moved between states by the functions in services/booking and stored in
// redis between requests.
type BookingFlow struct {
	SessionID     string      `json:"sessionId"`
	UserID        string      `json:"userId"`
	ListingID     string      `json:"listingId"`
	State         FlowState   `json:"state"`
	BookingType   string      `json:"bookingType"`
	StartDate     string      `json:"startDate,omitempty"`
	EndDate       string      `json:"endDate,omitempty"`
	StartTime     string      `json:"startTime,omitempty"`
	EndTime       string      `json:"endTime,omitempty"`
	Quote         *PriceQuote `json:"quote,omitempty"`
	Error         string      `json:"error,omitempty"`
	ReservationID string      `json:"reservationId,omitempty"`
}

// FlowSelection is a change to the guest's date/time selection.
type FlowSelection struct {
	BookingType string `json:"bookingType,omitempty" form:"bookingType"`
	StartDate   string `json:"startDate,omitempty" form:"startDate"`
	EndDate     string `json:"endDate,omitempty" form:"endDate"`
	StartTime   string `json:"startTime,omitempty" form:"startTime"`
	EndTime     string `json:"endTime,omitempty" form:"endTime"`
}
