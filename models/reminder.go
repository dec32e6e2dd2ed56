package models

// ReminderPayload is the body of a check-in reminder task.
type ReminderPayload struct {
	ReservationID string `json:"reservationId"`
	ListingID     string `json:"listingId"`
	UserID        string `json:"userId"`
	Title         string `json:"title"`
	Body          string `json:"body"`
	CheckIn       string `json:"checkIn"` // RFC 3339
}
