package models

import "time"

// Listing is a rentable place. Price is per night.
type Listing struct {
	ID            string    `bson:"id" json:"id"`
	Title         string    `bson:"title" json:"title"`
	Description   string    `bson:"description" json:"description"`
	ImageSrc      string    `bson:"imageSrc" json:"imageSrc"`
	Category      string    `bson:"category" json:"category"`
	RoomCount     int       `bson:"roomCount" json:"roomCount"`
	BathroomCount int       `bson:"bathroomCount" json:"bathroomCount"`
	GuestCount    int       `bson:"guestCount" json:"guestCount"`
	LocationValue string    `bson:"locationValue" json:"locationValue"`
	Price         int       `bson:"price" json:"price"`
	UserID        string    `bson:"userId" json:"userId"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// ListingWithReservations is the listing record returned after a reservation
// is created and on the listing detail page.
type ListingWithReservations struct {
	Listing
	Reservations []Reservation `json:"reservations"`
}

// ListingFilter narrows listing browsing. Zero values are ignored.
type ListingFilter struct {
	Category      string `form:"category"`
	LocationValue string `form:"locationValue"`
	GuestCount    int    `form:"guestCount"`
	RoomCount     int    `form:"roomCount"`
}
