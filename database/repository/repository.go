package repository

import (
	listingRepo "staycation/database/repository/listing"
	reservationRepo "staycation/database/repository/reservation"
	userRepo "staycation/database/repository/user"
)

// Re-export the ListingRepository interface and constructor.
type ListingRepository = listingRepo.ListingRepository

var NewMongoListingRepo = listingRepo.NewMongoListingRepo

// Re-export the ReservationRepository interface and constructor.
type ReservationRepository = reservationRepo.ReservationRepository

var NewMongoReservationRepo = reservationRepo.NewMongoReservationRepo

// Re-export the UserRepository interface and constructor.
type UserRepository = userRepo.UserRepository

var NewMongoUserRepo = userRepo.NewMongoUserRepo
