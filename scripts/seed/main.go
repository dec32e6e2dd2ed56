// Command seed loads demo users and listings and prints a token for the
// first user.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"staycation/config"
	"staycation/database"
	"staycation/database/repository"
	"staycation/models"
	"staycation/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var demoListings = []models.Listing{
	{Title: "Beach house", Description: "Steps from the sand", ImageSrc: "/images/beach.jpg", Category: "Beach", RoomCount: 3, BathroomCount: 2, GuestCount: 6, LocationValue: "PT", Price: 220},
	{Title: "City loft", Description: "Open plan loft downtown", ImageSrc: "/images/loft.jpg", Category: "Modern", RoomCount: 1, BathroomCount: 1, GuestCount: 2, LocationValue: "DE", Price: 110},
	{Title: "Lake cabin", Description: "Quiet cabin with a dock", ImageSrc: "/images/cabin.jpg", Category: "Lake", RoomCount: 2, BathroomCount: 1, GuestCount: 4, LocationValue: "CA", Price: 150},
}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	database.InitDB()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	defer database.Disconnect(context.Background())

	users := repository.NewMongoUserRepo()
	listings := repository.NewMongoListingRepo()

	host := &models.User{ID: uuid.New().String(), Name: "Demo Host", Email: "host@example.com", CreatedAt: time.Now()}
	guest := &models.User{ID: uuid.New().String(), Name: "Demo Guest", Email: "guest@example.com", CreatedAt: time.Now()}
	for _, u := range []*models.User{host, guest} {
		if err := users.Create(ctx, u); err != nil {
			log.Fatalf("seed: failed to create user %s: %v", u.Email, err)
		}
	}

	for i := range demoListings {
		l := demoListings[i]
		l.UserID = host.ID
		if err := listings.Create(ctx, &l); err != nil {
			log.Fatalf("seed: failed to create listing %q: %v", l.Title, err)
		}
		logger.Info("seeded listing", zap.String("id", l.ID), zap.String("title", l.Title))
	}

	token, err := utils.GenerateToken(guest.ID, guest.Email, 30*24*time.Hour)
	if err != nil {
		log.Fatalf("seed: failed to sign token: %v", err)
	}
	fmt.Printf("guest %s token:\n%s\n", guest.ID, token)
}
