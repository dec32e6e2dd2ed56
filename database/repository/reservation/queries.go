package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"staycation/models"

	"go.mongodb.org/mongo-driver/bson"
)

func dayBounds(day time.Time) (time.Time, time.Time) {
	day = day.UTC()
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}

func hourlyOnDayFilter(listingID string, day time.Time) bson.M {
	from, to := dayBounds(day)
	return bson.M{
		"listingId":   listingID,
		"bookingType": models.BookingTypeHourly,
		"startDate":   bson.M{"$gte": from, "$lt": to},
	}
}

func overlappingFilter(listingID string, start, end time.Time) bson.M {
	return bson.M{
		"listingId": listingID,
		"startDate": bson.M{"$lte": end},
		"endDate":   bson.M{"$gte": start},
	}
}

func (r *mongoReservationRepo) FindHourlyOnDay(ctx context.Context, listingID string, day time.Time) ([]models.Reservation, error) {
	res, err := r.find(ctx, hourlyOnDayFilter(listingID, day), bson.D{{Key: "startTime", Value: 1}})
	if err != nil {
		return nil, fmt.Errorf("failed to find hourly reservations for listing %s: %w", listingID, err)
	}
	return res, nil
}

func (r *mongoReservationRepo) FindOverlapping(ctx context.Context, listingID string, start, end time.Time) ([]models.Reservation, error) {
	res, err := r.find(ctx, overlappingFilter(listingID, start, end), bson.D{{Key: "startDate", Value: 1}})
	if err != nil {
		return nil, fmt.Errorf("failed to find overlapping reservations for listing %s: %w", listingID, err)
	}
	return res, nil
}
