package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"staycation/models"
	"staycation/services/booking"

	"github.com/hibiken/asynq"
)

const TypeCheckInReminder = "reservation:checkin-reminder"

// DailyCheckInHour is the hour guests of a daily booking can check in.
const DailyCheckInHour = 15

// CheckInTime returns the moment a reservation starts: its start hour for
// hourly bookings, the daily check-in hour otherwise.
func CheckInTime(r models.Reservation) time.Time {
	day := r.StartDate.UTC()
	hour := DailyCheckInHour
	if r.IsHourly() {
		if h, err := booking.ParseHour(r.StartTime); err == nil {
			hour = h
		}
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, time.UTC)
}

// ReminderFireTime is lead before check-in, but never before now.
func ReminderFireTime(r models.Reservation, lead time.Duration, now time.Time) time.Time {
	fireAt := CheckInTime(r).Add(-lead)
	if fireAt.Before(now) {
		return now
	}
	return fireAt
}

func NewCheckInReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeCheckInReminder, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.TaskID("checkin:" + payload.ReservationID),
		asynq.MaxRetry(3),
	}
	return task, opts, nil
}

// Enqueuer is the part of *asynq.Client the scheduler needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// ReminderScheduler queues a check-in reminder for each new reservation.
type ReminderScheduler struct {
	Queue    Enqueuer
	LeadTime time.Duration
	Now      func() time.Time
}

func NewReminderScheduler(queue Enqueuer, lead time.Duration) *ReminderScheduler {
	return &ReminderScheduler{Queue: queue, LeadTime: lead, Now: time.Now}
}

// ScheduleCheckInReminder enqueues the reminder for a reservation.
func (s *ReminderScheduler) ScheduleCheckInReminder(ctx context.Context, r models.Reservation, listing models.Listing) error {
	checkIn := CheckInTime(r)
	payload := models.ReminderPayload{
		ReservationID: r.ID,
		ListingID:     r.ListingID,
		UserID:        r.UserID,
		Title:         "Upcoming stay",
		Body:          fmt.Sprintf("Your stay at %s starts %s", listing.Title, r.Label()),
		CheckIn:       checkIn.Format(time.RFC3339),
	}
	task, opts, err := NewCheckInReminderTask(payload, ReminderFireTime(r, s.LeadTime, s.Now()))
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.Queue.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}
