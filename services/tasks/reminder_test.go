package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"staycation/models"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingQueue struct {
	tasks []*asynq.Task
	opts  [][]asynq.Option
	err   error
}

func (q *recordingQueue) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if q.err != nil {
		return nil, q.err
	}
	q.tasks = append(q.tasks, task)
	q.opts = append(q.opts, opts)
	return &asynq.TaskInfo{ID: "task"}, nil
}

func TestCheckInTime(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	daily := models.Reservation{StartDate: start, BookingType: models.BookingTypeDaily}
	assert.Equal(t, time.Date(2024, 6, 1, DailyCheckInHour, 0, 0, 0, time.UTC), CheckInTime(daily))

	hourly := models.Reservation{StartDate: start, BookingType: models.BookingTypeHourly, StartTime: "10:00", EndTime: "14:00"}
	assert.Equal(t, time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC), CheckInTime(hourly))
}

func TestReminderFireTime(t *testing.T) {
	r := models.Reservation{StartDate: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), BookingType: models.BookingTypeDaily}

	early := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 6, 9, 15, 0, 0, 0, time.UTC), ReminderFireTime(r, 24*time.Hour, early))

	late := time.Date(2024, 6, 10, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, late, ReminderFireTime(r, 24*time.Hour, late))
}

func TestScheduleCheckInReminder(t *testing.T) {
	queue := &recordingQueue{}
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	scheduler := &ReminderScheduler{Queue: queue, LeadTime: 24 * time.Hour, Now: func() time.Time { return now }}
	r := models.Reservation{
		ID:          "res-1",
		ListingID:   "listing-1",
		UserID:      "u1",
		StartDate:   time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC),
		BookingType: models.BookingTypeDaily,
	}

	err := scheduler.ScheduleCheckInReminder(context.Background(), r, models.Listing{ID: "listing-1", Title: "Loft"})
	require.NoError(t, err)

	require.Len(t, queue.tasks, 1)
	assert.Equal(t, TypeCheckInReminder, queue.tasks[0].Type())
	assert.Len(t, queue.opts[0], 3)

	var payload models.ReminderPayload
	require.NoError(t, json.Unmarshal(queue.tasks[0].Payload(), &payload))
	assert.Equal(t, "res-1", payload.ReservationID)
	assert.Equal(t, "u1", payload.UserID)
	assert.Equal(t, "Your stay at Loft starts Jun 10, 2024 - Jun 12, 2024", payload.Body)
	assert.Equal(t, "2024-06-10T15:00:00Z", payload.CheckIn)
}

func TestScheduleCheckInReminder_QueueError(t *testing.T) {
	queue := &recordingQueue{err: errors.New("redis down")}
	scheduler := NewReminderScheduler(queue, time.Hour)

	err := scheduler.ScheduleCheckInReminder(context.Background(), models.Reservation{ID: "res-1"}, models.Listing{})

	assert.ErrorContains(t, err, "redis down")
}
