package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"staycation/models"
	"staycation/services/tasks"
	"staycation/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Notifier delivers a reminder to a guest.
type Notifier interface {
	NotifyCheckIn(ctx context.Context, p models.ReminderPayload) error
}

// LogNotifier writes reminders to the application log.
type LogNotifier struct {
	Logger *zap.Logger
}

func (n LogNotifier) NotifyCheckIn(ctx context.Context, p models.ReminderPayload) error {
	n.Logger.Info("check-in reminder",
		zap.String("userId", p.UserID),
		zap.String("reservationId", p.ReservationID),
		zap.String("title", p.Title),
		zap.String("body", p.Body),
		zap.String("checkIn", p.CheckIn))
	return nil
}

// NewReminderMux routes reminder tasks to their handlers.
func NewReminderMux(notifier Notifier, logger *zap.Logger) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeCheckInReminder, handleCheckInReminder(notifier, logger))
	return mux
}

// InitReminderWorker runs the async worker in background. The returned
// server must be shut down by the caller.
func InitReminderWorker(notifier Notifier, logger *zap.Logger) *asynq.Server {
	srv := asynq.NewServer(
		utils.ReminderQueueOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)
	mux := NewReminderMux(notifier, logger)

	go func() {
		logger.Info("starting reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("reminder worker failed to start",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("max retry attempts reached, reminders disabled")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}

func handleCheckInReminder(notifier Notifier, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid reminder payload", zap.Error(err))
			return fmt.Errorf("invalid reminder payload: %v: %w", err, asynq.SkipRetry)
		}
		if err := notifier.NotifyCheckIn(ctx, p); err != nil {
			logger.Warn("failed to deliver check-in reminder",
				zap.String("reservationId", p.ReservationID), zap.Error(err))
			return err
		}
		return nil
	}
}
