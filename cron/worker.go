package cron

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"slotbook/config"
	reservationRepo "slotbook/database/repository/reservation"
	"slotbook/models"
	"slotbook/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeReminderSend = "reminder:send"

// ReminderPayload is the task body queued for an upcoming reservation.
type ReminderPayload struct {
	ReservationID string `json:"reservationId"`
	UserID        string `json:"userId"`
	CompanyName   string `json:"companyName"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// ReminderQueue schedules reservation reminders on the asynq queue. It
// implements scheduling.ReminderScheduler.
type ReminderQueue struct {
	client *asynq.Client
}

// NewReminderQueue creates a queue client against the configured Redis.
func NewReminderQueue() *ReminderQueue {
	return &ReminderQueue{client: asynq.NewClient(redisOpts())}
}

// ScheduleReminder enqueues a reminder task due REMINDER_LEAD_MINUTES before
// the reservation's slot start. Reservations already inside the lead window
// get an immediate reminder.
func (q *ReminderQueue) ScheduleReminder(ctx context.Context, res *models.Reservation) error {
	payload, err := json.Marshal(ReminderPayload{
		ReservationID: res.ID,
		UserID:        res.UserID,
		CompanyName:   res.CompanyName,
		Date:          res.Date,
		StartTime:     res.StartTime,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	slotStart, err := time.ParseInLocation("2006-01-02 15:04", res.Date+" "+res.StartTime, time.Local)
	if err != nil {
		return fmt.Errorf("failed to parse slot start: %w", err)
	}
	fireAt := slotStart.Add(-time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute)
	if fireAt.Before(time.Now()) {
		fireAt = time.Now()
	}

	task := asynq.NewTask(TypeReminderSend, payload)
	if _, err := q.client.EnqueueContext(ctx, task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(repo reservationRepo.ReservationRepository) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSend, handleReminderTask(repo))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(repo reservationRepo.ReservationRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid reminder payload", zap.Error(err))
			return err
		}

		res, err := repo.GetByID(ctx, p.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrNotFound) {
				// Hard-deleted since booking; nothing to remind about.
				return nil
			}
			return fmt.Errorf("failed to fetch reservation %s: %w", p.ReservationID, err)
		}
		if res.Status == models.StatusCancelled || res.ReminderSent {
			return nil
		}

		// Delivery transport is out of scope here; the reminder event is
		// surfaced through the log stream.
		logger.Info("reservation reminder due",
			zap.String("reservationID", res.ID),
			zap.String("userID", res.UserID),
			zap.String("company", res.CompanyName),
			zap.String("date", res.Date),
			zap.String("startTime", res.StartTime),
		)

		res.ReminderSent = true
		res.UpdatedAt = time.Now()
		if err := repo.Update(ctx, res); err != nil {
			return fmt.Errorf("failed to mark reminder sent: %w", err)
		}
		return nil
	}
}
