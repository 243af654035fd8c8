package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"roomly/config"
	"roomly/models"
	"roomly/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeReminderSend = "reminder:send"

// ReminderPayload is the task body for a booking reminder.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	UserID    string `json:"userId"`
	RoomID    string `json:"roomId"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	Start     int    `json:"start"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// Scheduler enqueues reminder tasks for bookings. It implements the booking
// service's ReminderScheduler interface.
type Scheduler struct {
	client *asynq.Client
}

// NewScheduler creates a reminder scheduler backed by the asynq queue.
func NewScheduler() *Scheduler {
	return &Scheduler{client: asynq.NewClient(redisOpts())}
}

// ScheduleReminder enqueues a reminder to fire shortly before the booking
// starts. Bookings already underway or in the past are not scheduled.
func (s *Scheduler) ScheduleReminder(ctx context.Context, booking models.Booking) error {
	date, err := time.ParseInLocation(models.DateLayout, booking.Date, time.Local)
	if err != nil {
		return fmt.Errorf("invalid booking date %q: %w", booking.Date, err)
	}
	startAt := date.Add(time.Duration(booking.Start) * time.Minute)
	fireAt := startAt.Add(-time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload, err := json.Marshal(ReminderPayload{
		BookingID: booking.ID,
		UserID:    booking.UserID,
		RoomID:    booking.RoomID,
		Title:     booking.Title,
		Date:      booking.Date,
		Start:     booking.Start,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeReminderSend, payload)
	if _, err := s.client.EnqueueContext(ctx, task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder for booking %s: %w", booking.ID, err)
	}
	return nil
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker() {
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
	mux.HandleFunc(TypeReminderSend, handleReminderTask)

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(ctx context.Context, task *asynq.Task) error {
	var p ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		log.Printf("[ReminderHandler] Invalid payload: %v", err)
		return err
	}

	log.Printf("[ReminderHandler] Triggering reminder for booking %s (%s %s)", p.BookingID, p.Date, p.Title)

	if utils.FCMClient == nil {
		log.Printf("[ReminderHandler] FCM client not configured; skipping push for booking %s", p.BookingID)
		return nil
	}

	msg := &messaging.Message{
		Topic: "user-" + p.UserID,
		Notification: &messaging.Notification{
			Title: "Upcoming booking: " + p.Title,
			Body:  fmt.Sprintf("Your room booking starts at %02d:%02d on %s.", p.Start/60, p.Start%60, p.Date),
		},
		Data: map[string]string{
			"bookingId": p.BookingID,
			"roomId":    p.RoomID,
			"date":      p.Date,
		},
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		log.Printf("[ReminderHandler] Failed to send notification: %v", err)
		return err
	}
	return nil
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
