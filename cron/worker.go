package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"edunex/config"
	notificationRepo "edunex/database/repository/notification"
	sessionRepo "edunex/database/repository/session"
	"edunex/models"
	"edunex/services/tasks"
	"edunex/utils"

	"github.com/hibiken/asynq"
)

// InitSessionWorker runs the async worker in background. It handles queued
// session reminders and completion tasks, and sweeps for elapsed sessions the
// queue may have missed.
func InitSessionWorker(sessions sessionRepo.SessionRepository, notifications notificationRepo.NotificationRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSessionRemind, handleRemindTask(notifications))
	mux.HandleFunc(tasks.TypeSessionComplete, handleCompleteTask(sessions))

	// Catch sessions whose completion task was never delivered.
	go sweepElapsedSessions(sessions)

	go func() {
		log.Println("[SessionWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[SessionWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[SessionWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleRemindTask(notifications notificationRepo.NotificationRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.SessionTaskPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[SessionWorker] Invalid reminder payload: %v", err)
			return err
		}

		data := map[string]string{
			"sessionId": p.SessionID,
			"date":      p.Date,
			"time":      p.TimeLabel,
		}

		for userID, body := range map[string]string{
			p.StudentID:    "Your consultation starts at " + p.TimeLabel + " on " + p.Date + ".",
			p.InstructorID: "You have a consultation at " + p.TimeLabel + " on " + p.Date + ".",
		} {
			notification := &models.Notification{
				UserID: userID,
				Type:   "session_reminder",
				Title:  "Upcoming consultation",
				Body:   body,
				Data:   data,
			}
			if err := notifications.Create(ctx, notification); err != nil {
				log.Printf("[SessionWorker] Failed to write reminder for %s: %v", userID, err)
				return err
			}
		}
		return nil
	}
}

func handleCompleteTask(sessions sessionRepo.SessionRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.SessionTaskPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[SessionWorker] Invalid completion payload: %v", err)
			return err
		}

		err := sessions.UpdateStatus(ctx, p.SessionID, models.SessionStatusBooked, models.SessionStatusCompleted)
		if err != nil {
			// Already cancelled or completed; nothing to do.
			log.Printf("[SessionWorker] Session %s not completed: %v", p.SessionID, err)
		}
		return nil
	}
}

// sweepElapsedSessions periodically flips booked sessions whose end time has
// passed to completed.
func sweepElapsedSessions(sessions sessionRepo.SessionRepository) {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	ctx := context.Background()

	for range ticker.C {
		now := time.Now()
		today := now.Format("2006-01-02")
		nowMinutes := now.Hour()*60 + now.Minute()

		elapsed, err := sessions.FindElapsedBooked(ctx, today, nowMinutes)
		if err != nil {
			log.Printf("[SessionWorker] Sweep query failed: %v", err)
			continue
		}
		for _, s := range elapsed {
			if err := sessions.UpdateStatus(ctx, s.ID, models.SessionStatusBooked, models.SessionStatusCompleted); err != nil {
				log.Printf("[SessionWorker] Sweep failed to complete session %s: %v", s.ID, err)
			}
		}
		if len(elapsed) > 0 {
			utils.GetLogger().Sugar().Infof("completed %d elapsed sessions", len(elapsed))
		}
	}
}
