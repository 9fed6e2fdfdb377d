package tasks

import (
	"context"
	"encoding/json"
	"time"

	"edunex/config"
	"edunex/models"
	"edunex/services/consultation"
	"edunex/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const (
	TypeSessionRemind   = "session:remind"
	TypeSessionComplete = "session:complete"
)

// SessionScheduler enqueues the follow-up work for a freshly booked session.
type SessionScheduler interface {
	ScheduleSessionTasks(ctx context.Context, session *models.Session) error
}

func NewRemindTask(payload models.SessionTaskPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSessionRemind, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

func NewCompleteTask(payload models.SessionTaskPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSessionComplete, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqScheduler schedules session tasks on the shared Redis queue.
type AsynqScheduler struct {
	Client *asynq.Client
}

// NewAsynqScheduler constructs a scheduler backed by the configured Redis queue.
func NewAsynqScheduler() *AsynqScheduler {
	return &AsynqScheduler{
		Client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		}),
	}
}

// ScheduleSessionTasks enqueues the reminder ahead of the session start and
// the completion sweep at the session end. Failures are logged, not fatal:
// the periodic sweep in the worker catches anything that slips through.
func (s *AsynqScheduler) ScheduleSessionTasks(ctx context.Context, session *models.Session) error {
	logger := utils.GetLogger()

	startAt, err := consultation.SessionStartTime(session, time.Local)
	if err != nil {
		return err
	}
	endAt := startAt.Add(time.Duration(session.DurationMinutes) * time.Minute)

	payload := models.SessionTaskPayload{
		SessionID:    session.ID,
		InstructorID: session.InstructorID,
		StudentID:    session.StudentID,
		Date:         session.Date,
		TimeLabel:    utils.FormatClock(session.Start),
	}

	remindAt := startAt.Add(-time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute)
	if remindAt.After(time.Now()) {
		task, opts, err := NewRemindTask(payload, remindAt)
		if err != nil {
			return err
		}
		if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
			logger.Warn("failed to enqueue session reminder",
				zap.String("sessionID", session.ID), zap.Error(err))
		}
	}

	task, opts, err := NewCompleteTask(payload, endAt)
	if err != nil {
		return err
	}
	if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
		logger.Warn("failed to enqueue session completion",
			zap.String("sessionID", session.ID), zap.Error(err))
	}

	return nil
}
