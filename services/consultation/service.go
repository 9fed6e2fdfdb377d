package consultation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	availabilityRepo "edunex/database/repository/availability"
	sessionRepo "edunex/database/repository/session"
	"edunex/models"
	"edunex/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SessionScheduler enqueues follow-up work (reminders, completion) for a
// freshly booked session. Mirrors tasks.SessionScheduler; declared here so the
// service does not depend on the queue package.
type SessionScheduler interface {
	ScheduleSessionTasks(ctx context.Context, session *models.Session) error
}

// DefaultConsultationService is the production consultation scheduler.
type DefaultConsultationService struct {
	AvailabilityRepo availabilityRepo.AvailabilityRepository
	SessionRepo      sessionRepo.SessionRepository
	Tasks            SessionScheduler
	Cache            *redis.Client
	HorizonDays      int
}

func (svc *DefaultConsultationService) GetAvailableSlots(ctx context.Context, instructorID, date string, durationMinutes int) (*models.DaySlots, error) {
	logger := utils.GetLogger()

	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, NewBookingError(CodeInvalidInput, fmt.Sprintf("invalid date %q", date))
	}

	cacheKey := slotCacheKey(instructorID, date, durationMinutes)
	if svc.Cache != nil {
		if cached, err := svc.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var day models.DaySlots
			if err := json.Unmarshal([]byte(cached), &day); err == nil {
				return &day, nil
			}
		} else if err != redis.Nil {
			logger.Warn("slot cache read failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	avail, err := svc.AvailabilityRepo.GetByInstructorAndDate(ctx, instructorID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability: %w", err)
	}
	booked, err := svc.SessionRepo.GetBookedByInstructorAndDate(ctx, instructorID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booked sessions: %w", err)
	}

	slots, err := ResolveSlots(avail, booked, durationMinutes)
	if err != nil {
		return nil, err
	}

	day := &models.DaySlots{Slots: slots}
	if avail != nil {
		day.DayNote = avail.DayNote
		day.IsBlocked = avail.IsBlocked
	}

	if svc.Cache != nil {
		if data, err := json.Marshal(day); err == nil {
			if err := svc.Cache.Set(ctx, cacheKey, data, utils.SlotCacheTTL).Err(); err != nil {
				logger.Warn("slot cache write failed", zap.String("key", cacheKey), zap.Error(err))
			}
		}
	}

	return day, nil
}

func (svc *DefaultConsultationService) BookSession(ctx context.Context, studentID string, req models.BookSessionRequest) (*models.Session, error) {
	logger := utils.GetLogger()

	start, err := utils.ParseClock(req.StartTime)
	if err != nil {
		return nil, NewBookingError(CodeInvalidInput, err.Error())
	}

	avail, err := svc.AvailabilityRepo.GetByInstructorAndDate(ctx, req.InstructorID, req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability: %w", err)
	}
	existing, err := svc.SessionRepo.GetBookedByInstructorAndDate(ctx, req.InstructorID, req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booked sessions: %w", err)
	}

	if err := ValidateBooking(req.Date, start, req.DurationMinutes, avail, existing, time.Now(), svc.HorizonDays); err != nil {
		return nil, err
	}

	session := &models.Session{
		InstructorID:    req.InstructorID,
		StudentID:       studentID,
		CourseID:        req.CourseID,
		Date:            req.Date,
		Start:           start,
		DurationMinutes: req.DurationMinutes,
		Status:          models.SessionStatusBooked,
		StudentNote:     req.StudentNote,
	}
	if err := svc.SessionRepo.Create(ctx, session); err != nil {
		if err == sessionRepo.ErrSlotTaken {
			// Lost the race to a concurrent booking for the same start time.
			return nil, NewBookingError(CodeSlotConflict, "requested time was just booked by someone else")
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	svc.invalidateSlotCache(ctx, req.InstructorID, req.Date)

	if svc.Tasks != nil {
		if err := svc.Tasks.ScheduleSessionTasks(ctx, session); err != nil {
			logger.Warn("failed to schedule session tasks",
				zap.String("sessionID", session.ID), zap.Error(err))
		}
	}

	return session, nil
}

func (svc *DefaultConsultationService) CancelSession(ctx context.Context, sessionID, requesterID string, now time.Time) error {
	session, err := svc.SessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to fetch session: %w", err)
	}
	if session == nil {
		return NewBookingError(CodeNotFound, "session not found")
	}
	if session.StudentID != requesterID {
		return NewBookingError(CodeForbidden, "only the student who booked the session may cancel it")
	}
	if !CanCancel(session, now) {
		return NewBookingError(CodeForbidden, "sessions can only be cancelled at least 12 hours before the start")
	}

	if err := svc.SessionRepo.UpdateStatus(ctx, sessionID, models.SessionStatusBooked, models.SessionStatusCancelled); err != nil {
		return fmt.Errorf("failed to cancel session: %w", err)
	}

	svc.invalidateSlotCache(ctx, session.InstructorID, session.Date)
	return nil
}

func (svc *DefaultConsultationService) ListStudentSessions(ctx context.Context, studentID string) ([]models.Session, error) {
	return svc.SessionRepo.ListByStudent(ctx, studentID)
}

func (svc *DefaultConsultationService) ListInstructorSessions(ctx context.Context, instructorID string) ([]models.Session, error) {
	return svc.SessionRepo.ListByInstructor(ctx, instructorID)
}

func (svc *DefaultConsultationService) SetAvailability(ctx context.Context, instructorID string, req models.SetAvailabilityRequest) (*models.DayAvailability, error) {
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return nil, NewBookingError(CodeInvalidInput, fmt.Sprintf("invalid date %q", req.Date))
	}

	ranges := make([]models.TimeRange, 0, len(req.TimeRanges))
	for i, tr := range req.TimeRanges {
		start, err := utils.ParseClock(tr.StartTime)
		if err != nil {
			return nil, NewBookingError(CodeInvalidInput, fmt.Sprintf("range %d: %v", i+1, err))
		}
		end, err := utils.ParseClock(tr.EndTime)
		if err != nil {
			return nil, NewBookingError(CodeInvalidInput, fmt.Sprintf("range %d: %v", i+1, err))
		}
		if start >= end {
			return nil, NewBookingError(CodeInvalidInput,
				fmt.Sprintf("range %d: start %s must be before end %s", i+1, tr.StartTime, tr.EndTime))
		}
		ranges = append(ranges, models.TimeRange{Start: start, End: end, Note: tr.Note})
	}

	avail := &models.DayAvailability{
		InstructorID: instructorID,
		Date:         req.Date,
		TimeRanges:   ranges,
		DayNote:      req.DayNote,
	}
	if err := svc.AvailabilityRepo.Upsert(ctx, avail); err != nil {
		return nil, fmt.Errorf("failed to save availability: %w", err)
	}

	svc.invalidateSlotCache(ctx, instructorID, req.Date)
	return avail, nil
}

func (svc *DefaultConsultationService) GetAvailability(ctx context.Context, instructorID, date string) (*models.DayAvailability, error) {
	avail, err := svc.AvailabilityRepo.GetByInstructorAndDate(ctx, instructorID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability: %w", err)
	}
	if avail == nil {
		return nil, NewBookingError(CodeNotFound, "no availability declared for this day")
	}
	return avail, nil
}

func (svc *DefaultConsultationService) BlockDay(ctx context.Context, instructorID, date string, blocked bool, dayNote string) (*models.DayAvailability, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, NewBookingError(CodeInvalidInput, fmt.Sprintf("invalid date %q", date))
	}

	if err := svc.AvailabilityRepo.SetBlocked(ctx, instructorID, date, blocked, dayNote); err != nil {
		return nil, fmt.Errorf("failed to update blocked state: %w", err)
	}

	svc.invalidateSlotCache(ctx, instructorID, date)
	return svc.AvailabilityRepo.GetByInstructorAndDate(ctx, instructorID, date)
}

func slotCacheKey(instructorID, date string, duration int) string {
	return fmt.Sprintf("%s%s:%s:%d", utils.SlotCachePrefix, instructorID, date, duration)
}

// invalidateSlotCache drops cached slot lists for both supported durations.
func (svc *DefaultConsultationService) invalidateSlotCache(ctx context.Context, instructorID, date string) {
	if svc.Cache == nil {
		return
	}
	keys := []string{
		slotCacheKey(instructorID, date, 15),
		slotCacheKey(instructorID, date, 30),
	}
	if err := svc.Cache.Del(ctx, keys...).Err(); err != nil {
		utils.GetLogger().Warn("slot cache invalidation failed",
			zap.String("instructorID", instructorID), zap.String("date", date), zap.Error(err))
	}
}
