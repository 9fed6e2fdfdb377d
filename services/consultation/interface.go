package consultation

import (
	"context"
	"time"

	"edunex/models"
)

// ConsultationService exposes the consultation scheduling operations: slot
// queries and bookings on the student side, availability management on the
// instructor side.
type ConsultationService interface {
	GetAvailableSlots(ctx context.Context, instructorID, date string, durationMinutes int) (*models.DaySlots, error)
	BookSession(ctx context.Context, studentID string, req models.BookSessionRequest) (*models.Session, error)
	CancelSession(ctx context.Context, sessionID, requesterID string, now time.Time) error
	ListStudentSessions(ctx context.Context, studentID string) ([]models.Session, error)
	ListInstructorSessions(ctx context.Context, instructorID string) ([]models.Session, error)

	SetAvailability(ctx context.Context, instructorID string, req models.SetAvailabilityRequest) (*models.DayAvailability, error)
	GetAvailability(ctx context.Context, instructorID, date string) (*models.DayAvailability, error)
	BlockDay(ctx context.Context, instructorID, date string, blocked bool, dayNote string) (*models.DayAvailability, error)
}
