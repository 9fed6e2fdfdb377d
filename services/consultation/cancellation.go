package consultation

import (
	"time"

	"edunex/models"
)

// MinCancellationLead is how far ahead of the session start a student may
// still cancel.
const MinCancellationLead = 12 * time.Hour

// SessionStartTime resolves a session's date and start minutes to an absolute
// time in the given location.
func SessionStartTime(session *models.Session, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation(dateLayout, session.Date, loc)
	if err != nil {
		return time.Time{}, err
	}
	return day.Add(time.Duration(session.Start) * time.Minute), nil
}

// CanCancel reports whether a session may still be cancelled at now: the
// session must be booked and its start at least MinCancellationLead away.
func CanCancel(session *models.Session, now time.Time) bool {
	if session == nil || session.Status != models.SessionStatusBooked {
		return false
	}
	startAt, err := SessionStartTime(session, now.Location())
	if err != nil {
		return false
	}
	return startAt.Sub(now) >= MinCancellationLead
}
