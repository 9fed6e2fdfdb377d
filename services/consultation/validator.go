package consultation

import (
	"fmt"
	"time"

	"edunex/models"
)

const dateLayout = "2006-01-02"

// ValidateBooking checks a booking request against the instructor's declared
// availability, existing booked sessions, and the booking horizon. Checks run
// in a fixed order; the first failure wins.
func ValidateBooking(
	date string,
	start, duration int,
	avail *models.DayAvailability,
	existing []models.Session,
	now time.Time,
	horizonDays int,
) error {
	if !isAllowedDuration(duration) {
		return NewBookingError(CodeInvalidDuration,
			fmt.Sprintf("session duration must be 15 or 30 minutes, got %d", duration))
	}

	if avail == nil || avail.IsBlocked {
		return NewBookingError(CodeOutsideAvailability, "instructor is not available on this day")
	}
	covered := false
	for _, tr := range avail.TimeRanges {
		if start >= tr.Start && start+duration <= tr.End {
			covered = true
			break
		}
	}
	if !covered {
		return NewBookingError(CodeOutsideAvailability, "requested time falls outside the instructor's availability")
	}

	if overlapsAny(start, duration, existing) {
		return NewBookingError(CodeSlotConflict, "requested time conflicts with an existing session")
	}

	if _, err := time.Parse(dateLayout, date); err != nil {
		return NewBookingError(CodeDateOutOfWindow, fmt.Sprintf("invalid date %q", date))
	}
	today := now.Format(dateLayout)
	horizonEnd := now.AddDate(0, 0, horizonDays).Format(dateLayout)
	if date < today || date > horizonEnd {
		return NewBookingError(CodeDateOutOfWindow,
			fmt.Sprintf("date must be between %s and %s", today, horizonEnd))
	}

	return nil
}
