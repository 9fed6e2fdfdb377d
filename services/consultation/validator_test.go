package consultation

import (
	"testing"
	"time"

	"edunex/models"
)

func validateAt(t *testing.T, date string, start, duration int, avail *models.DayAvailability, existing []models.Session) error {
	t.Helper()
	now := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	return ValidateBooking(date, start, duration, avail, existing, now, 30)
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	be, ok := AsBookingError(err)
	if !ok {
		t.Fatalf("expected booking error with code %s, got %v", code, err)
	}
	if be.Code != code {
		t.Fatalf("error code = %s, want %s", be.Code, code)
	}
}

func TestValidateBooking_Accepts(t *testing.T) {
	avail := day(models.TimeRange{Start: 540, End: 600})

	tests := []struct {
		name     string
		start    int
		duration int
	}{
		{"at range start", 540, 30},
		{"flush against range end", 570, 30},
		{"short session mid range", 555, 15},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := validateAt(t, "2025-03-10", tc.start, tc.duration, avail, nil); err != nil {
				t.Fatalf("unexpected rejection: %v", err)
			}
		})
	}
}

func TestValidateBooking_Rejections(t *testing.T) {
	avail := day(models.TimeRange{Start: 540, End: 600})
	blocked := day(models.TimeRange{Start: 540, End: 600})
	blocked.IsBlocked = true
	existing := []models.Session{booked(555, 15)}

	tests := []struct {
		name     string
		date     string
		start    int
		duration int
		avail    *models.DayAvailability
		existing []models.Session
		code     string
	}{
		{"zero duration", "2025-03-10", 540, 0, avail, nil, CodeInvalidDuration},
		{"disallowed duration", "2025-03-10", 540, 45, avail, nil, CodeInvalidDuration},
		{"no availability for day", "2025-03-10", 540, 30, nil, nil, CodeOutsideAvailability},
		{"day blocked", "2025-03-10", 540, 30, blocked, nil, CodeOutsideAvailability},
		{"starts before range", "2025-03-10", 525, 30, avail, nil, CodeOutsideAvailability},
		{"runs past range end", "2025-03-10", 585, 30, avail, nil, CodeOutsideAvailability},
		{"overlaps existing session", "2025-03-10", 555, 15, avail, existing, CodeSlotConflict},
		{"straddles existing session", "2025-03-10", 545, 15, avail, existing, CodeSlotConflict},
		{"unparseable date", "03/10/2025", 540, 30, avail, nil, CodeDateOutOfWindow},
		{"date in the past", "2025-02-28", 540, 30, avail, nil, CodeDateOutOfWindow},
		{"date beyond horizon", "2025-04-01", 540, 30, avail, nil, CodeDateOutOfWindow},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validateAt(t, tc.date, tc.start, tc.duration, tc.avail, tc.existing)
			assertCode(t, err, tc.code)
		})
	}
}

func TestValidateBooking_CheckOrder(t *testing.T) {
	// When several checks would fail, the earlier check's code wins.
	blocked := day(models.TimeRange{Start: 540, End: 600})
	blocked.IsBlocked = true
	existing := []models.Session{booked(540, 30)}

	t.Run("duration before availability", func(t *testing.T) {
		err := validateAt(t, "2025-03-10", 540, 45, blocked, existing)
		assertCode(t, err, CodeInvalidDuration)
	})

	t.Run("availability before conflict", func(t *testing.T) {
		err := validateAt(t, "2025-03-10", 540, 30, blocked, existing)
		assertCode(t, err, CodeOutsideAvailability)
	})

	t.Run("conflict before window", func(t *testing.T) {
		avail := day(models.TimeRange{Start: 540, End: 600})
		err := validateAt(t, "2025-06-01", 540, 30, avail, existing)
		assertCode(t, err, CodeSlotConflict)
	})
}

func TestValidateBooking_WindowBoundaries(t *testing.T) {
	avail := day(models.TimeRange{Start: 540, End: 600})

	t.Run("today is allowed", func(t *testing.T) {
		if err := validateAt(t, "2025-03-01", 540, 30, avail, nil); err != nil {
			t.Fatalf("unexpected rejection: %v", err)
		}
	})

	t.Run("last day of horizon is allowed", func(t *testing.T) {
		if err := validateAt(t, "2025-03-31", 540, 30, avail, nil); err != nil {
			t.Fatalf("unexpected rejection: %v", err)
		}
	})
}
