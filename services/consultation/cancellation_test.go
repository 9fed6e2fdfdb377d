package consultation

import (
	"testing"
	"time"

	"edunex/models"
)

func TestSessionStartTime(t *testing.T) {
	session := &models.Session{Date: "2025-03-10", Start: 570}

	startAt, err := SessionStartTime(session, time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	if !startAt.Equal(want) {
		t.Fatalf("start = %v, want %v", startAt, want)
	}
}

func TestCanCancel(t *testing.T) {
	// Session starts 2025-03-10 at 09:30 UTC.
	session := func(status string) *models.Session {
		return &models.Session{
			Date:            "2025-03-10",
			Start:           570,
			DurationMinutes: 30,
			Status:          status,
		}
	}
	start := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		session *models.Session
		now     time.Time
		want    bool
	}{
		{"well ahead of start", session(models.SessionStatusBooked), start.Add(-48 * time.Hour), true},
		{"exactly twelve hours ahead", session(models.SessionStatusBooked), start.Add(-12 * time.Hour), true},
		{"just under twelve hours", session(models.SessionStatusBooked), start.Add(-12*time.Hour + time.Minute), false},
		{"after start", session(models.SessionStatusBooked), start.Add(time.Hour), false},
		{"already cancelled", session(models.SessionStatusCancelled), start.Add(-48 * time.Hour), false},
		{"already completed", session(models.SessionStatusCompleted), start.Add(-48 * time.Hour), false},
		{"nil session", nil, start.Add(-48 * time.Hour), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanCancel(tc.session, tc.now); got != tc.want {
				t.Fatalf("CanCancel = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCanCancel_BadDate(t *testing.T) {
	session := &models.Session{
		Date:   "not-a-date",
		Start:  570,
		Status: models.SessionStatusBooked,
	}
	if CanCancel(session, time.Now()) {
		t.Fatal("session with unparseable date should not be cancellable")
	}
}
