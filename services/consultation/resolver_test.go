package consultation

import (
	"testing"

	"edunex/models"
)

func day(ranges ...models.TimeRange) *models.DayAvailability {
	return &models.DayAvailability{
		ID:           "avail-1",
		InstructorID: "instr-1",
		Date:         "2025-03-10",
		TimeRanges:   ranges,
	}
}

func booked(start, duration int) models.Session {
	return models.Session{
		ID:              "sess",
		InstructorID:    "instr-1",
		Date:            "2025-03-10",
		Start:           start,
		DurationMinutes: duration,
		Status:          models.SessionStatusBooked,
	}
}

func labels(slots []models.Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.TimeLabel
	}
	return out
}

func equalLabels(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestResolveSlots_SingleRangeThirtyMinutes(t *testing.T) {
	// 09:00-10:00, no bookings, 30-minute sessions: last start is 09:30.
	avail := day(models.TimeRange{Start: 540, End: 600})

	slots, err := ResolveSlots(avail, nil, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"09:00", "09:30"}
	if !equalLabels(labels(slots), want) {
		t.Fatalf("slots = %v, want %v", labels(slots), want)
	}
	if slots[0].MaxDurationMinutes != 60 || slots[1].MaxDurationMinutes != 30 {
		t.Fatalf("max durations = %d, %d; want 60, 30",
			slots[0].MaxDurationMinutes, slots[1].MaxDurationMinutes)
	}
}

func TestResolveSlots_ConflictRemoval(t *testing.T) {
	// 09:00-10:00 with 09:15 booked for 15 minutes, 15-minute sessions.
	avail := day(models.TimeRange{Start: 540, End: 600})
	sessions := []models.Session{booked(555, 15)}

	slots, err := ResolveSlots(avail, sessions, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"09:00", "09:30", "09:45"}
	if !equalLabels(labels(slots), want) {
		t.Fatalf("slots = %v, want %v", labels(slots), want)
	}
}

func TestResolveSlots_BlockedDay(t *testing.T) {
	avail := day(models.TimeRange{Start: 540, End: 600})
	avail.IsBlocked = true

	slots, err := ResolveSlots(avail, nil, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("blocked day produced slots: %v", labels(slots))
	}
}

func TestResolveSlots_AbsentAvailability(t *testing.T) {
	slots, err := ResolveSlots(nil, nil, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("absent availability produced slots: %v", labels(slots))
	}
}

func TestResolveSlots_InvalidDuration(t *testing.T) {
	avail := day(models.TimeRange{Start: 540, End: 600})

	for _, duration := range []int{0, -15, 10, 20, 45, 60} {
		_, err := ResolveSlots(avail, nil, duration)
		be, ok := AsBookingError(err)
		if !ok || be.Code != CodeInvalidDuration {
			t.Errorf("duration %d: expected %s error, got %v", duration, CodeInvalidDuration, err)
		}
	}
}

func TestResolveSlots_OverlappingRangesDeduped(t *testing.T) {
	// Two overlapping ranges must not emit duplicate start times; the first
	// range's note wins for shared starts.
	avail := day(
		models.TimeRange{Start: 540, End: 600, Note: "morning"},
		models.TimeRange{Start: 570, End: 630, Note: "late morning"},
	)

	slots, err := ResolveSlots(avail, nil, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := map[string]bool{}
	for _, s := range slots {
		if seen[s.TimeLabel] {
			t.Fatalf("duplicate slot %s", s.TimeLabel)
		}
		seen[s.TimeLabel] = true
	}

	want := []string{"09:00", "09:30", "10:00"}
	if !equalLabels(labels(slots), want) {
		t.Fatalf("slots = %v, want %v", labels(slots), want)
	}
	if slots[1].RangeNote != "morning" {
		t.Fatalf("shared start note = %q, want first range's %q", slots[1].RangeNote, "morning")
	}
}

func TestResolveSlots_UnsortedRanges(t *testing.T) {
	avail := day(
		models.TimeRange{Start: 840, End: 900}, // 14:00-15:00
		models.TimeRange{Start: 540, End: 600}, // 09:00-10:00
	)

	slots, err := ResolveSlots(avail, nil, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"09:00", "09:30", "14:00", "14:30"}
	if !equalLabels(labels(slots), want) {
		t.Fatalf("slots = %v, want %v", labels(slots), want)
	}
}

func TestResolveSlots_IgnoresNonBookedSessions(t *testing.T) {
	avail := day(models.TimeRange{Start: 540, End: 600})

	cancelled := booked(540, 30)
	cancelled.Status = models.SessionStatusCancelled
	completed := booked(570, 30)
	completed.Status = models.SessionStatusCompleted

	slots, err := ResolveSlots(avail, []models.Session{cancelled, completed}, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"09:00", "09:30"}
	if !equalLabels(labels(slots), want) {
		t.Fatalf("slots = %v, want %v", labels(slots), want)
	}
}

func TestResolveSlots_Invariants(t *testing.T) {
	avail := day(
		models.TimeRange{Start: 540, End: 660},  // 09:00-11:00
		models.TimeRange{Start: 600, End: 720},  // 10:00-12:00
		models.TimeRange{Start: 900, End: 1000}, // 15:00-16:40
	)
	sessions := []models.Session{
		booked(570, 30),
		booked(630, 15),
		booked(915, 30),
	}

	for _, duration := range []int{15, 30} {
		slots, err := ResolveSlots(avail, sessions, duration)
		if err != nil {
			t.Fatalf("duration %d: unexpected error: %v", duration, err)
		}

		for i, s := range slots {
			// Every slot fits within its originating range.
			if s.MaxDurationMinutes < duration {
				t.Errorf("duration %d: slot %s has max %d below requested duration",
					duration, s.TimeLabel, s.MaxDurationMinutes)
			}
			// Slots are sorted and spaced at least the duration apart.
			if i > 0 {
				if s.Start <= slots[i-1].Start {
					t.Errorf("duration %d: slots out of order at %s", duration, s.TimeLabel)
				}
				if s.Start-slots[i-1].Start < duration {
					t.Errorf("duration %d: slots %s and %s closer than %d minutes",
						duration, slots[i-1].TimeLabel, s.TimeLabel, duration)
				}
			}
			// No slot overlaps a booked session.
			for _, b := range sessions {
				if s.Start < b.End() && b.Start < s.Start+duration {
					t.Errorf("duration %d: slot %s overlaps booked session at %d",
						duration, s.TimeLabel, b.Start)
				}
			}
		}
	}
}

func TestResolveSlots_FullyBookedDay(t *testing.T) {
	avail := day(models.TimeRange{Start: 540, End: 600})
	sessions := []models.Session{booked(540, 30), booked(570, 30)}

	slots, err := ResolveSlots(avail, sessions, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("fully booked day produced slots: %v", labels(slots))
	}
}
