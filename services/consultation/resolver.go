package consultation

import (
	"fmt"
	"sort"

	"edunex/models"
	"edunex/utils"
)

// SlotStrideMinutes is the fixed stride at which candidate start times are
// generated within a declared range.
const SlotStrideMinutes = 15

func isAllowedDuration(minutes int) bool {
	return minutes == 15 || minutes == 30
}

// ResolveSlots computes the bookable start times for a new session of the
// requested duration, given an instructor's declared availability for the day
// and the booked sessions already occupying it.
//
// A nil or blocked availability yields no slots; callers surface IsBlocked and
// DayNote separately. Candidates step through each declared range at a
// 15-minute stride as long as candidate+duration fits within the range, are
// deduplicated by start time (first range's note wins), lose to any overlap
// with a booked session, and finally pass a minimum-spacing filter so that the
// returned slots stay bookable back-to-back at the requested duration.
func ResolveSlots(avail *models.DayAvailability, booked []models.Session, requestedDuration int) ([]models.Slot, error) {
	if !isAllowedDuration(requestedDuration) {
		return nil, NewBookingError(CodeInvalidDuration,
			fmt.Sprintf("session duration must be 15 or 30 minutes, got %d", requestedDuration))
	}
	if avail == nil || avail.IsBlocked {
		return []models.Slot{}, nil
	}

	seen := make(map[int]bool)
	var candidates []models.Slot
	for _, tr := range avail.TimeRanges {
		if tr.Start >= tr.End {
			continue
		}
		for start := tr.Start; start+requestedDuration <= tr.End; start += SlotStrideMinutes {
			if seen[start] {
				continue
			}
			seen[start] = true
			candidates = append(candidates, models.Slot{
				Start:              start,
				TimeLabel:          utils.FormatClock(start),
				RangeNote:          tr.Note,
				MaxDurationMinutes: tr.End - start,
			})
		}
	}

	var free []models.Slot
	for _, cand := range candidates {
		if !overlapsAny(cand.Start, requestedDuration, booked) {
			free = append(free, cand)
		}
	}

	sort.Slice(free, func(i, j int) bool {
		return free[i].Start < free[j].Start
	})

	// Spacing filter: a candidate survives only if the previously kept slot
	// started at least requestedDuration earlier, so booking any returned
	// slot cannot invalidate another one.
	slots := make([]models.Slot, 0, len(free))
	for _, cand := range free {
		if n := len(slots); n > 0 && cand.Start-slots[n-1].Start < requestedDuration {
			continue
		}
		slots = append(slots, cand)
	}

	return slots, nil
}

// overlapsAny reports whether [start, start+duration) intersects any booked
// session, using half-open intervals so back-to-back bookings do not collide.
func overlapsAny(start, duration int, booked []models.Session) bool {
	end := start + duration
	for _, s := range booked {
		if s.Status != models.SessionStatusBooked {
			continue
		}
		if start < s.End() && s.Start < end {
			return true
		}
	}
	return false
}
