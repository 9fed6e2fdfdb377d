package models

// Slot is a candidate session start time, valid for a specific duration,
// derived from a day's availability minus booked sessions.
type Slot struct {
	Start              int    `json:"start"`     // minutes from midnight
	TimeLabel          string `json:"timeLabel"` // "HH:MM"
	RangeNote          string `json:"rangeNote,omitempty"`
	MaxDurationMinutes int    `json:"maxDurationMinutes"` // room left in the range; lets a client widen duration
}

// DaySlots is the externally visible result of a slot query. DayNote and
// IsBlocked are surfaced for display even when no slots exist.
type DaySlots struct {
	Slots     []Slot `json:"slots"`
	DayNote   string `json:"dayNote,omitempty"`
	IsBlocked bool   `json:"isBlocked"`
}
