package models

import "time"

// TimeRange represents one declared bookable window within a day.
// Start and End are minutes from midnight (e.g., 540 for 9:00 AM); ranges are
// stored as given and may overlap or arrive unsorted.
type TimeRange struct {
	Start int    `bson:"start" json:"start"`
	End   int    `bson:"end" json:"end"`
	Note  string `bson:"note,omitempty" json:"note,omitempty"`
}

// DayAvailability is an instructor's declared schedule for one calendar day.
// One document per (instructorId, date).
type DayAvailability struct {
	ID           string      `bson:"id" json:"id"`
	InstructorID string      `bson:"instructorId" json:"instructorId"`
	Date         string      `bson:"date" json:"date"` // e.g., "2025-02-25"
	TimeRanges   []TimeRange `bson:"timeRanges" json:"timeRanges"`
	IsBlocked    bool        `bson:"isBlocked" json:"isBlocked"`
	DayNote      string      `bson:"dayNote,omitempty" json:"dayNote,omitempty"`
	UpdatedAt    time.Time   `bson:"updatedAt" json:"updatedAt"`
}

// TimeRangeInput carries a single range on the wire as "HH:MM" clock strings.
type TimeRangeInput struct {
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
	Note      string `json:"note"`
}

// SetAvailabilityRequest defines the payload for declaring a day's schedule.
type SetAvailabilityRequest struct {
	Date       string           `json:"date" binding:"required"`
	TimeRanges []TimeRangeInput `json:"timeRanges" binding:"required"`
	DayNote    string           `json:"dayNote"`
}

// BlockDayRequest toggles the blocked flag on a day.
type BlockDayRequest struct {
	Blocked bool   `json:"blocked"`
	DayNote string `json:"dayNote"`
}
