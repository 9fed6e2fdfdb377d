package models

import "time"

// Session status values. Only booked sessions occupy time on the calendar.
const (
	SessionStatusBooked    = "booked"
	SessionStatusCompleted = "completed"
	SessionStatusCancelled = "cancelled"
)

// Session represents a booked consultation between one student and one
// instructor at a specific date/time/duration.
type Session struct {
	ID              string    `bson:"id" json:"id"`
	InstructorID    string    `bson:"instructorId" json:"instructorId"`
	StudentID       string    `bson:"studentId" json:"studentId"`
	CourseID        string    `bson:"courseId" json:"courseId"`
	Date            string    `bson:"date" json:"date"`   // "YYYY-MM-DD"
	Start           int       `bson:"start" json:"start"` // minutes from midnight
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes"`
	Status          string    `bson:"status" json:"status"`
	StudentNote     string    `bson:"studentNote,omitempty" json:"studentNote,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}

// End returns the session's end in minutes from midnight (exclusive).
func (s Session) End() int {
	return s.Start + s.DurationMinutes
}

// BookSessionRequest defines the payload for booking a consultation.
type BookSessionRequest struct {
	InstructorID    string `json:"instructorId" binding:"required"`
	CourseID        string `json:"courseId"`
	Date            string `json:"date" binding:"required"`
	StartTime       string `json:"startTime" binding:"required"` // "HH:MM"
	DurationMinutes int    `json:"durationMinutes" binding:"required"`
	StudentNote     string `json:"studentNote"`
}
