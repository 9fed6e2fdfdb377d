package models

import "time"

// Notification is an in-app notification record shown to a user. Delivery
// transports (email, push) are out of scope; records are written by the
// background worker and read back over the API.
type Notification struct {
	ID        string            `bson:"id" json:"id"`
	UserID    string            `bson:"userId" json:"userId"`
	Type      string            `bson:"type" json:"type"`
	Title     string            `bson:"title" json:"title"`
	Body      string            `bson:"body" json:"body"`
	Data      map[string]string `bson:"data,omitempty" json:"data,omitempty"`
	Read      bool              `bson:"read" json:"read"`
	CreatedAt time.Time         `bson:"createdAt" json:"createdAt"`
}

// SessionTaskPayload is the payload carried by queued session tasks
// (reminders and completion sweeps).
type SessionTaskPayload struct {
	SessionID    string `json:"sessionId"`
	InstructorID string `json:"instructorId"`
	StudentID    string `json:"studentId"`
	Date         string `json:"date"`
	TimeLabel    string `json:"timeLabel"`
}
