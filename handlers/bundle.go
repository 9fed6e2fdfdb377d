// File: edunex/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Consultation endpoints
	GetAvailableSlots gin.HandlerFunc
	BookSession       gin.HandlerFunc
	CancelSession     gin.HandlerFunc
	ListSessions      gin.HandlerFunc
	SetAvailability   gin.HandlerFunc
	GetAvailability   gin.HandlerFunc
	BlockDay          gin.HandlerFunc

	// Course endpoints
	CreateCourse   gin.HandlerFunc
	ListCourses    gin.HandlerFunc
	GetCourse      gin.HandlerFunc
	AddLesson      gin.HandlerFunc
	Enroll         gin.HandlerFunc
	GetProgress    gin.HandlerFunc
	CompleteLesson gin.HandlerFunc

	// Notification endpoints
	ListNotifications    gin.HandlerFunc
	MarkNotificationRead gin.HandlerFunc
}
