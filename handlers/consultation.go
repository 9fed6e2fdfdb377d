package handlers

import (
	"net/http"
	"strconv"
	"time"

	"edunex/models"
	"edunex/services/consultation"
	"edunex/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ConsultationHandler exposes consultation scheduling endpoints.
type ConsultationHandler struct {
	Svc    consultation.ConsultationService
	Logger *zap.Logger
}

// NewConsultationHandler constructs a ConsultationHandler.
func NewConsultationHandler(svc consultation.ConsultationService, logger *zap.Logger) *ConsultationHandler {
	return &ConsultationHandler{Svc: svc, Logger: logger}
}

// respondBookingError maps a service error to an HTTP rejection.
func respondBookingError(c *gin.Context, err error) {
	if be, ok := consultation.AsBookingError(err); ok {
		status := http.StatusBadRequest
		switch be.Code {
		case consultation.CodeSlotConflict, consultation.CodeOutsideAvailability:
			status = http.StatusConflict
		case consultation.CodeForbidden:
			status = http.StatusForbidden
		case consultation.CodeNotFound:
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": be.Message, "code": be.Code})
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "request failed", err.Error())
}

// GetAvailableSlots returns the bookable start times for an instructor's day.
func (h *ConsultationHandler) GetAvailableSlots(c *gin.Context) {
	instructorID := c.Param("id")
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}
	duration, err := strconv.Atoi(c.DefaultQuery("duration", "30"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "duration must be an integer"})
		return
	}

	day, err := h.Svc.GetAvailableSlots(c.Request.Context(), instructorID, date, duration)
	if err != nil {
		h.Logger.Warn("slot query rejected", zap.String("instructorID", instructorID), zap.Error(err))
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

// BookSession books a consultation for the authenticated student.
func (h *ConsultationHandler) BookSession(c *gin.Context) {
	studentID := c.GetString("userID")

	var req models.BookSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Svc.BookSession(c.Request.Context(), studentID, req)
	if err != nil {
		h.Logger.Warn("booking rejected",
			zap.String("studentID", studentID), zap.String("instructorID", req.InstructorID), zap.Error(err))
		respondBookingError(c, err)
		return
	}

	h.Logger.Info("session booked",
		zap.String("sessionID", session.ID),
		zap.String("instructorID", session.InstructorID),
		zap.String("date", session.Date))
	c.JSON(http.StatusCreated, gin.H{"session": session})
}

// CancelSession cancels a booked session for the student who booked it.
func (h *ConsultationHandler) CancelSession(c *gin.Context) {
	sessionID := c.Param("id")
	requesterID := c.GetString("userID")

	if err := h.Svc.CancelSession(c.Request.Context(), sessionID, requesterID, time.Now()); err != nil {
		h.Logger.Warn("cancellation rejected", zap.String("sessionID", sessionID), zap.Error(err))
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// ListSessions returns the caller's sessions, student or instructor side.
func (h *ConsultationHandler) ListSessions(c *gin.Context) {
	userID := c.GetString("userID")
	role := c.GetString("role")

	var (
		sessions []models.Session
		err      error
	)
	if role == "instructor" {
		sessions, err = h.Svc.ListInstructorSessions(c.Request.Context(), userID)
	} else {
		sessions, err = h.Svc.ListStudentSessions(c.Request.Context(), userID)
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list sessions", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// SetAvailability declares the authenticated instructor's schedule for a day.
func (h *ConsultationHandler) SetAvailability(c *gin.Context) {
	instructorID := c.GetString("userID")

	var req models.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	avail, err := h.Svc.SetAvailability(c.Request.Context(), instructorID, req)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": avail})
}

// GetAvailability returns the authenticated instructor's declared schedule.
func (h *ConsultationHandler) GetAvailability(c *gin.Context) {
	instructorID := c.GetString("userID")
	date := c.Param("date")

	avail, err := h.Svc.GetAvailability(c.Request.Context(), instructorID, date)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": avail})
}

// BlockDay toggles the blocked flag on a day of the instructor's schedule.
func (h *ConsultationHandler) BlockDay(c *gin.Context) {
	instructorID := c.GetString("userID")
	date := c.Param("date")

	var req models.BlockDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	avail, err := h.Svc.BlockDay(c.Request.Context(), instructorID, date, req.Blocked, req.DayNote)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": avail})
}
