package handlers

import (
	"net/http"

	"edunex/models"
	"edunex/services/course"
	"edunex/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CourseHandler exposes course, lesson and enrollment endpoints.
type CourseHandler struct {
	Svc    course.CourseService
	Logger *zap.Logger
}

// NewCourseHandler constructs a CourseHandler.
func NewCourseHandler(svc course.CourseService, logger *zap.Logger) *CourseHandler {
	return &CourseHandler{Svc: svc, Logger: logger}
}

func respondCourseError(c *gin.Context, err error) {
	if ce, ok := course.AsCourseError(err); ok {
		status := http.StatusBadRequest
		switch ce.Code {
		case course.CodeNotFound:
			status = http.StatusNotFound
		case course.CodeForbidden:
			status = http.StatusForbidden
		case course.CodeLessonLocked, course.CodeAlreadyEnrolled:
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": ce.Message, "code": ce.Code})
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "request failed", err.Error())
}

// CreateCourse creates a course owned by the authenticated instructor.
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	instructorID := c.GetString("userID")

	var req models.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Svc.CreateCourse(c.Request.Context(), instructorID, req)
	if err != nil {
		respondCourseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"course": created})
}

// ListCourses returns the course catalogue.
func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.Svc.ListCourses(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list courses", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": courses})
}

// GetCourse returns one course with its lessons.
func (h *CourseHandler) GetCourse(c *gin.Context) {
	found, err := h.Svc.GetCourse(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondCourseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"course": found})
}

// AddLesson appends a lesson to a course owned by the caller.
func (h *CourseHandler) AddLesson(c *gin.Context) {
	instructorID := c.GetString("userID")

	var req models.AddLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	lesson, err := h.Svc.AddLesson(c.Request.Context(), instructorID, c.Param("id"), req)
	if err != nil {
		respondCourseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"lesson": lesson})
}

// Enroll enrolls the authenticated student in a course.
func (h *CourseHandler) Enroll(c *gin.Context) {
	studentID := c.GetString("userID")

	enrollment, err := h.Svc.Enroll(c.Request.Context(), c.Param("id"), studentID)
	if err != nil {
		respondCourseError(c, err)
		return
	}
	h.Logger.Info("student enrolled",
		zap.String("courseID", enrollment.CourseID), zap.String("studentID", studentID))
	c.JSON(http.StatusCreated, gin.H{"enrollment": enrollment})
}

// GetProgress returns the authenticated student's progress in a course.
func (h *CourseHandler) GetProgress(c *gin.Context) {
	studentID := c.GetString("userID")

	progress, err := h.Svc.GetProgress(c.Request.Context(), c.Param("id"), studentID)
	if err != nil {
		respondCourseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"progress": progress})
}

// CompleteLesson marks a lesson complete, enforcing sequential unlock order.
func (h *CourseHandler) CompleteLesson(c *gin.Context) {
	studentID := c.GetString("userID")

	progress, err := h.Svc.CompleteLesson(c.Request.Context(), c.Param("id"), studentID, c.Param("lessonID"))
	if err != nil {
		respondCourseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"progress": progress})
}
