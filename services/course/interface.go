package course

import (
	"context"

	"edunex/models"
)

// CourseService exposes course and lesson management for instructors and
// enrollment/progress tracking for students.
type CourseService interface {
	CreateCourse(ctx context.Context, instructorID string, req models.CreateCourseRequest) (*models.Course, error)
	ListCourses(ctx context.Context) ([]models.Course, error)
	GetCourse(ctx context.Context, id string) (*models.Course, error)
	AddLesson(ctx context.Context, instructorID, courseID string, req models.AddLessonRequest) (*models.Lesson, error)

	Enroll(ctx context.Context, courseID, studentID string) (*models.Enrollment, error)
	GetProgress(ctx context.Context, courseID, studentID string) (*models.CourseProgress, error)
	CompleteLesson(ctx context.Context, courseID, studentID, lessonID string) (*models.CourseProgress, error)
}
