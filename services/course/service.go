package course

import (
	"context"
	"fmt"

	courseRepo "edunex/database/repository/course"
	enrollmentRepo "edunex/database/repository/enrollment"
	"edunex/models"

	"github.com/google/uuid"
)

// DefaultCourseService is the production course service.
type DefaultCourseService struct {
	CourseRepo     courseRepo.CourseRepository
	EnrollmentRepo enrollmentRepo.EnrollmentRepository
}

func (svc *DefaultCourseService) CreateCourse(ctx context.Context, instructorID string, req models.CreateCourseRequest) (*models.Course, error) {
	course := &models.Course{
		InstructorID: instructorID,
		Title:        req.Title,
		Description:  req.Description,
		Lessons:      []models.Lesson{},
	}
	if err := svc.CourseRepo.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}
	return course, nil
}

func (svc *DefaultCourseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	return svc.CourseRepo.ListAll(ctx)
}

func (svc *DefaultCourseService) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	course, err := svc.CourseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch course: %w", err)
	}
	if course == nil {
		return nil, NewCourseError(CodeNotFound, "course not found")
	}
	return course, nil
}

func (svc *DefaultCourseService) AddLesson(ctx context.Context, instructorID, courseID string, req models.AddLessonRequest) (*models.Lesson, error) {
	course, err := svc.GetCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course.InstructorID != instructorID {
		return nil, NewCourseError(CodeForbidden, "only the owning instructor may add lessons")
	}

	lesson := models.Lesson{
		ID:       uuid.New().String(),
		Title:    req.Title,
		VideoURL: req.VideoURL,
		Position: len(course.Lessons) + 1,
	}
	if err := svc.CourseRepo.AddLesson(ctx, courseID, lesson); err != nil {
		return nil, fmt.Errorf("failed to add lesson: %w", err)
	}
	return &lesson, nil
}

func (svc *DefaultCourseService) Enroll(ctx context.Context, courseID, studentID string) (*models.Enrollment, error) {
	if _, err := svc.GetCourse(ctx, courseID); err != nil {
		return nil, err
	}

	enrollment := &models.Enrollment{
		CourseID:  courseID,
		StudentID: studentID,
	}
	if err := svc.EnrollmentRepo.Create(ctx, enrollment); err != nil {
		if err == enrollmentRepo.ErrAlreadyEnrolled {
			return nil, NewCourseError(CodeAlreadyEnrolled, "student is already enrolled in this course")
		}
		return nil, fmt.Errorf("failed to enroll: %w", err)
	}
	return enrollment, nil
}

func (svc *DefaultCourseService) GetProgress(ctx context.Context, courseID, studentID string) (*models.CourseProgress, error) {
	course, enrollment, err := svc.getEnrolled(ctx, courseID, studentID)
	if err != nil {
		return nil, err
	}
	return BuildProgress(course, enrollment), nil
}

func (svc *DefaultCourseService) CompleteLesson(ctx context.Context, courseID, studentID, lessonID string) (*models.CourseProgress, error) {
	course, enrollment, err := svc.getEnrolled(ctx, courseID, studentID)
	if err != nil {
		return nil, err
	}

	found := false
	for _, lesson := range course.Lessons {
		if lesson.ID == lessonID {
			found = true
			break
		}
	}
	if !found {
		return nil, NewCourseError(CodeNotFound, "lesson not found in this course")
	}

	if !IsLessonUnlocked(course, enrollment, lessonID) {
		return nil, NewCourseError(CodeLessonLocked, "previous lessons must be completed first")
	}

	if err := svc.EnrollmentRepo.AddCompletedLesson(ctx, courseID, studentID, lessonID); err != nil {
		return nil, fmt.Errorf("failed to record completion: %w", err)
	}

	enrollment, err = svc.EnrollmentRepo.GetByCourseAndStudent(ctx, courseID, studentID)
	if err != nil || enrollment == nil {
		return nil, fmt.Errorf("failed to reload enrollment: %w", err)
	}
	return BuildProgress(course, enrollment), nil
}

func (svc *DefaultCourseService) getEnrolled(ctx context.Context, courseID, studentID string) (*models.Course, *models.Enrollment, error) {
	course, err := svc.GetCourse(ctx, courseID)
	if err != nil {
		return nil, nil, err
	}
	enrollment, err := svc.EnrollmentRepo.GetByCourseAndStudent(ctx, courseID, studentID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch enrollment: %w", err)
	}
	if enrollment == nil {
		return nil, nil, NewCourseError(CodeNotEnrolled, "student is not enrolled in this course")
	}
	return course, enrollment, nil
}
