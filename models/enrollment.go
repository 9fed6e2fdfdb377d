package models

import "time"

// Enrollment links a student to a course and tracks which lessons they have
// completed. One document per (courseId, studentId).
type Enrollment struct {
	ID                 string    `bson:"id" json:"id"`
	CourseID           string    `bson:"courseId" json:"courseId"`
	StudentID          string    `bson:"studentId" json:"studentId"`
	CompletedLessonIDs []string  `bson:"completedLessonIds" json:"completedLessonIds"`
	EnrolledAt         time.Time `bson:"enrolledAt" json:"enrolledAt"`
	UpdatedAt          time.Time `bson:"updatedAt" json:"updatedAt"`
}

// LessonProgress is the per-lesson view of a student's progress, including
// whether the lesson is still locked by the sequential-completion rule.
type LessonProgress struct {
	LessonID  string `json:"lessonId"`
	Title     string `json:"title"`
	Position  int    `json:"position"`
	Completed bool   `json:"completed"`
	Locked    bool   `json:"locked"`
}

// CourseProgress summarizes a student's standing in a course.
type CourseProgress struct {
	CourseID        string           `json:"courseId"`
	StudentID       string           `json:"studentId"`
	ProgressPercent int              `json:"progressPercent"`
	Lessons         []LessonProgress `json:"lessons"`
}
