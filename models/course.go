package models

import "time"

// Lesson is a single unit of course content. Position is 1-based and defines
// the sequential unlock order.
type Lesson struct {
	ID       string `bson:"id" json:"id"`
	Title    string `bson:"title" json:"title"`
	VideoURL string `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"`
	Position int    `bson:"position" json:"position"`
}

// Course groups lessons under an owning instructor.
type Course struct {
	ID           string    `bson:"id" json:"id"`
	InstructorID string    `bson:"instructorId" json:"instructorId"`
	Title        string    `bson:"title" json:"title"`
	Description  string    `bson:"description,omitempty" json:"description,omitempty"`
	Lessons      []Lesson  `bson:"lessons" json:"lessons"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CreateCourseRequest defines the payload for creating a course.
type CreateCourseRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// AddLessonRequest defines the payload for appending a lesson to a course.
type AddLessonRequest struct {
	Title    string `json:"title" binding:"required"`
	VideoURL string `json:"videoUrl"`
}
