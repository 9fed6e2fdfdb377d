package course

import (
	"errors"
	"fmt"
)

const (
	CodeNotFound        = "notFound"
	CodeForbidden       = "forbidden"
	CodeLessonLocked    = "lessonLocked"
	CodeAlreadyEnrolled = "alreadyEnrolled"
	CodeNotEnrolled     = "notEnrolled"
)

type CourseError struct {
	Code    string
	Message string
}

func (e *CourseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewCourseError(code, msg string) error {
	return &CourseError{
		Code:    code,
		Message: msg,
	}
}

// AsCourseError unwraps err into a *CourseError if it is one.
func AsCourseError(err error) (*CourseError, bool) {
	var ce *CourseError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
