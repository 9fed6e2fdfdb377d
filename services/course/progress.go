package course

import (
	"sort"

	"edunex/models"
)

// lessonsByPosition returns a course's lessons sorted by their 1-based position.
func lessonsByPosition(course *models.Course) []models.Lesson {
	lessons := make([]models.Lesson, len(course.Lessons))
	copy(lessons, course.Lessons)
	sort.Slice(lessons, func(i, j int) bool {
		return lessons[i].Position < lessons[j].Position
	})
	return lessons
}

// BuildProgress computes per-lesson completion and lock state for a student.
// A lesson is locked until every lesson before it (by position) is complete;
// the overall percentage is completed lessons over total lessons.
func BuildProgress(course *models.Course, enrollment *models.Enrollment) *models.CourseProgress {
	completed := make(map[string]bool, len(enrollment.CompletedLessonIDs))
	for _, id := range enrollment.CompletedLessonIDs {
		completed[id] = true
	}

	lessons := lessonsByPosition(course)
	progress := &models.CourseProgress{
		CourseID:  course.ID,
		StudentID: enrollment.StudentID,
		Lessons:   make([]models.LessonProgress, 0, len(lessons)),
	}

	doneCount := 0
	allPriorDone := true
	for _, lesson := range lessons {
		done := completed[lesson.ID]
		if done {
			doneCount++
		}
		progress.Lessons = append(progress.Lessons, models.LessonProgress{
			LessonID:  lesson.ID,
			Title:     lesson.Title,
			Position:  lesson.Position,
			Completed: done,
			Locked:    !done && !allPriorDone,
		})
		allPriorDone = allPriorDone && done
	}

	if len(lessons) > 0 {
		progress.ProgressPercent = doneCount * 100 / len(lessons)
	}
	return progress
}

// IsLessonUnlocked reports whether the student may complete the given lesson:
// every lesson with a lower position must already be complete.
func IsLessonUnlocked(course *models.Course, enrollment *models.Enrollment, lessonID string) bool {
	completed := make(map[string]bool, len(enrollment.CompletedLessonIDs))
	for _, id := range enrollment.CompletedLessonIDs {
		completed[id] = true
	}

	for _, lesson := range lessonsByPosition(course) {
		if lesson.ID == lessonID {
			return true
		}
		if !completed[lesson.ID] {
			return false
		}
	}
	return false
}
