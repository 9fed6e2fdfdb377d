package course

import (
	"testing"

	"edunex/models"
)

func threeLessonCourse() *models.Course {
	return &models.Course{
		ID:           "course-1",
		InstructorID: "instr-1",
		Title:        "Intro to Algebra",
		Lessons: []models.Lesson{
			// Stored out of order on purpose; position defines the sequence.
			{ID: "l3", Title: "Quadratics", Position: 3},
			{ID: "l1", Title: "Variables", Position: 1},
			{ID: "l2", Title: "Equations", Position: 2},
		},
	}
}

func enrolled(completed ...string) *models.Enrollment {
	return &models.Enrollment{
		ID:                 "enr-1",
		CourseID:           "course-1",
		StudentID:          "student-1",
		CompletedLessonIDs: completed,
	}
}

func TestBuildProgress_FreshEnrollment(t *testing.T) {
	progress := BuildProgress(threeLessonCourse(), enrolled())

	if progress.ProgressPercent != 0 {
		t.Fatalf("percent = %d, want 0", progress.ProgressPercent)
	}
	if len(progress.Lessons) != 3 {
		t.Fatalf("lesson count = %d, want 3", len(progress.Lessons))
	}
	if progress.Lessons[0].LessonID != "l1" || progress.Lessons[0].Locked {
		t.Fatalf("first lesson should be l1 and unlocked, got %+v", progress.Lessons[0])
	}
	for _, lp := range progress.Lessons[1:] {
		if !lp.Locked {
			t.Errorf("lesson %s should be locked before l1 is complete", lp.LessonID)
		}
	}
}

func TestBuildProgress_PartialCompletion(t *testing.T) {
	progress := BuildProgress(threeLessonCourse(), enrolled("l1"))

	if progress.ProgressPercent != 33 {
		t.Fatalf("percent = %d, want 33", progress.ProgressPercent)
	}

	byID := map[string]models.LessonProgress{}
	for _, lp := range progress.Lessons {
		byID[lp.LessonID] = lp
	}
	if !byID["l1"].Completed || byID["l1"].Locked {
		t.Errorf("l1 should be completed and unlocked, got %+v", byID["l1"])
	}
	if byID["l2"].Locked {
		t.Errorf("l2 should be unlocked once l1 is complete")
	}
	if !byID["l3"].Locked {
		t.Errorf("l3 should remain locked until l2 is complete")
	}
}

func TestBuildProgress_AllComplete(t *testing.T) {
	progress := BuildProgress(threeLessonCourse(), enrolled("l1", "l2", "l3"))

	if progress.ProgressPercent != 100 {
		t.Fatalf("percent = %d, want 100", progress.ProgressPercent)
	}
	for _, lp := range progress.Lessons {
		if !lp.Completed || lp.Locked {
			t.Errorf("lesson %s should be completed and unlocked, got %+v", lp.LessonID, lp)
		}
	}
}

func TestBuildProgress_EmptyCourse(t *testing.T) {
	course := &models.Course{ID: "course-1"}
	progress := BuildProgress(course, enrolled())

	if progress.ProgressPercent != 0 || len(progress.Lessons) != 0 {
		t.Fatalf("empty course progress = %+v, want zero", progress)
	}
}

func TestIsLessonUnlocked(t *testing.T) {
	course := threeLessonCourse()

	tests := []struct {
		name      string
		completed []string
		lessonID  string
		want      bool
	}{
		{"first lesson always unlocked", nil, "l1", true},
		{"second locked at start", nil, "l2", false},
		{"second unlocked after first", []string{"l1"}, "l2", true},
		{"third locked with a gap", []string{"l1"}, "l3", false},
		{"third unlocked in order", []string{"l1", "l2"}, "l3", true},
		{"skipping first does not unlock third", []string{"l2"}, "l3", false},
		{"unknown lesson", []string{"l1", "l2", "l3"}, "l9", false},
		{"completed lesson stays unlocked", []string{"l1"}, "l1", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := IsLessonUnlocked(course, enrolled(tc.completed...), tc.lessonID)
			if got != tc.want {
				t.Fatalf("IsLessonUnlocked(%s) = %v, want %v", tc.lessonID, got, tc.want)
			}
		})
	}
}
