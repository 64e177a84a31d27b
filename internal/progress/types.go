package progress

import (
	"time"

	"github.com/spu-coder/my-ai-advisor/internal/model"
)

// --- Domain Models ---

// Record is one completed (or failed) course attempt.
type Record struct {
	ID         int64
	UserID     string
	CourseCode string
	CourseName string
	Grade      string
	Hours      int
	Semester   string
	CreatedAt  time.Time
}

// AcademicInfo is the summary imported from the university system.
// Nil fields were never provided.
type AcademicInfo struct {
	UserID         string
	GPA            *float64
	TotalHours     *int
	CompletedHours *int
	AcademicStatus string
}

// RemainingCourse is a course the student still has to take.
type RemainingCourse struct {
	Course        model.Course
	Prerequisites []string
	Semester      string
}

// --- UseCase Inputs ---

type RecordInput struct {
	UserID     string
	CourseCode string
	CourseName string
	Grade      string
	Hours      int
	Semester   string
}

// SimulateInput projects the GPA after a semester. NewCourses maps course
// code to hours, ExpectedGrades maps course code to a letter grade.
type SimulateInput struct {
	CurrentGPA     float64
	CurrentHours   int
	NewCourses     map[string]int
	ExpectedGrades map[string]string
}

// --- UseCase Outputs ---

type SimulateOutput struct {
	CurrentGPA   float64
	ProjectedGPA float64
	NewHours     int
	TotalHours   int
}
