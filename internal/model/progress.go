package model

// Course is a course the student can still take.
type Course struct {
	Code  string
	Name  string
	Hours int
}

// ProgressReport summarises a student's academic standing.
type ProgressReport struct {
	CurrentGPA               float64
	CompletedHours           int
	RemainingCoursesCount    int
	RegisterableNextSemester []Course
	CompletedCourses         []string
}
