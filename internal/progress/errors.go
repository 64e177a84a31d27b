package progress

import "errors"

var (
	ErrStudentNotFound = errors.New("student not found")
	ErrInvalidGrade    = errors.New("invalid grade")
	ErrMissingGrade    = errors.New("expected grade missing for course")
	ErrInvalidHours    = errors.New("hours must be positive")
	ErrInvalidGPA      = errors.New("gpa must be between 0 and 4")
	ErrInvalidCourse   = errors.New("course code is required")
)
