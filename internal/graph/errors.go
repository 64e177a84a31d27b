package graph

import "errors"

var (
	ErrInvalidCourseCode = errors.New("course code is required")
	ErrInvalidSkill      = errors.New("skill must not be empty")
)
