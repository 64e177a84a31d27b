package graph

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// SkillsForCourse returns the skills a course teaches, in order. An
	// unknown course has none.
	SkillsForCourse(ctx context.Context, courseCode string) ([]string, error)
	// SetSkills replaces the skills of a course.
	SetSkills(ctx context.Context, courseCode string, skills []string) error
}
