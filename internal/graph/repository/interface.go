package repository

import "context"

// Repository stores course to skill edges.
type Repository interface {
	ListSkills(ctx context.Context, courseCode string) ([]string, error)
	// ReplaceSkills swaps all skills of a course atomically.
	ReplaceSkills(ctx context.Context, courseCode string, skills []string) error
}
