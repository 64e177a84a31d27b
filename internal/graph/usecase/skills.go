package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/spu-coder/my-ai-advisor/internal/graph"
)

func normalizeCourseCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (uc *implUseCase) SkillsForCourse(ctx context.Context, courseCode string) ([]string, error) {
	code := normalizeCourseCode(courseCode)
	if code == "" {
		return nil, graph.ErrInvalidCourseCode
	}

	skills, err := uc.repo.ListSkills(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("internal.graph.usecase.SkillsForCourse: %w", err)
	}
	return skills, nil
}

// SetSkills trims skills and drops repeats, keeping first occurrence order.
func (uc *implUseCase) SetSkills(ctx context.Context, courseCode string, skills []string) error {
	code := normalizeCourseCode(courseCode)
	if code == "" {
		return graph.ErrInvalidCourseCode
	}

	seen := make(map[string]bool, len(skills))
	cleaned := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			return graph.ErrInvalidSkill
		}
		if seen[s] {
			continue
		}
		seen[s] = true
		cleaned = append(cleaned, s)
	}

	if err := uc.repo.ReplaceSkills(ctx, code, cleaned); err != nil {
		uc.l.Errorf(ctx, "internal.graph.usecase.SetSkills: %v", err)
		return err
	}
	uc.l.Infof(ctx, "internal.graph.usecase.SetSkills: %s now has %d skills", code, len(cleaned))
	return nil
}
