package usecase

import (
	"context"
	"strings"

	"github.com/spu-coder/my-ai-advisor/internal/progress"
	repo "github.com/spu-coder/my-ai-advisor/internal/progress/repository"
)

// RecordProgress validates and stores a completed course.
func (uc *implUseCase) RecordProgress(ctx context.Context, input progress.RecordInput) (progress.Record, error) {
	code := strings.ToUpper(strings.TrimSpace(input.CourseCode))
	if code == "" {
		return progress.Record{}, progress.ErrInvalidCourse
	}
	if _, ok := points(input.Grade); !ok {
		return progress.Record{}, progress.ErrInvalidGrade
	}
	if input.Hours <= 0 {
		return progress.Record{}, progress.ErrInvalidHours
	}

	rec, err := uc.repo.CreateRecord(ctx, repo.CreateRecordOptions{
		UserID:     input.UserID,
		CourseCode: code,
		CourseName: strings.TrimSpace(input.CourseName),
		Grade:      normalizeGrade(input.Grade),
		Hours:      input.Hours,
		Semester:   strings.TrimSpace(input.Semester),
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.progress.usecase.RecordProgress: %v", err)
		return progress.Record{}, err
	}
	return rec, nil
}
