package usecase

import (
	"context"
	"fmt"

	"github.com/spu-coder/my-ai-advisor/internal/model"
	"github.com/spu-coder/my-ai-advisor/internal/progress"
)

const LogPrefixAnalyze = "internal.progress.usecase.Analyze"

// Analyze combines the imported academic summary with the recorded courses.
// Stored GPA and completed hours win over values derived from records.
func (uc *implUseCase) Analyze(ctx context.Context, userID string) (model.ProgressReport, error) {
	info, err := uc.repo.GetAcademicInfo(ctx, userID)
	if err != nil {
		return model.ProgressReport{}, fmt.Errorf("%s: %w", LogPrefixAnalyze, err)
	}
	records, err := uc.repo.ListRecords(ctx, userID)
	if err != nil {
		return model.ProgressReport{}, fmt.Errorf("%s: %w", LogPrefixAnalyze, err)
	}
	if info.UserID == "" && len(records) == 0 {
		return model.ProgressReport{}, progress.ErrStudentNotFound
	}
	remaining, err := uc.repo.ListRemainingCourses(ctx, userID)
	if err != nil {
		return model.ProgressReport{}, fmt.Errorf("%s: %w", LogPrefixAnalyze, err)
	}

	completed, completedHours := completedCourses(records)

	report := model.ProgressReport{
		CurrentGPA:               weightedGPA(records),
		CompletedHours:           completedHours,
		RemainingCoursesCount:    len(remaining),
		RegisterableNextSemester: registerable(remaining, completed),
		CompletedCourses:         completed,
	}
	if info.GPA != nil {
		report.CurrentGPA = *info.GPA
	}
	if info.CompletedHours != nil {
		report.CompletedHours = *info.CompletedHours
	}

	uc.l.Debugf(ctx, "%s: %s gpa=%v hours=%d remaining=%d", LogPrefixAnalyze, userID, report.CurrentGPA, report.CompletedHours, report.RemainingCoursesCount)
	return report, nil
}

// weightedGPA averages grade points by hours. Records with an unknown
// grade are ignored.
func weightedGPA(records []progress.Record) float64 {
	var sum float64
	var hours int
	for _, r := range records {
		p, ok := points(r.Grade)
		if !ok || r.Hours <= 0 {
			continue
		}
		sum += p * float64(r.Hours)
		hours += r.Hours
	}
	if hours == 0 {
		return 0
	}
	return round2(sum / float64(hours))
}

// completedCourses returns the distinct passed course codes in record order
// and their total hours.
func completedCourses(records []progress.Record) ([]string, int) {
	seen := make(map[string]bool, len(records))
	codes := make([]string, 0, len(records))
	var hours int
	for _, r := range records {
		if !isPassing(r.Grade) || seen[r.CourseCode] {
			continue
		}
		seen[r.CourseCode] = true
		codes = append(codes, r.CourseCode)
		hours += r.Hours
	}
	return codes, hours
}

func registerable(remaining []progress.RemainingCourse, completed []string) []model.Course {
	done := make(map[string]bool, len(completed))
	for _, c := range completed {
		done[c] = true
	}

	out := make([]model.Course, 0, len(remaining))
	for _, rc := range remaining {
		ok := true
		for _, p := range rc.Prerequisites {
			if !done[p] {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, rc.Course)
		}
	}
	return out
}
