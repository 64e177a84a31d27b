package usecase

import (
	"fmt"
	"sort"

	"github.com/spu-coder/my-ai-advisor/internal/progress"
)

// SimulateGPA projects the cumulative GPA after the given courses:
// (gpa*hours + Σ points*hours) / (hours + Σ hours), rounded to 2 decimals.
func (uc *implUseCase) SimulateGPA(input progress.SimulateInput) (progress.SimulateOutput, error) {
	if input.CurrentGPA < 0 || input.CurrentGPA > 4 {
		return progress.SimulateOutput{}, progress.ErrInvalidGPA
	}
	if input.CurrentHours < 0 {
		return progress.SimulateOutput{}, progress.ErrInvalidHours
	}

	codes := make([]string, 0, len(input.NewCourses))
	for code := range input.NewCourses {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	totalPoints := input.CurrentGPA * float64(input.CurrentHours)
	var newHours int
	for _, code := range codes {
		hours := input.NewCourses[code]
		if hours <= 0 {
			return progress.SimulateOutput{}, fmt.Errorf("%w: %s", progress.ErrInvalidHours, code)
		}
		grade, ok := input.ExpectedGrades[code]
		if !ok {
			return progress.SimulateOutput{}, fmt.Errorf("%w: %s", progress.ErrMissingGrade, code)
		}
		p, ok := points(grade)
		if !ok {
			return progress.SimulateOutput{}, fmt.Errorf("%w: %s", progress.ErrInvalidGrade, grade)
		}
		totalPoints += p * float64(hours)
		newHours += hours
	}

	out := progress.SimulateOutput{
		CurrentGPA:   input.CurrentGPA,
		ProjectedGPA: input.CurrentGPA,
		NewHours:     newHours,
		TotalHours:   input.CurrentHours + newHours,
	}
	if out.TotalHours > 0 {
		out.ProjectedGPA = round2(totalPoints / float64(out.TotalHours))
	}
	return out, nil
}
