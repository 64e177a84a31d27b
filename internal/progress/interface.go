package progress

import (
	"context"

	"github.com/spu-coder/my-ai-advisor/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Analyze builds the student's progress report.
	Analyze(ctx context.Context, userID string) (model.ProgressReport, error)
	// RecordProgress stores a completed course.
	RecordProgress(ctx context.Context, input RecordInput) (Record, error)
	// SimulateGPA is pure arithmetic over the input.
	SimulateGPA(input SimulateInput) (SimulateOutput, error)
}
