package repository

import (
	"context"

	"github.com/spu-coder/my-ai-advisor/internal/progress"
)

// Repository is the data store of the progress domain.
type Repository interface {
	// GetAcademicInfo returns a zero AcademicInfo (UserID == "") when none is stored.
	GetAcademicInfo(ctx context.Context, userID string) (progress.AcademicInfo, error)
	ListRecords(ctx context.Context, userID string) ([]progress.Record, error)
	ListRemainingCourses(ctx context.Context, userID string) ([]progress.RemainingCourse, error)
	CreateRecord(ctx context.Context, opt CreateRecordOptions) (progress.Record, error)
}
