package usecase

import (
	"context"

	"github.com/spu-coder/my-ai-advisor/internal/progress"
	repo "github.com/spu-coder/my-ai-advisor/internal/progress/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockRepo struct {
	info      progress.AcademicInfo
	records   []progress.Record
	remaining []progress.RemainingCourse
	err       error

	created []repo.CreateRecordOptions
}

func (m *mockRepo) GetAcademicInfo(ctx context.Context, userID string) (progress.AcademicInfo, error) {
	return m.info, m.err
}

func (m *mockRepo) ListRecords(ctx context.Context, userID string) ([]progress.Record, error) {
	return m.records, m.err
}

func (m *mockRepo) ListRemainingCourses(ctx context.Context, userID string) ([]progress.RemainingCourse, error) {
	return m.remaining, m.err
}

func (m *mockRepo) CreateRecord(ctx context.Context, opt repo.CreateRecordOptions) (progress.Record, error) {
	if m.err != nil {
		return progress.Record{}, m.err
	}
	m.created = append(m.created, opt)
	return progress.Record{ID: int64(len(m.created)), UserID: opt.UserID, CourseCode: opt.CourseCode, Grade: opt.Grade, Hours: opt.Hours}, nil
}
