package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	repo "github.com/spu-coder/my-ai-advisor/internal/progress/repository"
	"github.com/spu-coder/my-ai-advisor/pkg/log"
	pkgSqlite "github.com/spu-coder/my-ai-advisor/pkg/sqlite"
)

func newTestRepository(t *testing.T) (*implRepository, func(query string, args ...any)) {
	t.Helper()
	db, err := pkgSqlite.Open(filepath.Join(t.TempDir(), "progress.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := pkgSqlite.Migrate(context.Background(), db, Migrations...); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	exec := func(query string, args ...any) {
		t.Helper()
		if _, err := db.Exec(query, args...); err != nil {
			t.Fatalf("exec %q: %v", query, err)
		}
	}
	return New(db, log.NewNop()).(*implRepository), exec
}

func TestGetAcademicInfo(t *testing.T) {
	r, exec := newTestRepository(t)
	ctx := context.Background()

	t.Run("missing", func(t *testing.T) {
		info, err := r.GetAcademicInfo(ctx, "nobody")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if info.UserID != "" {
			t.Errorf("expected zero value, got %+v", info)
		}
	})

	t.Run("partial row", func(t *testing.T) {
		exec(`INSERT INTO student_academic_info (user_id, gpa, academic_status) VALUES (?, ?, ?)`, "S1", 3.25, "regular")

		info, err := r.GetAcademicInfo(ctx, "S1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if info.UserID != "S1" || info.GPA == nil || *info.GPA != 3.25 || info.AcademicStatus != "regular" {
			t.Errorf("unexpected info %+v", info)
		}
		if info.CompletedHours != nil || info.TotalHours != nil {
			t.Errorf("NULL columns should stay nil: %+v", info)
		}
	})
}

func TestRecords(t *testing.T) {
	r, _ := newTestRepository(t)
	ctx := context.Background()

	first, err := r.CreateRecord(ctx, repo.CreateRecordOptions{UserID: "S1", CourseCode: "CS101", CourseName: "Intro", Grade: "A", Hours: 3, Semester: "2024-1"})
	if err != nil {
		t.Fatalf("CreateRecord() error = %v", err)
	}
	if first.ID == 0 || first.CreatedAt.IsZero() {
		t.Errorf("unexpected record %+v", first)
	}
	if _, err := r.CreateRecord(ctx, repo.CreateRecordOptions{UserID: "S1", CourseCode: "CS201", Grade: "B+", Hours: 4}); err != nil {
		t.Fatalf("CreateRecord() error = %v", err)
	}
	if _, err := r.CreateRecord(ctx, repo.CreateRecordOptions{UserID: "S2", CourseCode: "MA101", Grade: "C", Hours: 3}); err != nil {
		t.Fatalf("CreateRecord() error = %v", err)
	}

	records, err := r.ListRecords(ctx, "S1")
	if err != nil {
		t.Fatalf("ListRecords() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].CourseCode != "CS101" || records[0].CourseName != "Intro" || records[1].CourseCode != "CS201" || records[1].Hours != 4 {
		t.Errorf("unexpected records %+v", records)
	}
	if records[1].CourseName != "" || records[1].Semester != "" {
		t.Errorf("empty optional columns should read back empty: %+v", records[1])
	}
}

func TestListRemainingCourses(t *testing.T) {
	r, exec := newTestRepository(t)
	exec(`INSERT INTO remaining_courses (user_id, course_code, course_name, hours, prerequisites) VALUES (?, ?, ?, ?, ?)`,
		"S1", "CS301", "Algorithms", 3, "CS201, CS101")
	exec(`INSERT INTO remaining_courses (user_id, course_code) VALUES (?, ?)`, "S1", "CS499")

	courses, err := r.ListRemainingCourses(context.Background(), "S1")
	if err != nil {
		t.Fatalf("ListRemainingCourses() error = %v", err)
	}
	if len(courses) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(courses))
	}

	algo := courses[0]
	if algo.Course.Code != "CS301" || algo.Course.Name != "Algorithms" || algo.Course.Hours != 3 {
		t.Errorf("unexpected course %+v", algo)
	}
	if len(algo.Prerequisites) != 2 || algo.Prerequisites[0] != "CS201" || algo.Prerequisites[1] != "CS101" {
		t.Errorf("unexpected prerequisites %q", algo.Prerequisites)
	}
	if len(courses[1].Prerequisites) != 0 || courses[1].Course.Hours != 0 {
		t.Errorf("unexpected course %+v", courses[1])
	}
}

func TestSplitPrerequisites(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{" , ", 0},
		{"CS101", 1},
		{"CS101,CS102 , ", 2},
	}
	for _, tt := range tests {
		if got := splitPrerequisites(tt.in); len(got) != tt.want {
			t.Errorf("splitPrerequisites(%q) = %q, want %d items", tt.in, got, tt.want)
		}
	}
}
