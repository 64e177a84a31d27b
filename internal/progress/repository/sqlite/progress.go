package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/spu-coder/my-ai-advisor/internal/progress"
	repo "github.com/spu-coder/my-ai-advisor/internal/progress/repository"
)

// GetAcademicInfo returns the imported summary of a student.
func (r *implRepository) GetAcademicInfo(ctx context.Context, userID string) (progress.AcademicInfo, error) {
	const query = `
		SELECT user_id, gpa, total_hours, completed_hours, academic_status
		FROM student_academic_info
		WHERE user_id = ?`

	var (
		info      progress.AcademicInfo
		gpa       sql.NullFloat64
		total     sql.NullInt64
		completed sql.NullInt64
		status    sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&info.UserID, &gpa, &total, &completed, &status)
	if errors.Is(err, sql.ErrNoRows) {
		return progress.AcademicInfo{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetAcademicInfo"), err)
		return progress.AcademicInfo{}, repo.ErrFailedToGet
	}

	if gpa.Valid {
		info.GPA = &gpa.Float64
	}
	if total.Valid {
		v := int(total.Int64)
		info.TotalHours = &v
	}
	if completed.Valid {
		v := int(completed.Int64)
		info.CompletedHours = &v
	}
	info.AcademicStatus = status.String
	return info, nil
}

// ListRecords returns a student's records oldest first.
func (r *implRepository) ListRecords(ctx context.Context, userID string) ([]progress.Record, error) {
	const query = `
		SELECT id, user_id, course_code, COALESCE(course_name, ''), grade, hours, COALESCE(semester, ''), created_at
		FROM progress_records
		WHERE user_id = ?
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRecords"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var records []progress.Record
	for rows.Next() {
		var rec progress.Record
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.CourseCode, &rec.CourseName, &rec.Grade, &rec.Hours, &rec.Semester, &rec.CreatedAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListRecords"), err)
			return nil, repo.ErrFailedToList
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListRecords"), err)
		return nil, repo.ErrFailedToList
	}
	return records, nil
}

// ListRemainingCourses returns the courses a student still has to take.
func (r *implRepository) ListRemainingCourses(ctx context.Context, userID string) ([]progress.RemainingCourse, error) {
	const query = `
		SELECT course_code, COALESCE(course_name, ''), COALESCE(hours, 0), COALESCE(prerequisites, ''), COALESCE(semester, '')
		FROM remaining_courses
		WHERE user_id = ?
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRemainingCourses"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var courses []progress.RemainingCourse
	for rows.Next() {
		var (
			c       progress.RemainingCourse
			prereqs string
		)
		if err := rows.Scan(&c.Course.Code, &c.Course.Name, &c.Course.Hours, &prereqs, &c.Semester); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListRemainingCourses"), err)
			return nil, repo.ErrFailedToList
		}
		c.Prerequisites = splitPrerequisites(prereqs)
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListRemainingCourses"), err)
		return nil, repo.ErrFailedToList
	}
	return courses, nil
}

// CreateRecord inserts a progress record and returns it.
func (r *implRepository) CreateRecord(ctx context.Context, opt repo.CreateRecordOptions) (progress.Record, error) {
	const query = `
		INSERT INTO progress_records (user_id, course_code, course_name, grade, hours, semester, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, query, opt.UserID, opt.CourseCode, opt.CourseName, opt.Grade, opt.Hours, opt.Semester, now, now)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateRecord"), err)
		return progress.Record{}, repo.ErrFailedToInsert
	}
	id, err := res.LastInsertId()
	if err != nil {
		r.l.Errorf(ctx, "%s last id: %v", r.dsn("CreateRecord"), err)
		return progress.Record{}, repo.ErrFailedToInsert
	}

	return progress.Record{
		ID:         id,
		UserID:     opt.UserID,
		CourseCode: opt.CourseCode,
		CourseName: opt.CourseName,
		Grade:      opt.Grade,
		Hours:      opt.Hours,
		Semester:   opt.Semester,
		CreatedAt:  now,
	}, nil
}

// splitPrerequisites parses the comma separated prerequisite column.
func splitPrerequisites(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
