package sqlite

import (
	"context"

	repo "github.com/spu-coder/my-ai-advisor/internal/graph/repository"
)

// ListSkills returns a course's skills ordered by position.
func (r *implRepository) ListSkills(ctx context.Context, courseCode string) ([]string, error) {
	const query = `SELECT skill FROM course_skills WHERE course_code = ? ORDER BY position`

	rows, err := r.db.QueryContext(ctx, query, courseCode)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListSkills"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var skills []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListSkills"), err)
			return nil, repo.ErrFailedToList
		}
		skills = append(skills, s)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListSkills"), err)
		return nil, repo.ErrFailedToList
	}
	return skills, nil
}

// ReplaceSkills deletes and re-inserts a course's skills in one transaction.
func (r *implRepository) ReplaceSkills(ctx context.Context, courseCode string, skills []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("ReplaceSkills"), err)
		return repo.ErrFailedToReplace
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM course_skills WHERE course_code = ?`, courseCode); err != nil {
		r.l.Errorf(ctx, "%s delete: %v", r.dsn("ReplaceSkills"), err)
		return repo.ErrFailedToReplace
	}

	for i, s := range skills {
		if _, err := tx.ExecContext(ctx, `INSERT INTO course_skills (course_code, skill, position) VALUES (?, ?, ?)`, courseCode, s, i); err != nil {
			r.l.Errorf(ctx, "%s insert: %v", r.dsn("ReplaceSkills"), err)
			return repo.ErrFailedToReplace
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("ReplaceSkills"), err)
		return repo.ErrFailedToReplace
	}
	return nil
}
