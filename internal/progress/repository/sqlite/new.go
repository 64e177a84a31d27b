package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/spu-coder/my-ai-advisor/internal/progress/repository"
	"github.com/spu-coder/my-ai-advisor/pkg/log"
)

// Migrations creates the progress tables.
var Migrations = []string{
	`CREATE TABLE IF NOT EXISTS student_academic_info (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id         TEXT NOT NULL UNIQUE,
		gpa             REAL,
		total_hours     INTEGER,
		completed_hours INTEGER,
		remaining_hours INTEGER,
		academic_status TEXT,
		current_semester TEXT,
		created_at      DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at      DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS progress_records (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id     TEXT NOT NULL,
		course_code TEXT NOT NULL,
		course_name TEXT,
		grade       TEXT NOT NULL,
		hours       INTEGER NOT NULL,
		semester    TEXT,
		created_at  DATETIME NOT NULL,
		updated_at  DATETIME NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_progress_records_user ON progress_records(user_id)`,
	`CREATE TABLE IF NOT EXISTS remaining_courses (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id       TEXT NOT NULL,
		course_code   TEXT NOT NULL,
		course_name   TEXT,
		hours         INTEGER,
		prerequisites TEXT,
		semester      TEXT,
		created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_remaining_courses_user ON remaining_courses(user_id)`,
}

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed Repository for the progress domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("progress/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("progress/repository/sqlite.%s", method)
}
