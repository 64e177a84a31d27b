package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/spu-coder/my-ai-advisor/internal/graph/repository"
	"github.com/spu-coder/my-ai-advisor/pkg/log"
)

// Migrations creates the course_skills table.
var Migrations = []string{
	`CREATE TABLE IF NOT EXISTS course_skills (
		course_code TEXT    NOT NULL,
		skill       TEXT    NOT NULL,
		position    INTEGER NOT NULL,
		PRIMARY KEY (course_code, skill)
	)`,
}

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed Repository for the graph domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("graph/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("graph/repository/sqlite.%s", method)
}
