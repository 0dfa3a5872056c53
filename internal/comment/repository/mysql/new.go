package mysql

import (
	"database/sql"
	"fmt"

	"inventory-hub/internal/comment/repository"
	"inventory-hub/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new MySQL-backed Repository for the comment domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("comment/repository/mysql: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("comment/repository/mysql.%s", method)
}
