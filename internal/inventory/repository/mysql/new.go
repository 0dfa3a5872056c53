package mysql

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"inventory-hub/internal/inventory/repository"
	"inventory-hub/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new MySQL-backed Repository for the inventory domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("inventory/repository/mysql: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("inventory/repository/mysql.%s", method)
}

// isDuplicateKey reports whether err is a MySQL unique-key violation (1062).
func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
