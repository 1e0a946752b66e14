package postgre

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"smart-todo/internal/agent/repository"
	"smart-todo/pkg/log"
)

type implRepository struct {
	db *sqlx.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for agent records.
func New(db *sqlx.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("agent/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("agent/repository/postgre.%s", method)
}
