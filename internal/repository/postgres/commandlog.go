package postgres

import (
	"wishlist/internal/domain"

	"github.com/jmoiron/sqlx"
)

// CommandLogRepo implements repository.CommandLogRepository
type CommandLogRepo struct {
	db *sqlx.DB
}

// NewCommandLogRepo creates a new command log repository
func NewCommandLogRepo(db *sqlx.DB) *CommandLogRepo {
	return &CommandLogRepo{db: db}
}

// Append writes one audit record
func (r *CommandLogRepo) Append(entry domain.CommandLogEntry) error {
	handle := entry.Handle
	if handle == "" {
		handle = "unknown"
	}

	query := `
		INSERT INTO command_logs (user_id, username, command, created_at)
		VALUES ($1, $2, $3, NOW())
	`
	_, err := r.db.Exec(query, entry.UserID, handle, entry.Command)
	return err
}
