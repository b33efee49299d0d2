package postgres

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"wishlist/internal/domain"

	"github.com/jmoiron/sqlx"
)

// BroadcastRepo implements repository.BroadcastRepository
type BroadcastRepo struct {
	db *sqlx.DB
}

// NewBroadcastRepo creates a new pending broadcast repository
func NewBroadcastRepo(db *sqlx.DB) *BroadcastRepo {
	return &BroadcastRepo{db: db}
}

type pendingRow struct {
	AdminChatID int64     `db:"admin_chat_id"`
	MessageData []byte    `db:"message_data"`
	CreatedAt   time.Time `db:"created_at"`
}

// SavePending stores the captured payload, replacing any earlier one for the admin
func (r *BroadcastRepo) SavePending(adminChatID int64, payload domain.Payload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	query := `
		INSERT INTO pending_broadcasts (admin_chat_id, message_data, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (admin_chat_id)
		DO UPDATE SET message_data = EXCLUDED.message_data, created_at = NOW()
	`
	_, err = r.db.Exec(query, adminChatID, data)
	return err
}

// ClaimPending removes and returns the admin's pending broadcast, or nil.
// Only one of several concurrent callers gets the row.
func (r *BroadcastRepo) ClaimPending(adminChatID int64) (*domain.PendingBroadcast, error) {
	var row pendingRow
	query := `
		DELETE FROM pending_broadcasts
		WHERE admin_chat_id = $1
		RETURNING admin_chat_id, message_data, created_at
	`
	err := r.db.Get(&row, query, adminChatID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var payload domain.Payload
	if err := json.Unmarshal(row.MessageData, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}

	return &domain.PendingBroadcast{
		AdminChatID: row.AdminChatID,
		Payload:     payload,
		CreatedAt:   row.CreatedAt,
	}, nil
}

// DeletePending removes the admin's pending broadcast
func (r *BroadcastRepo) DeletePending(adminChatID int64) error {
	query := `DELETE FROM pending_broadcasts WHERE admin_chat_id = $1`
	_, err := r.db.Exec(query, adminChatID)
	return err
}
