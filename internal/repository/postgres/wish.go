package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"wishlist/internal/domain"

	"github.com/jmoiron/sqlx"
)

var wishColumns = map[int]string{
	1: "wish1",
	2: "wish2",
	3: "wish3",
}

// WishRepo implements repository.WishRepository
type WishRepo struct {
	db *sqlx.DB
}

// NewWishRepo creates a new wish repository
func NewWishRepo(db *sqlx.DB) *WishRepo {
	return &WishRepo{db: db}
}

// Get returns the conversation record for chatID or nil
func (r *WishRepo) Get(chatID int64) (*domain.Wishes, error) {
	var w domain.Wishes
	query := `
		SELECT chat_id, state, wish1, wish2, wish3, poem, created_at
		FROM wishes
		WHERE chat_id = $1
		LIMIT 1
	`
	err := r.db.Get(&w, query, chatID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &w, nil
}

// Initialize creates the record (or restarts it) in the poem step
func (r *WishRepo) Initialize(chatID int64) error {
	query := `
		INSERT INTO wishes (chat_id, state, created_at)
		VALUES ($1, 'waiting_for_poem', NOW())
		ON CONFLICT (chat_id)
		DO UPDATE SET state = 'waiting_for_poem', updated_at = NOW()
	`
	_, err := r.db.Exec(query, chatID)
	return err
}

// SetState stores the state token, creating the record if needed
func (r *WishRepo) SetState(chatID int64, state string) error {
	query := `
		INSERT INTO wishes (chat_id, state, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (chat_id)
		DO UPDATE SET state = EXCLUDED.state, updated_at = NOW()
	`
	_, err := r.db.Exec(query, chatID, state)
	return err
}

// SavePoem stores the poem and moves to the next state
func (r *WishRepo) SavePoem(chatID int64, poem, next string) error {
	query := `UPDATE wishes SET poem = $1, state = $2, updated_at = NOW() WHERE chat_id = $3`
	_, err := r.db.Exec(query, poem, next, chatID)
	return err
}

// SaveWish stores wish n and moves to the next state
func (r *WishRepo) SaveWish(chatID int64, n int, wish, next string) error {
	column, ok := wishColumns[n]
	if !ok {
		return fmt.Errorf("invalid wish number: %d", n)
	}

	query := `UPDATE wishes SET ` + column + ` = $1, state = $2, updated_at = NOW() WHERE chat_id = $3`
	_, err := r.db.Exec(query, wish, next, chatID)
	return err
}

// ListWithUsers returns every user with their wishes and poem, newest first
func (r *WishRepo) ListWithUsers() ([]domain.UserWishes, error) {
	var out []domain.UserWishes
	query := `
		SELECT
			u.id, u.chat_id, u.username, u.is_admin, u.is_locked, u.added_at,
			w.wish1, w.wish2, w.wish3, w.poem
		FROM users u
		LEFT JOIN wishes w ON u.chat_id = w.chat_id
		ORDER BY u.added_at DESC
	`
	if err := r.db.Select(&out, query); err != nil {
		return nil, err
	}
	return out, nil
}
