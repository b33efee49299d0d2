package postgres

import (
	"database/sql"
	"errors"

	"wishlist/internal/domain"

	"github.com/jmoiron/sqlx"
)

const userColumns = `id, chat_id, username, is_admin, is_locked, added_at`

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sqlx.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}

// FindByChatID returns the user bound to chatID or nil
func (r *UserRepo) FindByChatID(chatID int64) (*domain.User, error) {
	var u domain.User
	query := `SELECT ` + userColumns + ` FROM users WHERE chat_id = $1 LIMIT 1`
	err := r.db.Get(&u, query, chatID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// FindByHandle returns the user owning handle or nil
func (r *UserRepo) FindByHandle(handle string) (*domain.User, error) {
	var u domain.User
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 LIMIT 1`
	err := r.db.Get(&u, query, handle)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// Create registers a new user on first contact
func (r *UserRepo) Create(chatID int64, handle string) error {
	query := `
		INSERT INTO users (chat_id, username, added_at)
		VALUES ($1, $2, NOW())
	`
	_, err := r.db.Exec(query, chatID, handle)
	return err
}

// BindChatID attaches a chat to a user pre-registered by handle
func (r *UserRepo) BindChatID(userID, chatID int64) error {
	query := `UPDATE users SET chat_id = $1 WHERE id = $2`
	_, err := r.db.Exec(query, chatID, userID)
	return err
}

// UpdateHandle replaces the user's handle
func (r *UserRepo) UpdateHandle(userID int64, handle string) error {
	query := `UPDATE users SET username = $1 WHERE id = $2`
	_, err := r.db.Exec(query, handle, userID)
	return err
}

// ReleaseHandle detaches handle from whichever user holds it
func (r *UserRepo) ReleaseHandle(handle string) error {
	query := `UPDATE users SET username = NULL WHERE username = $1`
	_, err := r.db.Exec(query, handle)
	return err
}

// PreRegisterAdmin creates (or promotes) an admin known only by handle
func (r *UserRepo) PreRegisterAdmin(handle string) error {
	query := `
		INSERT INTO users (username, is_admin, added_at)
		VALUES ($1, TRUE, NOW())
		ON CONFLICT (username)
		DO UPDATE SET is_admin = TRUE
	`
	_, err := r.db.Exec(query, handle)
	return err
}

// SetBlocked blocks or unblocks a user. Blocking also revokes admin rights.
func (r *UserRepo) SetBlocked(userID int64, blocked bool) error {
	query := `UPDATE users SET is_locked = $1 WHERE id = $2`
	if blocked {
		query = `UPDATE users SET is_locked = $1, is_admin = FALSE WHERE id = $2`
	}
	_, err := r.db.Exec(query, blocked, userID)
	return err
}

// SetAdmin grants or revokes admin rights
func (r *UserRepo) SetAdmin(userID int64, admin bool) error {
	query := `UPDATE users SET is_admin = $1 WHERE id = $2`
	_, err := r.db.Exec(query, admin, userID)
	return err
}

// List returns all users, newest first
func (r *UserRepo) List() ([]domain.User, error) {
	var users []domain.User
	query := `SELECT ` + userColumns + ` FROM users ORDER BY added_at DESC`
	if err := r.db.Select(&users, query); err != nil {
		return nil, err
	}
	return users, nil
}

// AdminChatIDs returns the chats of all reachable admins
func (r *UserRepo) AdminChatIDs() ([]int64, error) {
	var ids []int64
	query := `SELECT chat_id FROM users WHERE is_admin = TRUE AND chat_id IS NOT NULL`
	if err := r.db.Select(&ids, query); err != nil {
		return nil, err
	}
	return ids, nil
}

// RecipientChatIDs returns every distinct known chat
func (r *UserRepo) RecipientChatIDs() ([]int64, error) {
	var ids []int64
	query := `SELECT DISTINCT chat_id FROM users WHERE chat_id IS NOT NULL`
	if err := r.db.Select(&ids, query); err != nil {
		return nil, err
	}
	return ids, nil
}
