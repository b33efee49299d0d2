package postgres

import (
	"database/sql"
	"errors"

	"wishlist/internal/domain"

	"github.com/jmoiron/sqlx"
)

const chatColumns = `chat_id, chat_type, chat_title, added_by_user_id, added_by_username, is_active, added_at, updated_at`

// ChatRepo implements repository.ChatRepository
type ChatRepo struct {
	db *sqlx.DB
}

// NewChatRepo creates a new group chat repository
func NewChatRepo(db *sqlx.DB) *ChatRepo {
	return &ChatRepo{db: db}
}

// Upsert stores a joined chat and marks it active
func (r *ChatRepo) Upsert(chat domain.GroupChat) error {
	query := `
		INSERT INTO bot_chats (chat_id, chat_type, chat_title, added_by_user_id, added_by_username, is_active, added_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, TRUE, NOW(), NOW())
		ON CONFLICT (chat_id)
		DO UPDATE SET
			chat_type = EXCLUDED.chat_type,
			chat_title = EXCLUDED.chat_title,
			added_by_user_id = EXCLUDED.added_by_user_id,
			added_by_username = EXCLUDED.added_by_username,
			is_active = TRUE,
			updated_at = NOW()
	`
	_, err := r.db.Exec(query, chat.ChatID, chat.Type, chat.Title, chat.AddedByUserID, chat.AddedByUsername)
	return err
}

// Touch refreshes type and title of an already known chat
func (r *ChatRepo) Touch(chatID int64, chatType, title string) error {
	query := `
		UPDATE bot_chats
		SET chat_type = $1, chat_title = $2, updated_at = NOW()
		WHERE chat_id = $3
	`
	_, err := r.db.Exec(query, chatType, title, chatID)
	return err
}

// Get returns the chat or nil
func (r *ChatRepo) Get(chatID int64) (*domain.GroupChat, error) {
	var c domain.GroupChat
	query := `SELECT ` + chatColumns + ` FROM bot_chats WHERE chat_id = $1 LIMIT 1`
	err := r.db.Get(&c, query, chatID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// ListActive returns chats the bot is still a member of
func (r *ChatRepo) ListActive() ([]domain.GroupChat, error) {
	var chats []domain.GroupChat
	query := `
		SELECT ` + chatColumns + `
		FROM bot_chats
		WHERE is_active = TRUE
		ORDER BY chat_title, added_at DESC
	`
	if err := r.db.Select(&chats, query); err != nil {
		return nil, err
	}
	return chats, nil
}

// Deactivate marks a chat as left. Rows are never deleted.
func (r *ChatRepo) Deactivate(chatID int64) error {
	query := `UPDATE bot_chats SET is_active = FALSE, updated_at = NOW() WHERE chat_id = $1`
	_, err := r.db.Exec(query, chatID)
	return err
}
