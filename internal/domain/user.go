package domain

import (
	"strconv"
	"time"
)

// User represents a bot user
type User struct {
	ID        int64     `db:"id"`
	ChatID    *int64    `db:"chat_id"`
	Handle    *string   `db:"username"`
	IsAdmin   bool      `db:"is_admin"`
	IsBlocked bool      `db:"is_locked"`
	CreatedAt time.Time `db:"added_at"`
}

// DisplayName returns "@handle" or the chat id when no handle is known
func (u User) DisplayName() string {
	if u.Handle != nil && *u.Handle != "" {
		return "@" + *u.Handle
	}
	if u.ChatID != nil {
		return "ID: " + strconv.FormatInt(*u.ChatID, 10)
	}
	return "ID: ?"
}

// HasChat reports whether the user has been bound to a chat
func (u User) HasChat() bool {
	return u.ChatID != nil
}

// CommandLogEntry is an append-only audit record of a command attempt
type CommandLogEntry struct {
	UserID    int64     `db:"user_id"`
	Handle    string    `db:"username"`
	Command   string    `db:"command"`
	CreatedAt time.Time `db:"created_at"`
}

// BlockedPrefix marks command log entries written for blocked users
const BlockedPrefix = "[BLOCKED] "
