package domain

import "time"

// GroupChat is a group or channel the bot has joined
type GroupChat struct {
	ChatID          int64     `db:"chat_id"`
	Type            string    `db:"chat_type"`
	Title           *string   `db:"chat_title"`
	AddedByUserID   *int64    `db:"added_by_user_id"`
	AddedByUsername *string   `db:"added_by_username"`
	IsActive        bool      `db:"is_active"`
	AddedAt         time.Time `db:"added_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

// DisplayTitle returns the chat title or its id
func (c GroupChat) DisplayTitle() string {
	if c.Title != nil && *c.Title != "" {
		return *c.Title
	}
	return "ID: " + formatChatID(c.ChatID)
}

// Icon returns an emoji describing the chat kind
func (c GroupChat) Icon() string {
	switch c.Type {
	case "group", "supergroup":
		return "👥"
	case "channel":
		return "📢"
	case "private":
		return "👤"
	}
	return "💬"
}

// MemberStatus is the bot's membership status after a change
type MemberStatus string

const (
	StatusMember        MemberStatus = "member"
	StatusAdministrator MemberStatus = "administrator"
	StatusLeft          MemberStatus = "left"
	StatusKicked        MemberStatus = "kicked"
)

// Joined reports whether the status means the bot is in the chat
func (s MemberStatus) Joined() bool {
	return s == StatusMember || s == StatusAdministrator
}

// Removed reports whether the status means the bot is out of the chat
func (s MemberStatus) Removed() bool {
	return s == StatusLeft || s == StatusKicked
}

// MembershipChange describes the bot being added to or removed from a chat
type MembershipChange struct {
	ChatID      int64
	ChatType    string
	ChatTitle   string
	ActorID     int64
	ActorHandle string
	NewStatus   MemberStatus
}
