package repository

import (
	"wishlist/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	FindByChatID(chatID int64) (*domain.User, error)
	FindByHandle(handle string) (*domain.User, error)
	Create(chatID int64, handle string) error
	BindChatID(userID, chatID int64) error
	UpdateHandle(userID int64, handle string) error
	ReleaseHandle(handle string) error
	PreRegisterAdmin(handle string) error
	SetBlocked(userID int64, blocked bool) error
	SetAdmin(userID int64, admin bool) error
	List() ([]domain.User, error)
	AdminChatIDs() ([]int64, error)
	RecipientChatIDs() ([]int64, error)
}

// WishRepository defines conversation record operations
type WishRepository interface {
	Get(chatID int64) (*domain.Wishes, error)
	Initialize(chatID int64) error
	SetState(chatID int64, state string) error
	SavePoem(chatID int64, poem, next string) error
	SaveWish(chatID int64, n int, wish, next string) error
	ListWithUsers() ([]domain.UserWishes, error)
}

// ChatRepository defines group chat operations
type ChatRepository interface {
	Upsert(chat domain.GroupChat) error
	Touch(chatID int64, chatType, title string) error
	Get(chatID int64) (*domain.GroupChat, error)
	ListActive() ([]domain.GroupChat, error)
	Deactivate(chatID int64) error
}

// BroadcastRepository defines pending broadcast operations
type BroadcastRepository interface {
	SavePending(adminChatID int64, payload domain.Payload) error
	ClaimPending(adminChatID int64) (*domain.PendingBroadcast, error)
	DeletePending(adminChatID int64) error
}

// CommandLogRepository appends command audit records
type CommandLogRepository interface {
	Append(entry domain.CommandLogEntry) error
}
