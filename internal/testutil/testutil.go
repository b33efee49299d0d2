package testutil

import (
	"time"

	"wishlist/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user bound to chatID
func NewTestUser(id, chatID int64, handle string, admin, blocked bool) *domain.User {
	return &domain.User{
		ID:        id,
		ChatID:    &chatID,
		Handle:    &handle,
		IsAdmin:   admin,
		IsBlocked: blocked,
		CreatedAt: time.Now(),
	}
}

// NewPreRegisteredUser creates a test user known only by handle
func NewPreRegisteredUser(id int64, handle string, admin bool) *domain.User {
	return &domain.User{
		ID:        id,
		Handle:    &handle,
		IsAdmin:   admin,
		CreatedAt: time.Now(),
	}
}

// NewTestWishes creates a conversation record in the given state
func NewTestWishes(chatID int64, state domain.State, poem string, wishes ...string) *domain.Wishes {
	w := &domain.Wishes{
		ChatID:    chatID,
		State:     state.String(),
		CreatedAt: time.Now(),
	}
	if poem != "" {
		w.Poem = &poem
	}
	slots := []**string{&w.Wish1, &w.Wish2, &w.Wish3}
	for i, wish := range wishes {
		if i >= len(slots) {
			break
		}
		if wish != "" {
			v := wish
			*slots[i] = &v
		}
	}
	return w
}

// NewTestChat creates an active group chat
func NewTestChat(chatID int64, title string) *domain.GroupChat {
	return &domain.GroupChat{
		ChatID:    chatID,
		Type:      "group",
		Title:     &title,
		IsActive:  true,
		AddedAt:   time.Now(),
		UpdatedAt: time.Now(),
	}
}
