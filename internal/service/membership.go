package service

import (
	"fmt"

	"wishlist/internal/domain"
	"wishlist/internal/repository"

	"go.uber.org/zap"
)

// MembershipService guards which group chats the bot may stay in
type MembershipService struct {
	users     repository.UserRepository
	chats     repository.ChatRepository
	messenger Messenger
	logger    *zap.Logger
}

// NewMembershipService creates a new membership service
func NewMembershipService(
	users repository.UserRepository,
	chats repository.ChatRepository,
	messenger Messenger,
	logger *zap.Logger,
) *MembershipService {
	return &MembershipService{
		users:     users,
		chats:     chats,
		messenger: messenger,
		logger:    logger,
	}
}

// Apply reacts to the bot being added to or removed from a group
func (s *MembershipService) Apply(change domain.MembershipChange) error {
	switch {
	case change.NewStatus.Joined():
		return s.join(change)
	case change.NewStatus.Removed():
		if err := s.chats.Deactivate(change.ChatID); err != nil {
			return fmt.Errorf("failed to deactivate chat: %w", err)
		}
		s.logger.Info("Bot removed from chat",
			zap.Int64("chat_id", change.ChatID),
			zap.String("title", change.ChatTitle),
		)
	}
	return nil
}

// Touch refreshes the type and title of a group the bot already knows
func (s *MembershipService) Touch(chatID int64, chatType, title string) error {
	if err := s.chats.Touch(chatID, chatType, title); err != nil {
		return fmt.Errorf("failed to refresh chat: %w", err)
	}
	return nil
}

func (s *MembershipService) join(change domain.MembershipChange) error {
	actor, err := s.users.FindByChatID(change.ActorID)
	if err != nil {
		return fmt.Errorf("failed to find user: %w", err)
	}

	if actor == nil || !actor.IsAdmin {
		s.logger.Warn("Non-admin tried to add bot to chat",
			zap.Int64("user_id", change.ActorID),
			zap.String("username", change.ActorHandle),
			zap.Int64("chat_id", change.ChatID),
			zap.String("title", change.ChatTitle),
		)
		if err := s.messenger.Leave(change.ChatID); err != nil {
			s.logger.Error("Failed to leave unauthorized chat", zap.Int64("chat_id", change.ChatID), zap.Error(err))
		}
		if err := s.messenger.Send(change.ActorID, msgAddNotAllowed); err != nil {
			s.logger.Warn("Failed to notify user about insufficient rights", zap.Int64("user_id", change.ActorID), zap.Error(err))
		}
		return nil
	}

	chat := domain.GroupChat{
		ChatID:          change.ChatID,
		Type:            change.ChatType,
		Title:           optional(change.ChatTitle),
		AddedByUserID:   &change.ActorID,
		AddedByUsername: optional(change.ActorHandle),
		IsActive:        true,
	}
	if err := s.chats.Upsert(chat); err != nil {
		return fmt.Errorf("failed to save chat: %w", err)
	}

	s.logger.Info("Bot added to chat",
		zap.Int64("chat_id", change.ChatID),
		zap.String("title", change.ChatTitle),
		zap.String("added_by", change.ActorHandle),
	)

	if err := s.messenger.Send(change.ChatID, msgGroupGreeting); err != nil {
		s.logger.Warn("Failed to greet chat", zap.Int64("chat_id", change.ChatID), zap.Error(err))
	}
	if err := s.messenger.Send(change.ActorID, msgBotAdded(chat.DisplayTitle())); err != nil {
		s.logger.Warn("Failed to confirm chat add", zap.Int64("user_id", change.ActorID), zap.Error(err))
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
