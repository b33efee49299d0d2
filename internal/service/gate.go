package service

import (
	"fmt"

	"wishlist/internal/domain"
	"wishlist/internal/repository"

	"go.uber.org/zap"
)

// GateService decides whether an incoming private message may be processed
type GateService struct {
	users     repository.UserRepository
	logs      repository.CommandLogRepository
	messenger Messenger
	logger    *zap.Logger
}

// NewGateService creates a new gate service
func NewGateService(
	users repository.UserRepository,
	logs repository.CommandLogRepository,
	messenger Messenger,
	logger *zap.Logger,
) *GateService {
	return &GateService{
		users:     users,
		logs:      logs,
		messenger: messenger,
		logger:    logger,
	}
}

// Admit registers or refreshes the sender and reports whether processing may continue.
// Senders without a handle and blocked users are stopped.
func (s *GateService) Admit(chatID int64, handle, text string) (bool, error) {
	if handle == "" {
		if err := s.messenger.Send(chatID, msgHandleRequired); err != nil {
			s.logger.Warn("Failed to send handle instructions", zap.Int64("chat_id", chatID), zap.Error(err))
		}
		return false, nil
	}

	user, err := s.resolve(chatID, handle)
	if err != nil {
		return false, err
	}

	if user.IsBlocked {
		s.logger.Info("Blocked user attempt",
			zap.Int64("chat_id", chatID),
			zap.String("username", handle),
		)
		entry := domain.CommandLogEntry{
			UserID:  chatID,
			Handle:  handle,
			Command: domain.BlockedPrefix + text,
		}
		if err := s.logs.Append(entry); err != nil {
			s.logger.Error("Failed to log blocked attempt", zap.Int64("chat_id", chatID), zap.Error(err))
		}
		return false, nil
	}

	return true, nil
}

// resolve returns the user bound to chatID, registering or renaming it as needed
func (s *GateService) resolve(chatID int64, handle string) (*domain.User, error) {
	user, err := s.users.FindByChatID(chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if user == nil {
		return s.register(chatID, handle)
	}

	if user.Handle == nil || *user.Handle != handle {
		if err := s.takeOver(user, handle); err != nil {
			return nil, err
		}
		s.logger.Info("User handle changed",
			zap.Int64("chat_id", chatID),
			zap.String("username", handle),
		)
	}

	return user, nil
}

// takeOver moves handle to user. Handles are unique, so a stale holder gives
// it up first. Admin rights of a pre-registered holder pass to user.
func (s *GateService) takeOver(user *domain.User, handle string) error {
	holder, err := s.users.FindByHandle(handle)
	if err != nil {
		return fmt.Errorf("failed to find user by handle: %w", err)
	}

	if holder != nil && holder.ID != user.ID {
		if err := s.users.ReleaseHandle(handle); err != nil {
			return fmt.Errorf("failed to release handle: %w", err)
		}
		if holder.HasChat() {
			s.logger.Warn("Handle taken from another user",
				zap.Int64("previous_chat_id", *holder.ChatID),
				zap.String("username", handle),
			)
		}
	}

	if err := s.users.UpdateHandle(user.ID, handle); err != nil {
		return fmt.Errorf("failed to update handle: %w", err)
	}
	user.Handle = &handle

	if holder != nil && !holder.HasChat() && holder.IsAdmin && !user.IsAdmin {
		if err := s.users.SetAdmin(user.ID, true); err != nil {
			return fmt.Errorf("failed to grant admin: %w", err)
		}
		user.IsAdmin = true
		s.logger.Info("Pre-registered admin rights merged", zap.String("username", handle))
	}
	return nil
}

func (s *GateService) register(chatID int64, handle string) (*domain.User, error) {
	holder, err := s.users.FindByHandle(handle)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by handle: %w", err)
	}

	if holder != nil && !holder.HasChat() {
		if err := s.users.BindChatID(holder.ID, chatID); err != nil {
			return nil, fmt.Errorf("failed to bind chat: %w", err)
		}
		holder.ChatID = &chatID
		s.logger.Info("Pre-registered user bound",
			zap.Int64("chat_id", chatID),
			zap.String("username", handle),
		)
		return holder, nil
	}

	if holder != nil {
		if err := s.users.ReleaseHandle(handle); err != nil {
			return nil, fmt.Errorf("failed to release handle: %w", err)
		}
	}

	if err := s.users.Create(chatID, handle); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("New user registered",
		zap.Int64("chat_id", chatID),
		zap.String("username", handle),
	)

	return &domain.User{ChatID: &chatID, Handle: &handle}, nil
}
