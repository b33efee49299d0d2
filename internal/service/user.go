package service

import (
	"fmt"

	"wishlist/internal/domain"
	"wishlist/internal/repository"

	"go.uber.org/zap"
)

// UserService handles administrator and moderation operations
type UserService struct {
	users     repository.UserRepository
	messenger Messenger
	logger    *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(users repository.UserRepository, messenger Messenger, logger *zap.Logger) *UserService {
	return &UserService{
		users:     users,
		messenger: messenger,
		logger:    logger,
	}
}

// IsAdmin checks if the user bound to chatID is an administrator
func (s *UserService) IsAdmin(chatID int64) (bool, error) {
	user, err := s.users.FindByChatID(chatID)
	if err != nil {
		return false, fmt.Errorf("failed to find user: %w", err)
	}
	return user != nil && user.IsAdmin, nil
}

// AdminChatIDs returns chat ids of all reachable administrators
func (s *UserService) AdminChatIDs() ([]int64, error) {
	return s.users.AdminChatIDs()
}

// Ban blocks the user owning handle. Blocking also revokes admin rights.
func (s *UserService) Ban(handle string) error {
	user, err := s.find(handle)
	if err != nil {
		return err
	}
	if user.IsBlocked {
		return ErrAlreadyBlocked
	}
	if err := s.users.SetBlocked(user.ID, true); err != nil {
		return fmt.Errorf("failed to block user: %w", err)
	}
	s.logger.Info("User blocked", zap.String("username", handle))
	return nil
}

// Unban unblocks the user owning handle
func (s *UserService) Unban(handle string) error {
	user, err := s.find(handle)
	if err != nil {
		return err
	}
	if !user.IsBlocked {
		return ErrNotBlocked
	}
	if err := s.users.SetBlocked(user.ID, false); err != nil {
		return fmt.Errorf("failed to unblock user: %w", err)
	}
	s.logger.Info("User unblocked", zap.String("username", handle))
	return nil
}

// GrantAdmin promotes the user owning handle and notifies them when reachable
func (s *UserService) GrantAdmin(handle string) error {
	user, err := s.find(handle)
	if err != nil {
		return err
	}
	if user.IsAdmin {
		return ErrAlreadyAdmin
	}
	if err := s.users.SetAdmin(user.ID, true); err != nil {
		return fmt.Errorf("failed to grant admin: %w", err)
	}
	s.logger.Info("Admin granted", zap.String("username", handle))

	if user.HasChat() {
		if err := s.messenger.Send(*user.ChatID, msgAdminGranted); err != nil {
			s.logger.Warn("Failed to notify new admin",
				zap.Int64("chat_id", *user.ChatID),
				zap.Error(err),
			)
		}
	}
	return nil
}

// RevokeAdmin demotes the user owning handle
func (s *UserService) RevokeAdmin(handle string) error {
	user, err := s.find(handle)
	if err != nil {
		return err
	}
	if !user.IsAdmin {
		return ErrNotAdmin
	}
	if err := s.users.SetAdmin(user.ID, false); err != nil {
		return fmt.Errorf("failed to revoke admin: %w", err)
	}
	s.logger.Info("Admin revoked", zap.String("username", handle))
	return nil
}

// SendUserList sends the registered user list to chatID
func (s *UserService) SendUserList(chatID int64) error {
	users, err := s.users.List()
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}
	if len(users) == 0 {
		return s.messenger.Send(chatID, msgNoUsers)
	}
	return s.messenger.Send(chatID, formatUsers(users))
}

// PreRegisterAdmins makes sure every configured handle exists as an administrator
func (s *UserService) PreRegisterAdmins(handles []string) error {
	for _, handle := range handles {
		if err := s.users.PreRegisterAdmin(handle); err != nil {
			return fmt.Errorf("failed to pre-register admin %s: %w", handle, err)
		}
		s.logger.Info("Admin pre-registered", zap.String("username", handle))
	}
	return nil
}

func (s *UserService) find(handle string) (*domain.User, error) {
	user, err := s.users.FindByHandle(handle)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
