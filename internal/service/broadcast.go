package service

import (
	"context"
	"fmt"
	"time"

	"wishlist/internal/domain"
	"wishlist/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BroadcastService relays a message to one group chat or broadcasts it to every user
type BroadcastService struct {
	users     repository.UserRepository
	chats     repository.ChatRepository
	pending   repository.BroadcastRepository
	states    *WishService
	messenger Messenger
	logger    *zap.Logger
	delay     time.Duration
}

// NewBroadcastService creates a new broadcast service. delay is the pause between two broadcast sends.
func NewBroadcastService(
	users repository.UserRepository,
	chats repository.ChatRepository,
	pending repository.BroadcastRepository,
	states *WishService,
	messenger Messenger,
	logger *zap.Logger,
	delay time.Duration,
) *BroadcastService {
	return &BroadcastService{
		users:     users,
		chats:     chats,
		pending:   pending,
		states:    states,
		messenger: messenger,
		logger:    logger,
		delay:     delay,
	}
}

// BeginTalk offers the active group chats as relay targets
func (s *BroadcastService) BeginTalk(adminChatID int64) error {
	chats, err := s.chats.ListActive()
	if err != nil {
		return fmt.Errorf("failed to list chats: %w", err)
	}
	if len(chats) == 0 {
		return s.messenger.Send(adminChatID, msgNoChats)
	}

	rows := make([][]domain.Button, 0, len(chats))
	for _, chat := range chats {
		rows = append(rows, []domain.Button{{
			Text: chat.Icon() + " " + chat.DisplayTitle(),
			Data: domain.TalkSelectData(chat.ChatID),
		}})
	}
	return s.messenger.SendKeyboard(adminChatID, msgSelectChat, rows)
}

// SelectTarget puts the admin into talk_waiting for the chosen chat
func (s *BroadcastService) SelectTarget(adminChatID, target int64) error {
	chat, err := s.activeChat(target)
	if err != nil {
		return err
	}
	if err := s.states.SetState(adminChatID, domain.TalkWaiting(target)); err != nil {
		return err
	}
	return s.messenger.Send(adminChatID, msgRelayPrompt(chat.DisplayTitle()))
}

// Relay forwards the admin's message to the selected chat
func (s *BroadcastService) Relay(adminChatID, target int64, payload domain.Payload) error {
	if payload.IsCommand("/cancel") {
		if err := s.states.ResetState(adminChatID); err != nil {
			return err
		}
		return s.messenger.Send(adminChatID, msgRelayCancel)
	}

	chat, err := s.activeChat(target)
	if err != nil {
		return err
	}

	kind, ok := payload.Kind()
	if !ok {
		return ErrUnsupportedPayload
	}

	if err := s.messenger.SendPayload(target, payload); err != nil {
		s.logger.Warn("Failed to relay message",
			zap.Int64("admin_chat_id", adminChatID),
			zap.Int64("target_chat_id", target),
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	s.logger.Info("Message relayed",
		zap.Int64("admin_chat_id", adminChatID),
		zap.Int64("target_chat_id", target),
		zap.String("kind", string(kind)),
	)

	if err := s.states.ResetState(adminChatID); err != nil {
		return err
	}
	return s.messenger.Send(adminChatID, msgRelaySent(chat.DisplayTitle()))
}

// BeginBroadcast puts the admin into talkall_waiting
func (s *BroadcastService) BeginBroadcast(adminChatID int64) error {
	if err := s.states.SetState(adminChatID, domain.TalkAllWaiting()); err != nil {
		return err
	}
	return s.messenger.Send(adminChatID, msgBroadcastPrompt)
}

// Capture stores the admin's message as the pending broadcast and asks for confirmation.
// Nothing is delivered here.
func (s *BroadcastService) Capture(adminChatID int64, payload domain.Payload) error {
	if payload.IsCommand("/cancel") {
		return s.Discard(adminChatID)
	}

	if _, ok := payload.Kind(); !ok {
		return ErrUnsupportedPayload
	}

	recipients, err := s.recipients(adminChatID)
	if err != nil {
		return err
	}
	if len(recipients) == 0 {
		if err := s.states.ResetState(adminChatID); err != nil {
			return err
		}
		return ErrNoRecipients
	}

	if err := s.pending.SavePending(adminChatID, payload); err != nil {
		return fmt.Errorf("failed to save pending broadcast: %w", err)
	}

	rows := [][]domain.Button{{
		{Text: btnBroadcastConfirm, Data: domain.TalkAllConfirmData()},
		{Text: btnBroadcastCancel, Data: domain.TalkAllCancelData()},
	}}
	return s.messenger.SendKeyboard(adminChatID, msgConfirmBroadcast(len(recipients)), rows)
}

// Confirm delivers the pending broadcast to every user except the admin.
// A failed send is counted and never stops the remaining ones.
func (s *BroadcastService) Confirm(ctx context.Context, adminChatID int64) (domain.BroadcastResult, error) {
	var result domain.BroadcastResult

	// Claiming deletes the record, so a repeated confirm finds nothing
	pending, err := s.pending.ClaimPending(adminChatID)
	if err != nil {
		return result, fmt.Errorf("failed to load pending broadcast: %w", err)
	}
	if pending == nil {
		if err := s.states.ResetState(adminChatID); err != nil {
			return result, err
		}
		return result, ErrNoPendingBroadcast
	}

	recipients, err := s.recipients(adminChatID)
	if err != nil {
		return result, err
	}

	logger := s.logger.With(
		zap.String("broadcast_id", uuid.NewString()),
		zap.Int64("admin_chat_id", adminChatID),
	)
	logger.Info("Broadcast started", zap.Int("recipients", len(recipients)))

	if err := s.messenger.Send(adminChatID, msgBroadcastStarted(len(recipients))); err != nil {
		logger.Warn("Failed to send broadcast start notice", zap.Error(err))
	}

	for i, chatID := range recipients {
		if i > 0 && !s.wait(ctx) {
			result.Failed += len(recipients) - i
			logger.Warn("Broadcast interrupted", zap.Int("skipped", len(recipients)-i), zap.Error(ctx.Err()))
			break
		}
		if err := s.messenger.SendPayload(chatID, pending.Payload); err != nil {
			result.Failed++
			logger.Warn("Broadcast delivery failed", zap.Int64("chat_id", chatID), zap.Error(err))
			continue
		}
		result.Sent++
	}

	logger.Info("Broadcast finished",
		zap.Int("sent", result.Sent),
		zap.Int("failed", result.Failed),
	)

	if err := s.messenger.Send(adminChatID, msgBroadcastSummary(result)); err != nil {
		logger.Warn("Failed to send broadcast summary", zap.Error(err))
	}

	return result, s.states.ResetState(adminChatID)
}

// Discard drops the pending broadcast without sending anything
func (s *BroadcastService) Discard(adminChatID int64) error {
	if err := s.pending.DeletePending(adminChatID); err != nil {
		return fmt.Errorf("failed to delete pending broadcast: %w", err)
	}
	if err := s.states.ResetState(adminChatID); err != nil {
		return err
	}
	return s.messenger.Send(adminChatID, msgBroadcastCancelled)
}

func (s *BroadcastService) activeChat(chatID int64) (*domain.GroupChat, error) {
	chat, err := s.chats.Get(chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to get chat: %w", err)
	}
	if chat == nil || !chat.IsActive {
		return nil, ErrChatNotFound
	}
	return chat, nil
}

// recipients lists broadcast targets, never including the initiating admin
func (s *BroadcastService) recipients(adminChatID int64) ([]int64, error) {
	ids, err := s.users.RecipientChatIDs()
	if err != nil {
		return nil, fmt.Errorf("failed to list recipients: %w", err)
	}
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id != adminChatID {
			out = append(out, id)
		}
	}
	return out, nil
}

// wait pauses between sends and reports false when ctx is done
func (s *BroadcastService) wait(ctx context.Context) bool {
	if s.delay <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
