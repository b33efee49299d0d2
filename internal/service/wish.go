package service

import (
	"fmt"

	"wishlist/internal/domain"
	"wishlist/internal/repository"

	"go.uber.org/zap"
)

// AdminLister provides the chat ids that receive wish change notices
type AdminLister interface {
	AdminChatIDs() ([]int64, error)
}

// WishService drives the wish collection dialogue
type WishService struct {
	wishes    repository.WishRepository
	admins    AdminLister
	messenger Messenger
	logger    *zap.Logger
}

// NewWishService creates a new wish service
func NewWishService(
	wishes repository.WishRepository,
	admins AdminLister,
	messenger Messenger,
	logger *zap.Logger,
) *WishService {
	return &WishService{
		wishes:    wishes,
		admins:    admins,
		messenger: messenger,
		logger:    logger,
	}
}

// State returns the current conversation state. A missing record is StateStart.
func (s *WishService) State(chatID int64) (domain.State, error) {
	_, state, err := s.load(chatID)
	return state, err
}

// SetState stores a new conversation state
func (s *WishService) SetState(chatID int64, state domain.State) error {
	if err := s.wishes.SetState(chatID, state.String()); err != nil {
		return fmt.Errorf("failed to set state: %w", err)
	}
	return nil
}

// ResetState returns the chat to wishes_collected
func (s *WishService) ResetState(chatID int64) error {
	return s.SetState(chatID, domain.WishesCollected())
}

// Start handles /start
func (s *WishService) Start(chatID int64) error {
	rec, err := s.wishes.Get(chatID)
	if err != nil {
		return fmt.Errorf("failed to get wishes: %w", err)
	}

	if rec != nil && rec.HasPoem() {
		if rec.HasWishes() {
			return s.ShowWishes(chatID)
		}
		if err := s.SetState(chatID, domain.WaitingForWish(1)); err != nil {
			return err
		}
		return s.messenger.Send(chatID, msgPoemRemembered)
	}

	if err := s.wishes.Initialize(chatID); err != nil {
		return fmt.Errorf("failed to initialize wishes: %w", err)
	}

	s.logger.Info("Wish dialogue started", zap.Int64("chat_id", chatID))

	if err := s.messenger.Send(chatID, msgWelcome); err != nil {
		return err
	}
	return s.messenger.Send(chatID, msgPoemPrompt)
}

// ShowWishes sends the user's wishes with change buttons
func (s *WishService) ShowWishes(chatID int64) error {
	rec, err := s.wishes.Get(chatID)
	if err != nil {
		return fmt.Errorf("failed to get wishes: %w", err)
	}
	if rec == nil || !rec.HasWishes() {
		return s.messenger.Send(chatID, msgNoWishesYet)
	}
	return s.messenger.SendKeyboard(chatID, formatWishes(rec), changeWishKeyboard())
}

// BeginChange moves the chat into changing_wish_n and asks for the new text
func (s *WishService) BeginChange(chatID int64, n int) error {
	if !domain.ValidWishNumber(n) {
		return ErrInvalidWishNumber
	}
	if err := s.SetState(chatID, domain.ChangingWish(n)); err != nil {
		return err
	}
	return s.messenger.Send(chatID, msgChangeWishPrompt(n))
}

// SendAllWishes sends every user's wishes to an administrator
func (s *WishService) SendAllWishes(chatID int64) error {
	list, err := s.wishes.ListWithUsers()
	if err != nil {
		return fmt.Errorf("failed to list wishes: %w", err)
	}
	if len(list) == 0 {
		return s.messenger.Send(chatID, msgNoUsers)
	}
	return s.messenger.Send(chatID, formatAllWishes(list))
}

// SendAllPoems sends every user's poem to an administrator
func (s *WishService) SendAllPoems(chatID int64) error {
	list, err := s.wishes.ListWithUsers()
	if err != nil {
		return fmt.Errorf("failed to list poems: %w", err)
	}
	if len(list) == 0 {
		return s.messenger.Send(chatID, msgNoUsers)
	}
	return s.messenger.Send(chatID, formatPoems(list))
}

// HandleText advances the dialogue with free text
func (s *WishService) HandleText(chatID int64, handle, text string) error {
	rec, state, err := s.load(chatID)
	if err != nil {
		return err
	}

	if text == "/cancel" && state.Kind == domain.StateChangingWish {
		if err := s.ResetState(chatID); err != nil {
			return err
		}
		return s.messenger.Send(chatID, msgActionCancel)
	}

	switch state.Kind {
	case domain.StateWaitingPoem:
		return s.acceptPoem(chatID, text)
	case domain.StateWaitingWish:
		return s.acceptWish(chatID, state.Wish, text)
	case domain.StateChangingWish:
		return s.changeWish(chatID, handle, rec, state.Wish, text)
	case domain.StateStart:
		return s.messenger.Send(chatID, msgStartHint)
	case domain.StateWishesCollected:
		return s.messenger.Send(chatID, msgWishesHint)
	}

	s.logger.Debug("Free text ignored",
		zap.Int64("chat_id", chatID),
		zap.String("state", state.String()),
	)
	return nil
}

func (s *WishService) acceptPoem(chatID int64, text string) error {
	if !domain.IsPoem(text) {
		return s.messenger.Send(chatID, msgNotAPoem)
	}

	next := domain.WaitingForWish(1)
	if err := s.wishes.SavePoem(chatID, text, next.String()); err != nil {
		return fmt.Errorf("failed to save poem: %w", err)
	}
	return s.messenger.Send(chatID, wishPrompts[1])
}

func (s *WishService) acceptWish(chatID int64, n int, text string) error {
	if !domain.IsValidWish(text) {
		return s.messenger.Send(chatID, msgInvalidWish())
	}

	next := domain.WishesCollected()
	reply := msgWishesCollected
	if n < domain.WishSlots {
		next = domain.WaitingForWish(n + 1)
		reply = wishPrompts[n+1]
	}

	if err := s.wishes.SaveWish(chatID, n, text, next.String()); err != nil {
		return fmt.Errorf("failed to save wish %d: %w", n, err)
	}
	return s.messenger.Send(chatID, reply)
}

func (s *WishService) changeWish(chatID int64, handle string, rec *domain.Wishes, n int, text string) error {
	if !domain.IsValidWish(text) {
		return s.messenger.Send(chatID, msgInvalidWish())
	}

	var old string
	if rec != nil {
		old = rec.Wish(n)
	}

	if err := s.wishes.SaveWish(chatID, n, text, domain.WishesCollected().String()); err != nil {
		return fmt.Errorf("failed to save wish %d: %w", n, err)
	}

	s.notifyAdmins(msgWishChangeNotice(handle, old, text))

	return s.messenger.Send(chatID, msgWishChanged)
}

// notifyAdmins sends one notice per administrator. Failures are only logged.
func (s *WishService) notifyAdmins(text string) {
	ids, err := s.admins.AdminChatIDs()
	if err != nil {
		s.logger.Error("Failed to list admins", zap.Error(err))
		return
	}
	for _, id := range ids {
		if err := s.messenger.Send(id, text); err != nil {
			s.logger.Warn("Failed to notify admin", zap.Int64("chat_id", id), zap.Error(err))
		}
	}
}

func (s *WishService) load(chatID int64) (*domain.Wishes, domain.State, error) {
	rec, err := s.wishes.Get(chatID)
	if err != nil {
		return nil, domain.State{}, fmt.Errorf("failed to get wishes: %w", err)
	}
	if rec == nil {
		return nil, domain.Start(), nil
	}
	state, err := domain.ParseState(rec.State)
	if err != nil {
		return nil, domain.State{}, err
	}
	return rec, state, nil
}
