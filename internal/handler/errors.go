package handler

import (
	"errors"

	"wishlist/internal/service"

	"go.uber.org/zap"
)

// replyFor maps an expected service error to its user reply.
// ok is false for infrastructure errors.
func replyFor(err error, handle string) (msg string, ok bool) {
	switch {
	case errors.Is(err, service.ErrUnsupportedPayload):
		return msgUnsupportedPayload, true
	case errors.Is(err, service.ErrChatNotFound):
		return msgChatNotFound, true
	case errors.Is(err, service.ErrDeliveryFailed):
		return msgDeliveryFailed, true
	case errors.Is(err, service.ErrNoRecipients):
		return msgNoRecipients, true
	case errors.Is(err, service.ErrNoPendingBroadcast):
		return msgNoPending, true
	case errors.Is(err, service.ErrInvalidWishNumber):
		return msgInvalidWishNumber, true
	case errors.Is(err, service.ErrUserNotFound):
		return msgUserNotFound(handle), true
	case errors.Is(err, service.ErrAlreadyBlocked):
		return msgAlreadyBlocked(handle), true
	case errors.Is(err, service.ErrNotBlocked):
		return msgNotBlocked(handle), true
	case errors.Is(err, service.ErrAlreadyAdmin):
		return msgAlreadyAdmin(handle), true
	case errors.Is(err, service.ErrNotAdmin):
		return msgNotAdmin(handle), true
	}
	return "", false
}

// settle answers an expected service error and hands anything else back
func (h *Handler) settle(chatID int64, handle string, err error) error {
	if err == nil {
		return nil
	}
	if msg, ok := replyFor(err, handle); ok {
		h.logger.Debug("Request refused", zap.Int64("chat_id", chatID), zap.Error(err))
		return h.messenger.Send(chatID, msg)
	}
	return err
}

// reply is settle for paths outside the router: infrastructure errors
// are logged and answered with a generic apology.
func (h *Handler) reply(chatID int64, err error) error {
	err = h.settle(chatID, "", err)
	if err == nil {
		return nil
	}
	h.logger.Error("Failed to process update", zap.Int64("chat_id", chatID), zap.Error(err))
	return h.messenger.Send(chatID, msgGenericError)
}
