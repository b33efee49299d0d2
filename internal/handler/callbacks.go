package handler

import (
	"strings"
	"unicode"

	"wishlist/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Always acknowledge so the client stops the spinner
	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}

	chat := c.Chat()
	if chat == nil || callback.Message == nil {
		return nil
	}

	data := cleanCallbackData(callback.Data)
	h.logger.Info("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("id", callback.ID),
		zap.Int64("chat_id", chat.ID),
	)

	cb, err := domain.ParseCallback(data)
	if err != nil || cb.Kind == domain.CallbackUnknown {
		h.logger.Warn("Unhandled callback", zap.String("data", data), zap.Error(err))
		return nil
	}

	if err := h.messenger.DeleteMessage(chat.ID, callback.Message.ID); err != nil {
		h.logger.Warn("Failed to delete keyboard message", zap.Int64("chat_id", chat.ID), zap.Error(err))
	}

	return h.reply(chat.ID, h.dispatchCallback(chat.ID, cb))
}

func (h *Handler) dispatchCallback(chatID int64, cb domain.Callback) error {
	if cb.Kind == domain.CallbackChangeWish {
		return h.wishes.BeginChange(chatID, cb.Wish)
	}

	admin, err := h.users.IsAdmin(chatID)
	if err != nil {
		return err
	}
	if !admin {
		return h.messenger.Send(chatID, msgNoPermission)
	}

	switch cb.Kind {
	case domain.CallbackTalkSelect:
		return h.broadcasts.SelectTarget(chatID, cb.Target)
	case domain.CallbackTalkAllConfirm:
		_, err := h.broadcasts.Confirm(h.ctx, chatID)
		return err
	case domain.CallbackTalkAllCancel:
		return h.broadcasts.Discard(chatID)
	}
	return nil
}
