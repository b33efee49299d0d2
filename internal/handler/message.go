package handler

import (
	"wishlist/internal/domain"
	"wishlist/internal/telegram"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleMessage handles text and media messages
func (h *Handler) handleMessage(c tele.Context) error {
	msg := c.Message()
	chat := c.Chat()
	if msg == nil || chat == nil {
		return nil
	}

	if chat.Type != tele.ChatPrivate {
		if err := h.membership.Touch(chat.ID, string(chat.Type), chat.Title); err != nil {
			h.logger.Warn("Failed to refresh group chat", zap.Int64("chat_id", chat.ID), zap.Error(err))
		}
		return nil
	}

	var handle string
	if sender := c.Sender(); sender != nil {
		handle = sender.Username
	}

	state, err := h.wishes.State(chat.ID)
	if err != nil {
		return h.reply(chat.ID, err)
	}

	switch state.Kind {
	case domain.StateTalkAllWaiting:
		return h.reply(chat.ID, h.broadcasts.Capture(chat.ID, telegram.PayloadFromMessage(msg)))
	case domain.StateTalkWaiting:
		return h.reply(chat.ID, h.broadcasts.Relay(chat.ID, state.Target, telegram.PayloadFromMessage(msg)))
	}

	if msg.Text == "" {
		h.logger.Debug("Media outside relay ignored", zap.Int64("chat_id", chat.ID))
		return nil
	}
	return h.reply(chat.ID, h.router.Dispatch(chat.ID, handle, msg.Text))
}
