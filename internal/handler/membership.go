package handler

import (
	"wishlist/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleMyChatMember reacts to the bot being added to or removed from a group
func (h *Handler) handleMyChatMember(c tele.Context) error {
	upd := c.ChatMember()
	if upd == nil || upd.Chat == nil || upd.NewChatMember == nil {
		return nil
	}
	// A user blocking or restarting the bot arrives here with their private chat
	if upd.Chat.Type == tele.ChatPrivate {
		return nil
	}

	change := membershipChange(upd)
	if err := h.membership.Apply(change); err != nil {
		h.logger.Error("Failed to apply membership change",
			zap.Int64("chat_id", change.ChatID),
			zap.String("status", string(change.NewStatus)),
			zap.Error(err),
		)
	}
	return nil
}

func membershipChange(upd *tele.ChatMemberUpdate) domain.MembershipChange {
	change := domain.MembershipChange{
		ChatID:    upd.Chat.ID,
		ChatType:  string(upd.Chat.Type),
		ChatTitle: upd.Chat.Title,
		NewStatus: domain.MemberStatus(upd.NewChatMember.Role),
	}
	if upd.Sender != nil {
		change.ActorID = upd.Sender.ID
		change.ActorHandle = upd.Sender.Username
	}
	return change
}
