package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const msgGenericError = "⚠️ Произошла ошибка. Попробуйте позже."

// Admitter decides whether a private chat sender may continue
type Admitter interface {
	Admit(chatID int64, handle, text string) (bool, error)
}

// Notifier sends plain replies
type Notifier interface {
	Send(chatID int64, text string) error
}

// GateMiddleware runs the authorization and security gates for private
// messages and button presses. Group updates and membership changes pass through.
func GateMiddleware(gate Admitter, notifier Notifier, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.ChatMember() != nil {
				return next(c)
			}

			chat := c.Chat()
			if chat == nil || chat.Type != tele.ChatPrivate {
				return next(c)
			}

			var handle string
			if sender := c.Sender(); sender != nil {
				handle = sender.Username
			}

			text := c.Text()
			if cb := c.Callback(); cb != nil {
				text = cb.Data
			}

			allowed, err := gate.Admit(chat.ID, handle, text)
			if err != nil {
				logger.Error("Failed to admit sender in middleware",
					zap.Int64("chat_id", chat.ID),
					zap.String("username", handle),
					zap.Error(err),
				)
				return notifier.Send(chat.ID, msgGenericError)
			}
			if !allowed {
				return nil
			}

			return next(c)
		}
	}
}
