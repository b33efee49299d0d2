package middleware

import (
	"runtime/debug"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// RecoverMiddleware catches panics in handlers and prevents the bot from crashing.
// Private chats get a generic apology.
func RecoverMiddleware(notifier Notifier, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				err = nil

				chat := c.Chat()
				var chatID int64
				if chat != nil {
					chatID = chat.ID
				}
				logger.Error("Panic recovered",
					zap.Any("panic", r),
					zap.Int64("chat_id", chatID),
					zap.String("stack", string(debug.Stack())),
				)

				if chat != nil && chat.Type == tele.ChatPrivate {
					if sendErr := notifier.Send(chat.ID, msgGenericError); sendErr != nil {
						logger.Warn("Failed to send apology", zap.Int64("chat_id", chat.ID), zap.Error(sendErr))
					}
				}
			}()
			return next(c)
		}
	}
}
