package service

import (
	"wishlist/internal/domain"
)

// Messenger is the outbound messaging capability the services depend on
type Messenger interface {
	// Send delivers an HTML formatted text, splitting it when too long
	Send(chatID int64, text string) error
	// SendKeyboard delivers a text with an inline keyboard
	SendKeyboard(chatID int64, text string, rows [][]domain.Button) error
	// SendPayload delivers the primary content of a captured message verbatim
	SendPayload(chatID int64, payload domain.Payload) error
	DeleteMessage(chatID int64, messageID int) error
	Leave(chatID int64) error
}
