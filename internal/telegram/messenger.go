package telegram

import (
	"fmt"
	"strconv"
	"time"

	"wishlist/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	// MaxMessageLength is the platform limit for a single text message
	MaxMessageLength = 4096
	chunkPause       = 100 * time.Millisecond
)

// Bot is the part of *tele.Bot the messenger needs
type Bot interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
	Delete(msg tele.Editable) error
	Leave(chat *tele.Chat) error
}

var _ Bot = (*tele.Bot)(nil)

// Messenger sends outbound messages through telebot
type Messenger struct {
	bot    Bot
	logger *zap.Logger
	pause  time.Duration
}

// NewMessenger creates a new messenger
func NewMessenger(bot Bot, logger *zap.Logger) *Messenger {
	return &Messenger{
		bot:    bot,
		logger: logger,
		pause:  chunkPause,
	}
}

// Send delivers an HTML text. Texts over MaxMessageLength go out in chunks.
func (m *Messenger) Send(chatID int64, text string) error {
	chunks := SplitText(text, MaxMessageLength)
	for i, chunk := range chunks {
		if i > 0 && m.pause > 0 {
			time.Sleep(m.pause)
		}
		if _, err := m.bot.Send(&tele.Chat{ID: chatID}, chunk, tele.ModeHTML); err != nil {
			return fmt.Errorf("failed to send message to %d: %w", chatID, err)
		}
	}
	return nil
}

// SendKeyboard delivers an HTML text with an inline keyboard
func (m *Messenger) SendKeyboard(chatID int64, text string, rows [][]domain.Button) error {
	markup := &tele.ReplyMarkup{InlineKeyboard: InlineKeyboard(rows)}
	if _, err := m.bot.Send(&tele.Chat{ID: chatID}, text, markup, tele.ModeHTML); err != nil {
		return fmt.Errorf("failed to send keyboard to %d: %w", chatID, err)
	}
	return nil
}

// SendPayload delivers the primary content of a captured message
func (m *Messenger) SendPayload(chatID int64, payload domain.Payload) error {
	what, ok := Sendable(payload)
	if !ok {
		return fmt.Errorf("payload has no content")
	}
	if _, err := m.bot.Send(&tele.Chat{ID: chatID}, what); err != nil {
		return fmt.Errorf("failed to send payload to %d: %w", chatID, err)
	}
	return nil
}

// DeleteMessage removes a message the bot sent earlier
func (m *Messenger) DeleteMessage(chatID int64, messageID int) error {
	msg := &tele.StoredMessage{MessageID: strconv.Itoa(messageID), ChatID: chatID}
	if err := m.bot.Delete(msg); err != nil {
		return fmt.Errorf("failed to delete message %d: %w", messageID, err)
	}
	return nil
}

// Leave makes the bot leave a group
func (m *Messenger) Leave(chatID int64) error {
	if err := m.bot.Leave(&tele.Chat{ID: chatID}); err != nil {
		return fmt.Errorf("failed to leave chat %d: %w", chatID, err)
	}
	m.logger.Info("Left chat", zap.Int64("chat_id", chatID))
	return nil
}

// InlineKeyboard converts buttons into raw callback buttons. Unique is left
// empty so presses arrive on tele.OnCallback with the data untouched.
func InlineKeyboard(rows [][]domain.Button) [][]tele.InlineButton {
	keyboard := make([][]tele.InlineButton, 0, len(rows))
	for _, row := range rows {
		buttons := make([]tele.InlineButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, tele.InlineButton{Text: b.Text, Data: b.Data})
		}
		keyboard = append(keyboard, buttons)
	}
	return keyboard
}

// SplitText cuts HTML text into pieces of at most limit characters. A piece
// ends after the last line break that fits, otherwise before an unfinished
// entity or tag, so every piece stays valid markup.
func SplitText(text string, limit int) []string {
	runes := []rune(text)
	if len(runes) <= limit {
		return []string{text}
	}
	chunks := make([]string, 0, len(runes)/limit+1)
	for len(runes) > limit {
		cut := splitPoint(runes[:limit])
		chunks = append(chunks, string(runes[:cut]))
		runes = runes[cut:]
	}
	if len(runes) > 0 {
		chunks = append(chunks, string(runes))
	}
	return chunks
}

func splitPoint(window []rune) int {
	for i := len(window) - 1; i > 0; i-- {
		if window[i] == '\n' {
			return i + 1
		}
	}
	for i := len(window) - 1; i >= 0; i-- {
		switch window[i] {
		case ';', '>':
			return len(window)
		case '&', '<':
			if i > 0 {
				return i
			}
			return len(window)
		}
	}
	return len(window)
}
