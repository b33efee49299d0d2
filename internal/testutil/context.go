package testutil

import (
	tele "gopkg.in/telebot.v3"
)

// FakeContext is a telebot context backed by plain fields. Only the
// accessors used by the handlers and middleware are implemented; any
// other method panics through the nil embedded interface.
type FakeContext struct {
	tele.Context

	Msg       *tele.Message
	User      *tele.User
	ChatValue *tele.Chat
	Cb        *tele.Callback
	Member    *tele.ChatMemberUpdate
	Responded int
}

// NewPrivateText builds a private text message context
func NewPrivateText(chatID int64, handle, text string) *FakeContext {
	chat := &tele.Chat{ID: chatID, Type: tele.ChatPrivate}
	user := &tele.User{ID: chatID, Username: handle}
	return &FakeContext{
		Msg:       &tele.Message{ID: 1, Chat: chat, Sender: user, Text: text},
		User:      user,
		ChatValue: chat,
	}
}

// NewCallback builds a button press context on a private message
func NewCallback(chatID int64, handle, data string, messageID int) *FakeContext {
	chat := &tele.Chat{ID: chatID, Type: tele.ChatPrivate}
	user := &tele.User{ID: chatID, Username: handle}
	msg := &tele.Message{ID: messageID, Chat: chat}
	return &FakeContext{
		Msg:       msg,
		User:      user,
		ChatValue: chat,
		Cb:        &tele.Callback{ID: "cb-1", Sender: user, Message: msg, Data: data},
	}
}

func (c *FakeContext) Message() *tele.Message             { return c.Msg }
func (c *FakeContext) Sender() *tele.User                 { return c.User }
func (c *FakeContext) Chat() *tele.Chat                   { return c.ChatValue }
func (c *FakeContext) Callback() *tele.Callback           { return c.Cb }
func (c *FakeContext) ChatMember() *tele.ChatMemberUpdate { return c.Member }

func (c *FakeContext) Text() string {
	if c.Msg == nil {
		return ""
	}
	if c.Msg.Caption != "" {
		return c.Msg.Caption
	}
	return c.Msg.Text
}

func (c *FakeContext) Respond(resp ...*tele.CallbackResponse) error {
	c.Responded++
	return nil
}
