package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Button is an inline keyboard button carrying raw callback data
type Button struct {
	Text string
	Data string
}

// CallbackKind enumerates inline button actions
type CallbackKind int

const (
	CallbackUnknown CallbackKind = iota
	CallbackChangeWish
	CallbackTalkSelect
	CallbackTalkAllConfirm
	CallbackTalkAllCancel
)

const (
	callbackChangeWish     = "change_wish_"
	callbackTalkSelect     = "talk_select_"
	callbackTalkAllConfirm = "talkall_confirm"
	callbackTalkAllCancel  = "talkall_cancel"
)

// Callback is a decoded inline button press
type Callback struct {
	Kind   CallbackKind
	Wish   int
	Target int64
}

func ChangeWishData(n int) string       { return callbackChangeWish + strconv.Itoa(n) }
func TalkSelectData(chatID int64) string { return callbackTalkSelect + strconv.FormatInt(chatID, 10) }

func TalkAllConfirmData() string { return callbackTalkAllConfirm }
func TalkAllCancelData() string  { return callbackTalkAllCancel }

// ParseCallback decodes callback data produced by the helpers above
func ParseCallback(data string) (Callback, error) {
	switch {
	case data == callbackTalkAllConfirm:
		return Callback{Kind: CallbackTalkAllConfirm}, nil
	case data == callbackTalkAllCancel:
		return Callback{Kind: CallbackTalkAllCancel}, nil
	case strings.HasPrefix(data, callbackChangeWish):
		n, err := parseWishNumber(strings.TrimPrefix(data, callbackChangeWish))
		if err != nil {
			return Callback{}, fmt.Errorf("invalid callback %q: %w", data, err)
		}
		return Callback{Kind: CallbackChangeWish, Wish: n}, nil
	case strings.HasPrefix(data, callbackTalkSelect):
		target, err := strconv.ParseInt(strings.TrimPrefix(data, callbackTalkSelect), 10, 64)
		if err != nil {
			return Callback{}, fmt.Errorf("invalid callback %q: %w", data, err)
		}
		return Callback{Kind: CallbackTalkSelect, Target: target}, nil
	}
	return Callback{Kind: CallbackUnknown}, nil
}
