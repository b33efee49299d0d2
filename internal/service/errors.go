package service

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrAlreadyBlocked     = errors.New("user already blocked")
	ErrNotBlocked         = errors.New("user not blocked")
	ErrAlreadyAdmin       = errors.New("user already admin")
	ErrNotAdmin           = errors.New("user not admin")
	ErrChatNotFound       = errors.New("chat not found")
	ErrUnsupportedPayload = errors.New("unsupported message type")
	ErrDeliveryFailed     = errors.New("delivery failed")
	ErrNoPendingBroadcast = errors.New("no pending broadcast")
	ErrNoRecipients       = errors.New("no broadcast recipients")
	ErrInvalidWishNumber  = errors.New("invalid wish number")
)
