package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// StateKind enumerates the conversation modes a user can be in
type StateKind int

const (
	StateStart StateKind = iota
	StateWaitingPoem
	StateWaitingWish
	StateWishesCollected
	StateChangingWish
	StateTalkWaiting
	StateTalkAllWaiting
)

// WishSlots is the number of wishes a user can make
const WishSlots = 3

const (
	tokenStart           = "start"
	tokenWaitingPoem     = "waiting_for_poem"
	tokenWaitingWish     = "waiting_for_wish"
	tokenWishesCollected = "wishes_collected"
	tokenChangingWish    = "changing_wish_"
	tokenTalkWaiting     = "talk_waiting_"
	tokenTalkAllWaiting  = "talkall_waiting"
)

// State is the persisted conversation state. Wish is set for
// StateWaitingWish and StateChangingWish, Target for StateTalkWaiting.
type State struct {
	Kind   StateKind
	Wish   int
	Target int64
}

func Start() State           { return State{Kind: StateStart} }
func WaitingForPoem() State  { return State{Kind: StateWaitingPoem} }
func WishesCollected() State { return State{Kind: StateWishesCollected} }
func TalkAllWaiting() State  { return State{Kind: StateTalkAllWaiting} }

func WaitingForWish(n int) State { return State{Kind: StateWaitingWish, Wish: n} }
func ChangingWish(n int) State   { return State{Kind: StateChangingWish, Wish: n} }

func TalkWaiting(target int64) State { return State{Kind: StateTalkWaiting, Target: target} }

// String encodes the state into its stored token
func (s State) String() string {
	switch s.Kind {
	case StateWaitingPoem:
		return tokenWaitingPoem
	case StateWaitingWish:
		return tokenWaitingWish + strconv.Itoa(s.Wish)
	case StateWishesCollected:
		return tokenWishesCollected
	case StateChangingWish:
		return tokenChangingWish + strconv.Itoa(s.Wish)
	case StateTalkWaiting:
		return tokenTalkWaiting + strconv.FormatInt(s.Target, 10)
	case StateTalkAllWaiting:
		return tokenTalkAllWaiting
	default:
		return tokenStart
	}
}

// Transient reports whether the state only awaits a single follow-up message
func (s State) Transient() bool {
	switch s.Kind {
	case StateChangingWish, StateTalkWaiting, StateTalkAllWaiting:
		return true
	}
	return false
}

// ParseState decodes a stored state token. An empty token is StateStart.
func ParseState(token string) (State, error) {
	token = strings.TrimSpace(token)

	switch token {
	case "", tokenStart:
		return Start(), nil
	case tokenWaitingPoem:
		return WaitingForPoem(), nil
	case tokenWishesCollected:
		return WishesCollected(), nil
	case tokenTalkAllWaiting:
		return TalkAllWaiting(), nil
	}

	switch {
	case strings.HasPrefix(token, tokenChangingWish):
		n, err := parseWishNumber(strings.TrimPrefix(token, tokenChangingWish))
		if err != nil {
			return State{}, fmt.Errorf("invalid state %q: %w", token, err)
		}
		return ChangingWish(n), nil
	case strings.HasPrefix(token, tokenWaitingWish):
		n, err := parseWishNumber(strings.TrimPrefix(token, tokenWaitingWish))
		if err != nil {
			return State{}, fmt.Errorf("invalid state %q: %w", token, err)
		}
		return WaitingForWish(n), nil
	case strings.HasPrefix(token, tokenTalkWaiting):
		target, err := strconv.ParseInt(strings.TrimPrefix(token, tokenTalkWaiting), 10, 64)
		if err != nil {
			return State{}, fmt.Errorf("invalid state %q: %w", token, err)
		}
		return TalkWaiting(target), nil
	}

	return State{}, fmt.Errorf("unknown state %q", token)
}

// ValidWishNumber reports whether n addresses an existing wish slot
func ValidWishNumber(n int) bool {
	return n >= 1 && n <= WishSlots
}

func parseWishNumber(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if !ValidWishNumber(n) {
		return 0, fmt.Errorf("wish number %d out of range", n)
	}
	return n, nil
}
