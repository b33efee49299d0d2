package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseState(t *testing.T) {
	tests := []struct {
		name          string
		token         string
		expected      State
		expectedError bool
	}{
		{name: "empty token is start", token: "", expected: Start()},
		{name: "start", token: "start", expected: Start()},
		{name: "waiting for poem", token: "waiting_for_poem", expected: WaitingForPoem()},
		{name: "waiting for wish 1", token: "waiting_for_wish1", expected: WaitingForWish(1)},
		{name: "waiting for wish 3", token: "waiting_for_wish3", expected: WaitingForWish(3)},
		{name: "wishes collected", token: "wishes_collected", expected: WishesCollected()},
		{name: "changing wish 2", token: "changing_wish_2", expected: ChangingWish(2)},
		{name: "talk waiting negative group id", token: "talk_waiting_-100123", expected: TalkWaiting(-100123)},
		{name: "talkall waiting", token: "talkall_waiting", expected: TalkAllWaiting()},
		{name: "wish out of range", token: "changing_wish_4", expectedError: true},
		{name: "waiting wish zero", token: "waiting_for_wish0", expectedError: true},
		{name: "talk waiting without target", token: "talk_waiting_", expectedError: true},
		{name: "unknown", token: "dancing", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, err := ParseState(tt.token)

			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, state)
		})
	}
}

func TestState_StringRoundTrip(t *testing.T) {
	states := []State{
		WaitingForPoem(),
		WaitingForWish(1),
		WaitingForWish(2),
		WishesCollected(),
		ChangingWish(3),
		TalkWaiting(-1001234567890),
		TalkAllWaiting(),
	}

	for _, s := range states {
		t.Run(s.String(), func(t *testing.T) {
			parsed, err := ParseState(s.String())
			assert.NoError(t, err)
			assert.Equal(t, s, parsed)
		})
	}
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "start", Start().String())
	assert.Equal(t, "waiting_for_wish2", WaitingForWish(2).String())
	assert.Equal(t, "changing_wish_1", ChangingWish(1).String())
	assert.Equal(t, "talk_waiting_42", TalkWaiting(42).String())
}

func TestState_Transient(t *testing.T) {
	assert.True(t, ChangingWish(1).Transient())
	assert.True(t, TalkWaiting(1).Transient())
	assert.True(t, TalkAllWaiting().Transient())
	assert.False(t, Start().Transient())
	assert.False(t, WaitingForPoem().Transient())
	assert.False(t, WaitingForWish(1).Transient())
	assert.False(t, WishesCollected().Transient())
}
