package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCallback(t *testing.T) {
	tests := []struct {
		name          string
		data          string
		expected      Callback
		expectedError bool
	}{
		{name: "confirm", data: "talkall_confirm", expected: Callback{Kind: CallbackTalkAllConfirm}},
		{name: "cancel", data: "talkall_cancel", expected: Callback{Kind: CallbackTalkAllCancel}},
		{name: "change wish", data: "change_wish_2", expected: Callback{Kind: CallbackChangeWish, Wish: 2}},
		{name: "talk select", data: "talk_select_-1009", expected: Callback{Kind: CallbackTalkSelect, Target: -1009}},
		{name: "unknown", data: "something", expected: Callback{Kind: CallbackUnknown}},
		{name: "change wish out of range", data: "change_wish_7", expectedError: true},
		{name: "talk select garbage", data: "talk_select_abc", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb, err := ParseCallback(tt.data)
			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, cb)
		})
	}
}

func TestCallbackData_Builders(t *testing.T) {
	cb, err := ParseCallback(ChangeWishData(3))
	assert.NoError(t, err)
	assert.Equal(t, Callback{Kind: CallbackChangeWish, Wish: 3}, cb)

	cb, err = ParseCallback(TalkSelectData(-100500))
	assert.NoError(t, err)
	assert.Equal(t, Callback{Kind: CallbackTalkSelect, Target: -100500}, cb)
}
