package service

import (
	"fmt"
	"testing"

	"wishlist/internal/domain"
	"wishlist/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newGate() (*GateService, *testutil.MockUserRepository, *testutil.MockCommandLogRepository, *testutil.MockMessenger) {
	users := new(testutil.MockUserRepository)
	logs := new(testutil.MockCommandLogRepository)
	messenger := new(testutil.MockMessenger)
	return NewGateService(users, logs, messenger, testutil.NewTestLogger()), users, logs, messenger
}

func TestGateService_Admit_MissingHandle(t *testing.T) {
	gate, users, _, messenger := newGate()
	messenger.On("Send", int64(100), msgHandleRequired).Return(nil)

	ok, err := gate.Admit(100, "", "/start")

	assert.NoError(t, err)
	assert.False(t, ok)
	messenger.AssertNumberOfCalls(t, "Send", 1)
	users.AssertNotCalled(t, "FindByChatID", mock.Anything)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGateService_Admit_Registration(t *testing.T) {
	tests := []struct {
		name  string
		setup func(users *testutil.MockUserRepository)
	}{
		{
			name: "new user is created",
			setup: func(users *testutil.MockUserRepository) {
				users.On("FindByHandle", "elf").Return(nil, nil)
				users.On("Create", int64(100), "elf").Return(nil)
			},
		},
		{
			name: "pre-registered handle is bound",
			setup: func(users *testutil.MockUserRepository) {
				users.On("FindByHandle", "elf").Return(testutil.NewPreRegisteredUser(7, "elf", true), nil)
				users.On("BindChatID", int64(7), int64(100)).Return(nil)
			},
		},
		{
			name: "handle held by another chat is released",
			setup: func(users *testutil.MockUserRepository) {
				users.On("FindByHandle", "elf").Return(testutil.NewTestUser(8, 200, "elf", false, false), nil)
				users.On("ReleaseHandle", "elf").Return(nil)
				users.On("Create", int64(100), "elf").Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate, users, _, messenger := newGate()
			users.On("FindByChatID", int64(100)).Return(nil, nil)
			tt.setup(users)

			ok, err := gate.Admit(100, "elf", "hello")

			assert.NoError(t, err)
			assert.True(t, ok)
			users.AssertExpectations(t)
			messenger.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
		})
	}
}

func TestGateService_Admit_HandleChanged(t *testing.T) {
	tests := []struct {
		name     string
		holder   *domain.User
		release  bool
		promoted bool
	}{
		{name: "free handle", holder: nil},
		{name: "held by another chat", holder: testutil.NewTestUser(8, 200, "new", true, false), release: true},
		{name: "pre-registered admin", holder: testutil.NewPreRegisteredUser(9, "new", true), release: true, promoted: true},
		{name: "pre-registered user", holder: testutil.NewPreRegisteredUser(9, "new", false), release: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate, users, _, _ := newGate()
			users.On("FindByChatID", int64(100)).Return(testutil.NewTestUser(1, 100, "old", false, false), nil)
			if tt.holder != nil {
				users.On("FindByHandle", "new").Return(tt.holder, nil)
			} else {
				users.On("FindByHandle", "new").Return(nil, nil)
			}
			users.On("ReleaseHandle", "new").Return(nil)
			users.On("UpdateHandle", int64(1), "new").Return(nil)
			users.On("SetAdmin", int64(1), true).Return(nil)

			ok, err := gate.Admit(100, "new", "hello")

			assert.NoError(t, err)
			assert.True(t, ok)
			users.AssertCalled(t, "UpdateHandle", int64(1), "new")
			if tt.release {
				users.AssertCalled(t, "ReleaseHandle", "new")
			} else {
				users.AssertNotCalled(t, "ReleaseHandle", mock.Anything)
			}
			if tt.promoted {
				users.AssertCalled(t, "SetAdmin", int64(1), true)
			} else {
				users.AssertNotCalled(t, "SetAdmin", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestGateService_Admit_KnownUser(t *testing.T) {
	gate, users, logs, _ := newGate()
	users.On("FindByChatID", int64(100)).Return(testutil.NewTestUser(1, 100, "elf", false, false), nil)

	ok, err := gate.Admit(100, "elf", "hello")

	assert.NoError(t, err)
	assert.True(t, ok)
	users.AssertNotCalled(t, "UpdateHandle", mock.Anything, mock.Anything)
	logs.AssertNotCalled(t, "Append", mock.Anything)
}

func TestGateService_Admit_Blocked(t *testing.T) {
	gate, users, logs, messenger := newGate()
	users.On("FindByChatID", int64(100)).Return(testutil.NewTestUser(1, 100, "elf", false, true), nil)
	logs.On("Append", domain.CommandLogEntry{
		UserID:  100,
		Handle:  "elf",
		Command: "[BLOCKED] /wishes",
	}).Return(nil)

	ok, err := gate.Admit(100, "elf", "/wishes")

	assert.NoError(t, err)
	assert.False(t, ok)
	logs.AssertExpectations(t)
	messenger.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestGateService_Admit_BlockedLogFailureStillStops(t *testing.T) {
	gate, users, logs, _ := newGate()
	users.On("FindByChatID", int64(100)).Return(testutil.NewTestUser(1, 100, "elf", false, true), nil)
	logs.On("Append", mock.Anything).Return(fmt.Errorf("db down"))

	ok, err := gate.Admit(100, "elf", "hi")

	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestGateService_Admit_RepositoryError(t *testing.T) {
	gate, users, _, _ := newGate()
	users.On("FindByChatID", int64(100)).Return(nil, fmt.Errorf("connection refused"))

	ok, err := gate.Admit(100, "elf", "hi")

	assert.Error(t, err)
	assert.False(t, ok)
}
