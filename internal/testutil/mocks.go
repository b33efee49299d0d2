package testutil

import (
	"wishlist/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByChatID(chatID int64) (*domain.User, error) {
	args := m.Called(chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByHandle(handle string) (*domain.User, error) {
	args := m.Called(handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Create(chatID int64, handle string) error {
	args := m.Called(chatID, handle)
	return args.Error(0)
}

func (m *MockUserRepository) BindChatID(userID, chatID int64) error {
	args := m.Called(userID, chatID)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateHandle(userID int64, handle string) error {
	args := m.Called(userID, handle)
	return args.Error(0)
}

func (m *MockUserRepository) ReleaseHandle(handle string) error {
	args := m.Called(handle)
	return args.Error(0)
}

func (m *MockUserRepository) PreRegisterAdmin(handle string) error {
	args := m.Called(handle)
	return args.Error(0)
}

func (m *MockUserRepository) SetBlocked(userID int64, blocked bool) error {
	args := m.Called(userID, blocked)
	return args.Error(0)
}

func (m *MockUserRepository) SetAdmin(userID int64, admin bool) error {
	args := m.Called(userID, admin)
	return args.Error(0)
}

func (m *MockUserRepository) List() ([]domain.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) AdminChatIDs() ([]int64, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockUserRepository) RecipientChatIDs() ([]int64, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

// MockWishRepository is a mock for WishRepository
type MockWishRepository struct {
	mock.Mock
}

func (m *MockWishRepository) Get(chatID int64) (*domain.Wishes, error) {
	args := m.Called(chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wishes), args.Error(1)
}

func (m *MockWishRepository) Initialize(chatID int64) error {
	args := m.Called(chatID)
	return args.Error(0)
}

func (m *MockWishRepository) SetState(chatID int64, state string) error {
	args := m.Called(chatID, state)
	return args.Error(0)
}

func (m *MockWishRepository) SavePoem(chatID int64, poem, next string) error {
	args := m.Called(chatID, poem, next)
	return args.Error(0)
}

func (m *MockWishRepository) SaveWish(chatID int64, n int, wish, next string) error {
	args := m.Called(chatID, n, wish, next)
	return args.Error(0)
}

func (m *MockWishRepository) ListWithUsers() ([]domain.UserWishes, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserWishes), args.Error(1)
}

// MockChatRepository is a mock for ChatRepository
type MockChatRepository struct {
	mock.Mock
}

func (m *MockChatRepository) Upsert(chat domain.GroupChat) error {
	args := m.Called(chat)
	return args.Error(0)
}

func (m *MockChatRepository) Touch(chatID int64, chatType, title string) error {
	args := m.Called(chatID, chatType, title)
	return args.Error(0)
}

func (m *MockChatRepository) Get(chatID int64) (*domain.GroupChat, error) {
	args := m.Called(chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GroupChat), args.Error(1)
}

func (m *MockChatRepository) ListActive() ([]domain.GroupChat, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GroupChat), args.Error(1)
}

func (m *MockChatRepository) Deactivate(chatID int64) error {
	args := m.Called(chatID)
	return args.Error(0)
}

// MockBroadcastRepository is a mock for BroadcastRepository
type MockBroadcastRepository struct {
	mock.Mock
}

func (m *MockBroadcastRepository) SavePending(adminChatID int64, payload domain.Payload) error {
	args := m.Called(adminChatID, payload)
	return args.Error(0)
}

func (m *MockBroadcastRepository) ClaimPending(adminChatID int64) (*domain.PendingBroadcast, error) {
	args := m.Called(adminChatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PendingBroadcast), args.Error(1)
}

func (m *MockBroadcastRepository) DeletePending(adminChatID int64) error {
	args := m.Called(adminChatID)
	return args.Error(0)
}

// MockCommandLogRepository is a mock for CommandLogRepository
type MockCommandLogRepository struct {
	mock.Mock
}

func (m *MockCommandLogRepository) Append(entry domain.CommandLogEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}

// MockMessenger is a mock for the outbound messenger
type MockMessenger struct {
	mock.Mock
}

func (m *MockMessenger) Send(chatID int64, text string) error {
	args := m.Called(chatID, text)
	return args.Error(0)
}

func (m *MockMessenger) SendKeyboard(chatID int64, text string, rows [][]domain.Button) error {
	args := m.Called(chatID, text, rows)
	return args.Error(0)
}

func (m *MockMessenger) SendPayload(chatID int64, payload domain.Payload) error {
	args := m.Called(chatID, payload)
	return args.Error(0)
}

func (m *MockMessenger) DeleteMessage(chatID int64, messageID int) error {
	args := m.Called(chatID, messageID)
	return args.Error(0)
}

func (m *MockMessenger) Leave(chatID int64) error {
	args := m.Called(chatID)
	return args.Error(0)
}
