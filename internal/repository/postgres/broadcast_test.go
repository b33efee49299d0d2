package postgres

import (
	"database/sql"
	"testing"
	"time"

	"wishlist/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestBroadcastRepo_SavePending(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBroadcastRepo(db)

	payload := domain.Payload{Photo: "file-1", Caption: "С Новым годом"}

	mock.ExpectExec("INSERT INTO pending_broadcasts (.+) ON CONFLICT \\(admin_chat_id\\) DO UPDATE SET message_data = EXCLUDED.message_data").
		WithArgs(int64(42), []byte(`{"caption":"С Новым годом","photo":"file-1"}`)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SavePending(42, payload)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBroadcastRepo_ClaimPending(t *testing.T) {
	tests := []struct {
		name          string
		mockRows      *sqlmock.Rows
		mockError     error
		expectedNil   bool
		expectedError bool
	}{
		{
			name: "pending found",
			mockRows: sqlmock.NewRows([]string{"admin_chat_id", "message_data", "created_at"}).
				AddRow(42, []byte(`{"text":"Привет всем"}`), time.Now()),
		},
		{
			name:        "nothing pending",
			mockError:   sql.ErrNoRows,
			expectedNil: true,
		},
		{
			name: "corrupt payload",
			mockRows: sqlmock.NewRows([]string{"admin_chat_id", "message_data", "created_at"}).
				AddRow(42, []byte(`{not json`), time.Now()),
			expectedNil:   true,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewBroadcastRepo(db)

			query := "DELETE FROM pending_broadcasts WHERE admin_chat_id = \\$1 RETURNING admin_chat_id, message_data, created_at"
			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(int64(42)).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(int64(42)).WillReturnRows(tt.mockRows)
			}

			pending, err := repo.ClaimPending(42)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.expectedNil {
				assert.Nil(t, pending)
			} else {
				assert.NotNil(t, pending)
				assert.Equal(t, int64(42), pending.AdminChatID)
				assert.Equal(t, "Привет всем", pending.Payload.Text)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBroadcastRepo_DeletePending(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBroadcastRepo(db)

	mock.ExpectExec("DELETE FROM pending_broadcasts WHERE admin_chat_id = \\$1").
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.DeletePending(42))
	assert.NoError(t, mock.ExpectationsWereMet())
}
