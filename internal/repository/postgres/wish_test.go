package postgres

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestWishRepo_Get(t *testing.T) {
	tests := []struct {
		name        string
		mockRows    *sqlmock.Rows
		mockError   error
		expectedNil bool
	}{
		{
			name: "record with poem",
			mockRows: sqlmock.NewRows([]string{"chat_id", "state", "wish1", "wish2", "wish3", "poem", "created_at"}).
				AddRow(123, "waiting_for_wish2", "Sled", nil, nil, "Ёлочка", time.Now()),
		},
		{
			name:        "no record",
			mockError:   sql.ErrNoRows,
			expectedNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewWishRepo(db)

			query := "SELECT chat_id, state, wish1, wish2, wish3, poem, created_at FROM wishes WHERE chat_id = \\$1"
			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(int64(123)).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(int64(123)).WillReturnRows(tt.mockRows)
			}

			w, err := repo.Get(123)

			assert.NoError(t, err)
			if tt.expectedNil {
				assert.Nil(t, w)
			} else {
				assert.NotNil(t, w)
				assert.Equal(t, "waiting_for_wish2", w.State)
				assert.Equal(t, "Sled", w.Wish(1))
				assert.Equal(t, "", w.Wish(2))
				assert.True(t, w.HasPoem())
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWishRepo_Initialize(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWishRepo(db)

	mock.ExpectExec("INSERT INTO wishes \\(chat_id, state, created_at\\) VALUES \\(\\$1, 'waiting_for_poem', NOW\\(\\)\\) ON CONFLICT").
		WithArgs(int64(123)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	assert.NoError(t, repo.Initialize(123))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWishRepo_SetState(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWishRepo(db)

	mock.ExpectExec("INSERT INTO wishes (.+) ON CONFLICT \\(chat_id\\) DO UPDATE SET state = EXCLUDED.state").
		WithArgs(int64(123), "talkall_waiting").
		WillReturnResult(sqlmock.NewResult(1, 1))

	assert.NoError(t, repo.SetState(123, "talkall_waiting"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWishRepo_SavePoem(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWishRepo(db)

	mock.ExpectExec("UPDATE wishes SET poem = \\$1, state = \\$2").
		WithArgs("стих", "waiting_for_wish1", int64(123)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.SavePoem(123, "стих", "waiting_for_wish1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWishRepo_SaveWish(t *testing.T) {
	tests := []struct {
		name          string
		n             int
		query         string
		expectedError bool
	}{
		{name: "wish 1", n: 1, query: "UPDATE wishes SET wish1 = \\$1, state = \\$2"},
		{name: "wish 3", n: 3, query: "UPDATE wishes SET wish3 = \\$1, state = \\$2"},
		{name: "invalid slot", n: 4, expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewWishRepo(db)

			if !tt.expectedError {
				mock.ExpectExec(tt.query).
					WithArgs("Bike", "wishes_collected", int64(123)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			}

			err := repo.SaveWish(123, tt.n, "Bike", "wishes_collected")

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWishRepo_ListWithUsers(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWishRepo(db)

	rows := sqlmock.NewRows([]string{"id", "chat_id", "username", "is_admin", "is_locked", "added_at", "wish1", "wish2", "wish3", "poem"}).
		AddRow(1, 100, "a", false, false, time.Now(), "Sled", "Bike", nil, "стих").
		AddRow(2, nil, "b", true, false, time.Now(), nil, nil, nil, nil)
	mock.ExpectQuery("SELECT (.+) FROM users u LEFT JOIN wishes w ON u.chat_id = w.chat_id").WillReturnRows(rows)

	list, err := repo.ListWithUsers()

	assert.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, []string{"Sled", "Bike"}, list[0].Wishes())
	assert.Equal(t, "@a", list[0].DisplayName())
	assert.Empty(t, list[1].Wishes())
	assert.Nil(t, list[1].Poem)
	assert.NoError(t, mock.ExpectationsWereMet())
}
