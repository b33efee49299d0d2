package postgres

import (
	"testing"

	"wishlist/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestCommandLogRepo_Append(t *testing.T) {
	tests := []struct {
		name           string
		entry          domain.CommandLogEntry
		expectedHandle string
	}{
		{
			name:           "with handle",
			entry:          domain.CommandLogEntry{UserID: 1, Handle: "santa", Command: "/users"},
			expectedHandle: "santa",
		},
		{
			name:           "unknown handle",
			entry:          domain.CommandLogEntry{UserID: 2, Command: domain.BlockedPrefix + "/start"},
			expectedHandle: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewCommandLogRepo(db)

			mock.ExpectExec("INSERT INTO command_logs").
				WithArgs(tt.entry.UserID, tt.expectedHandle, tt.entry.Command).
				WillReturnResult(sqlmock.NewResult(1, 1))

			assert.NoError(t, repo.Append(tt.entry))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
