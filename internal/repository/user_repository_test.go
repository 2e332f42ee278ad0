package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newUserRepoWithMock(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return NewUserRepository(db), mock
}

func TestUserRepository_FindByEmail(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	rows := sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "created_at"}).
		AddRow("u-1", "Alice", "alice@example.com", "hashed", time.Now())
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE email = \\?").
		WillReturnRows(rows)

	user, err := repo.FindByEmail("alice@example.com")
	require.NoError(t, err)
	require.Equal(t, "u-1", user.ID)
	require.Equal(t, "Alice", user.Name)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE email = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByEmail("nobody@example.com")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByIDForUpdate_TakesRowLock(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	rows := sqlmock.NewRows([]string{"id", "name", "email"}).
		AddRow("u-1", "Alice", "alice@example.com")
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE id = \\?.*FOR UPDATE").
		WillReturnRows(rows)

	user, err := repo.FindByIDForUpdate("u-1")
	require.NoError(t, err)
	require.Equal(t, "u-1", user.ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByID_DBError(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE id = \\?").
		WillReturnError(errors.New("connection lost"))

	_, err := repo.FindByID("u-1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "connection lost")

	require.NoError(t, mock.ExpectationsWereMet())
}
