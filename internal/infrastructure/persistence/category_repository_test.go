package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/storehub/backend/internal/domain/shared"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db, mock
}

func TestGormCategoryRepositoryFindByID(t *testing.T) {
	t.Run("maps missing row to ErrNotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGormCategoryRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "categories"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

		_, err := repo.FindByID(context.Background(), uuid.New())

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns the row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGormCategoryRepository(db)

		id := uuid.New()
		now := time.Now()
		mock.ExpectQuery(`SELECT \* FROM "categories"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at", "version", "name", "description"}).
				AddRow(id.String(), now, now, 1, "Phones", "Mobile phones"))

		category, err := repo.FindByID(context.Background(), id)

		require.NoError(t, err)
		assert.Equal(t, "Phones", category.Name)
		assert.Equal(t, 1, category.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCategoryRepositoryDelete(t *testing.T) {
	t.Run("maps zero affected rows to ErrNotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGormCategoryRepository(db)

		mock.ExpectExec(`DELETE FROM "categories"`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), uuid.New())

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("deletes existing row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGormCategoryRepository(db)

		mock.ExpectExec(`DELETE FROM "categories"`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), uuid.New())

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
