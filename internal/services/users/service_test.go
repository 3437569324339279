package users

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/killallgit/jamjot-api/internal/models"

	apperrors "github.com/killallgit/jamjot-api/pkg/errors"
)

func newTestService(t *testing.T) (*ServiceImpl, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&models.User{}))

	return NewService(NewRepository(db), log.New(io.Discard)), db
}

func TestEnsureUser(t *testing.T) {
	ctx := context.Background()

	t.Run("registers on first sign-in", func(t *testing.T) {
		service, db := newTestService(t)

		user, err := service.EnsureUser(ctx, "u1", "User One")
		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
		assert.Equal(t, "User One", user.DisplayName)

		var count int64
		require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("is idempotent", func(t *testing.T) {
		service, db := newTestService(t)

		_, err := service.EnsureUser(ctx, "u1", "User One")
		require.NoError(t, err)
		_, err = service.EnsureUser(ctx, "u1", "User One")
		require.NoError(t, err)

		var count int64
		require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("refreshes the display name", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.EnsureUser(ctx, "u1", "Old Name")
		require.NoError(t, err)
		user, err := service.EnsureUser(ctx, "u1", "New Name")
		require.NoError(t, err)
		assert.Equal(t, "New Name", user.DisplayName)

		stored, err := service.GetUser(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, "New Name", stored.DisplayName)
	})

	t.Run("empty display name keeps the stored one", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.EnsureUser(ctx, "u1", "User One")
		require.NoError(t, err)
		user, err := service.EnsureUser(ctx, "u1", "")
		require.NoError(t, err)
		assert.Equal(t, "User One", user.DisplayName)
	})

	t.Run("requires a user id", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.EnsureUser(ctx, "", "x")
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))
	})
}

func TestGetUser(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.GetUser(context.Background(), "nobody")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))
}
