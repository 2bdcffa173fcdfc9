package database

import (
	"errors"
	"fmt"
	"testing"

	"newsboard/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, IsUniqueViolation(fmt.Errorf("create: %w", gorm.ErrDuplicatedKey)))
	assert.True(t, IsUniqueViolation(errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_username" (SQLSTATE 23505)`)))
	assert.False(t, IsUniqueViolation(errors.New("connection reset by peer")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestIsUniqueViolation_SQLite(t *testing.T) {
	db, err := NewSQLiteDB(":memory:")
	require.NoError(t, err)
	defer Close(db)
	require.NoError(t, models.AutoMigrate(db))

	require.NoError(t, db.Create(&models.User{Username: "alice", Password: "x"}).Error)
	err = db.Create(&models.User{Username: "alice", Password: "y"}).Error
	assert.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(gorm.ErrRecordNotFound))
	assert.False(t, IsNotFound(errors.New("other")))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, IsForeignKeyViolation(fmt.Errorf("create like: %w", gorm.ErrForeignKeyViolated)))
	assert.True(t, IsForeignKeyViolation(errors.New(`ERROR: insert or update on table "news_likes" violates foreign key constraint (SQLSTATE 23503)`)))
	assert.False(t, IsForeignKeyViolation(gorm.ErrDuplicatedKey))
	assert.False(t, IsForeignKeyViolation(errors.New("connection reset by peer")))
}

func TestIsForeignKeyViolation_SQLite(t *testing.T) {
	db, err := NewSQLiteDB(":memory:")
	require.NoError(t, err)
	defer Close(db)
	require.NoError(t, models.AutoMigrate(db))

	err = db.Omit(clause.Associations).Create(&models.NewsLike{NewsID: "missing-news", UserID: "missing-user"}).Error
	assert.Error(t, err)
	assert.True(t, IsForeignKeyViolation(err))
	assert.False(t, IsUniqueViolation(err))
	assert.False(t, IsForeignKeyViolation(nil))
}
