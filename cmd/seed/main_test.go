package main

import (
	"io"
	"testing"

	"newsboard/pkg/database"
	"newsboard/pkg/logger"
	"newsboard/pkg/models"
	"newsboard/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestSeedDatabase_Idempotent(t *testing.T) {
	db, err := database.NewSQLiteDB(":memory:")
	require.NoError(t, err)
	defer database.Close(db)
	require.NoError(t, models.AutoMigrate(db))

	log := logger.NewWithWriters(io.Discard, io.Discard)
	hasher := password.NewBcryptHasher(bcrypt.MinCost)

	require.NoError(t, seedDatabase(db, hasher, log))
	require.NoError(t, seedDatabase(db, hasher, log))

	assert.Equal(t, int64(3), count(t, db, &models.User{}))
	assert.Equal(t, int64(3), count(t, db, &models.News{}))
	assert.Equal(t, int64(3), count(t, db, &models.Comment{}))
	assert.Equal(t, int64(3), count(t, db, &models.NewsLike{}))
	assert.Equal(t, int64(1), count(t, db, &models.CommentLike{}))

	var alice models.User
	require.NoError(t, db.Where("username = ?", "alice").First(&alice).Error)
	assert.True(t, hasher.Matches(alice.Password, "Wonderland-42"))
}
