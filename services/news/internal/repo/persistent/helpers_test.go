package persistent

import (
	"context"
	"testing"
	"time"

	"newsboard/pkg/database"
	"newsboard/pkg/models"
	"newsboard/services/news/internal/entity"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewSQLiteDB(":memory:")
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))
	t.Cleanup(func() { database.Close(db) })
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Password: "hashed", Role: models.RoleMember, IsActive: true}
	require.NoError(t, db.Create(user).Error)
	return user
}

var clock = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// createNews inserts news with strictly increasing timestamps.
func createNews(t *testing.T, repo NewsRepository, creator *models.User, title string) *entity.News {
	t.Helper()
	clock = clock.Add(time.Minute)
	news := &entity.News{
		Title:           title,
		Content:         "content of " + title,
		URL:             "https://example.com/" + title,
		CreatorID:       creator.ID,
		CreatorUsername: creator.Username,
		CreatedAt:       clock,
		UpdatedAt:       clock,
	}
	require.NoError(t, repo.Create(context.Background(), news))
	return news
}

func createComment(t *testing.T, repo CommentRepository, news *entity.News, creator *models.User, content string) *entity.Comment {
	t.Helper()
	clock = clock.Add(time.Minute)
	comment := &entity.Comment{
		NewsID:          news.ID,
		CreatorID:       creator.ID,
		CreatorUsername: creator.Username,
		Content:         content,
		CreatedAt:       clock,
		UpdatedAt:       clock,
	}
	require.NoError(t, repo.Create(context.Background(), comment))
	return comment
}
