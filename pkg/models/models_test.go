package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_BeforeCreate(t *testing.T) {
	user := &User{
		Username: "testuser",
		Password: "hashed",
		Role:     RoleMember,
		IsActive: true,
	}

	err := user.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, user.ID)
}

func TestUser_BeforeCreate_WithID(t *testing.T) {
	existingID := "existing-id-123"
	user := &User{
		ID:       existingID,
		Username: "testuser",
	}

	err := user.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.Equal(t, existingID, user.ID)
}

func TestNews_BeforeCreate(t *testing.T) {
	news := &News{
		Title:     "Test News",
		Content:   "Body",
		URL:       "https://example.com",
		CreatorID: "creator-123",
	}

	err := news.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, news.ID)
}

func TestComment_BeforeCreate_WithID(t *testing.T) {
	comment := &Comment{
		ID:        "existing-comment-id",
		NewsID:    "news-123",
		CreatorID: "creator-123",
		Content:   "hi",
	}

	err := comment.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.Equal(t, "existing-comment-id", comment.ID)
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "users", User{}.TableName())
	assert.Equal(t, "news", News{}.TableName())
	assert.Equal(t, "comments", Comment{}.TableName())
	assert.Equal(t, "news_likes", NewsLike{}.TableName())
	assert.Equal(t, "comment_likes", CommentLike{}.TableName())
	assert.Equal(t, "revoked_tokens", RevokedToken{}.TableName())
}

func TestUserRole_Constants(t *testing.T) {
	assert.Equal(t, UserRole("member"), RoleMember)
	assert.Equal(t, UserRole("staff"), RoleStaff)
}
