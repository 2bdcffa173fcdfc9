package entity

import (
	"time"

	"newsboard/pkg/authz"
)

type Comment struct {
	ID              string    `json:"id"`
	NewsID          string    `json:"news_id"`
	CreatorID       string    `json:"user_id"`
	CreatorUsername string    `json:"username"`
	Content         string    `json:"content"`
	LikeCount       int64     `json:"like_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (c *Comment) OwnedBy(p authz.Principal) bool {
	return p.ID != "" && p.ID == c.CreatorID
}

type CommentChanges struct {
	Content *string
}

func (c CommentChanges) Empty() bool {
	return c.Content == nil
}
