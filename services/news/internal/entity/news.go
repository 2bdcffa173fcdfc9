package entity

import (
	"time"

	"newsboard/pkg/authz"
)

type News struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	URL             string    `json:"url"`
	CreatorID       string    `json:"user_id"`
	CreatorUsername string    `json:"username"`
	LikeCount       int64     `json:"like_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// CommentCount is filled only by the engagement ordering and detail reads.
	CommentCount int64 `json:"-"`
}

func (n *News) OwnedBy(p authz.Principal) bool {
	return p.ID != "" && p.ID == n.CreatorID
}

type NewsChanges struct {
	Title   *string
	Content *string
	URL     *string
}

func (c NewsChanges) Empty() bool {
	return c.Title == nil && c.Content == nil && c.URL == nil
}

// NewsDetail is a news item with its comments.
type NewsDetail struct {
	News     *News
	Comments []*Comment
}
