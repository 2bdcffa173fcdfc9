package usecase

import (
	"context"

	"newsboard/pkg/apperr"
	"newsboard/pkg/database"
	"newsboard/services/news/internal/entity"
	"newsboard/services/news/internal/repo/persistent"
)

const (
	NewsNotFound    = "No News matches the given query."
	CommentNotFound = "No Comment matches the given query."
	userNotFound    = "No User matches the given query."
)

// notFoundOr maps a missing row to NotFound(msg) and passes anything else on.
func notFoundOr(err error, msg string) error {
	if database.IsNotFound(err) {
		return apperr.NotFound(msg)
	}
	return err
}

// likeCounter fills live like counts into listings.
type likeCounter struct {
	newsLikes    persistent.LikeRepository
	commentLikes persistent.LikeRepository
}

func (lc likeCounter) news(ctx context.Context, items ...*entity.News) error {
	ids := make([]string, len(items))
	for i, n := range items {
		ids[i] = n.ID
	}

	counts, err := lc.newsLikes.CountMany(ctx, ids)
	if err != nil {
		return err
	}
	for _, n := range items {
		n.LikeCount = counts[n.ID]
	}
	return nil
}

func (lc likeCounter) comments(ctx context.Context, items ...*entity.Comment) error {
	ids := make([]string, len(items))
	for i, c := range items {
		ids[i] = c.ID
	}

	counts, err := lc.commentLikes.CountMany(ctx, ids)
	if err != nil {
		return err
	}
	for _, c := range items {
		c.LikeCount = counts[c.ID]
	}
	return nil
}
