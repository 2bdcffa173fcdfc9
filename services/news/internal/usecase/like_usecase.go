package usecase

import (
	"context"
	"errors"

	"newsboard/pkg/apperr"
	"newsboard/pkg/authz"
	"newsboard/services/news/internal/repo/persistent"
)

// LikeUseCase toggles membership of the acting principal in the like-set
// of a news item or a comment.
type LikeUseCase interface {
	NewsLikers(ctx context.Context, newsID string) ([]string, error)
	LikeNews(ctx context.Context, p *authz.Principal, newsID string) error
	UnlikeNews(ctx context.Context, p *authz.Principal, newsID string) error

	CommentLikers(ctx context.Context, commentID string) ([]string, error)
	LikeComment(ctx context.Context, p *authz.Principal, commentID string) error
	UnlikeComment(ctx context.Context, p *authz.Principal, commentID string) error
}

type likeSet struct {
	likes    persistent.LikeRepository
	lookup   func(ctx context.Context, id string) error
	notFound string
	noun     string
}

func (s likeSet) exists(ctx context.Context, id string) error {
	if err := s.lookup(ctx, id); err != nil {
		return notFoundOr(err, s.notFound)
	}
	return nil
}

func (s likeSet) likers(ctx context.Context, id string) ([]string, error) {
	if err := s.exists(ctx, id); err != nil {
		return nil, err
	}
	return s.likes.Likers(ctx, id)
}

func (s likeSet) add(ctx context.Context, p *authz.Principal, id string) error {
	if p == nil {
		return apperr.Unauthenticated(apperr.ErrUnauthenticated.Error())
	}
	if err := s.exists(ctx, id); err != nil {
		return err
	}

	err := s.likes.Add(ctx, id, p.ID)
	if errors.Is(err, persistent.ErrAlreadyMember) {
		return apperr.AlreadyLiked("You have already liked this " + s.noun + ".")
	}
	if err != nil {
		return notFoundOr(err, s.notFound)
	}
	return nil
}

func (s likeSet) remove(ctx context.Context, p *authz.Principal, id string) error {
	if p == nil {
		return apperr.Unauthenticated(apperr.ErrUnauthenticated.Error())
	}
	if err := s.exists(ctx, id); err != nil {
		return err
	}

	err := s.likes.Remove(ctx, id, p.ID)
	if errors.Is(err, persistent.ErrNotMember) {
		return apperr.NotLiked("You have not liked this " + s.noun + ".")
	}
	return err
}

type likeUseCase struct {
	news     likeSet
	comments likeSet
}

func NewLikeUseCase(
	newsRepo persistent.NewsRepository,
	commentRepo persistent.CommentRepository,
	newsLikes persistent.LikeRepository,
	commentLikes persistent.LikeRepository,
) LikeUseCase {
	return &likeUseCase{
		news: likeSet{
			likes: newsLikes,
			lookup: func(ctx context.Context, id string) error {
				_, err := newsRepo.GetByID(ctx, id)
				return err
			},
			notFound: NewsNotFound,
			noun:     "news",
		},
		comments: likeSet{
			likes: commentLikes,
			lookup: func(ctx context.Context, id string) error {
				_, err := commentRepo.GetByID(ctx, id)
				return err
			},
			notFound: CommentNotFound,
			noun:     "comment",
		},
	}
}

func (uc *likeUseCase) NewsLikers(ctx context.Context, newsID string) ([]string, error) {
	return uc.news.likers(ctx, newsID)
}

func (uc *likeUseCase) LikeNews(ctx context.Context, p *authz.Principal, newsID string) error {
	return uc.news.add(ctx, p, newsID)
}

func (uc *likeUseCase) UnlikeNews(ctx context.Context, p *authz.Principal, newsID string) error {
	return uc.news.remove(ctx, p, newsID)
}

func (uc *likeUseCase) CommentLikers(ctx context.Context, commentID string) ([]string, error) {
	return uc.comments.likers(ctx, commentID)
}

func (uc *likeUseCase) LikeComment(ctx context.Context, p *authz.Principal, commentID string) error {
	return uc.comments.add(ctx, p, commentID)
}

func (uc *likeUseCase) UnlikeComment(ctx context.Context, p *authz.Principal, commentID string) error {
	return uc.comments.remove(ctx, p, commentID)
}
