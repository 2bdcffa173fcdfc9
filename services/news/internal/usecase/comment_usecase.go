package usecase

import (
	"context"
	"strings"
	"time"

	"newsboard/pkg/apperr"
	"newsboard/pkg/authz"
	"newsboard/pkg/database"
	"newsboard/pkg/logger"
	"newsboard/pkg/validation"
	"newsboard/services/news/internal/entity"
	"newsboard/services/news/internal/repo/persistent"
)

const emptyComment = "Comment content cannot be empty"

type CommentUseCase interface {
	ListComments(ctx context.Context, newsID string) ([]*entity.Comment, error)
	SearchComments(ctx context.Context, term string) ([]*entity.Comment, error)
	GetComment(ctx context.Context, id string) (*entity.Comment, error)
	CreateComment(ctx context.Context, p *authz.Principal, newsID, content string) (*entity.Comment, error)
	UpdateComment(ctx context.Context, p *authz.Principal, id string, changes entity.CommentChanges) (*entity.Comment, error)
	DeleteComment(ctx context.Context, p *authz.Principal, id string) error
}

type commentUseCase struct {
	newsRepo    persistent.NewsRepository
	commentRepo persistent.CommentRepository
	counter     likeCounter
	validator   *validation.Validator
	logger      *logger.Logger
	now         func() time.Time
}

func NewCommentUseCase(
	newsRepo persistent.NewsRepository,
	commentRepo persistent.CommentRepository,
	commentLikes persistent.LikeRepository,
	validator *validation.Validator,
	logger *logger.Logger,
) CommentUseCase {
	return &commentUseCase{
		newsRepo:    newsRepo,
		commentRepo: commentRepo,
		counter:     likeCounter{commentLikes: commentLikes},
		validator:   validator,
		logger:      logger,
		now:         time.Now,
	}
}

func (uc *commentUseCase) validateContent(content string) []string {
	if strings.TrimSpace(content) == "" {
		return []string{emptyComment}
	}
	return uc.validator.Var("content", content, "max=200")
}

func (uc *commentUseCase) ListComments(ctx context.Context, newsID string) ([]*entity.Comment, error) {
	if _, err := uc.newsRepo.GetByID(ctx, newsID); err != nil {
		return nil, notFoundOr(err, NewsNotFound)
	}

	comments, err := uc.commentRepo.ListByNews(ctx, newsID)
	if err != nil {
		return nil, err
	}
	if err := uc.counter.comments(ctx, comments...); err != nil {
		return nil, err
	}
	return comments, nil
}

func (uc *commentUseCase) SearchComments(ctx context.Context, term string) ([]*entity.Comment, error) {
	comments, err := uc.commentRepo.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	if err := uc.counter.comments(ctx, comments...); err != nil {
		return nil, err
	}
	return comments, nil
}

func (uc *commentUseCase) GetComment(ctx context.Context, id string) (*entity.Comment, error) {
	comment, err := uc.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, CommentNotFound)
	}
	if err := uc.counter.comments(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (uc *commentUseCase) CreateComment(ctx context.Context, p *authz.Principal, newsID, content string) (*entity.Comment, error) {
	if p == nil {
		return nil, apperr.Unauthenticated(apperr.ErrUnauthenticated.Error())
	}
	if _, err := uc.newsRepo.GetByID(ctx, newsID); err != nil {
		return nil, notFoundOr(err, NewsNotFound)
	}
	if msgs := uc.validateContent(content); len(msgs) > 0 {
		return nil, apperr.Validation(msgs...)
	}

	now := uc.now()
	comment := &entity.Comment{
		NewsID:          newsID,
		CreatorID:       p.ID,
		CreatorUsername: p.Username,
		Content:         content,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		// the news item or the author vanished since the lookup
		if database.IsForeignKeyViolation(err) {
			return nil, apperr.NotFound(NewsNotFound)
		}
		uc.logger.Error("Failed to create comment: %v", err)
		return nil, err
	}

	return comment, nil
}

func (uc *commentUseCase) UpdateComment(ctx context.Context, p *authz.Principal, id string, changes entity.CommentChanges) (*entity.Comment, error) {
	if p == nil {
		return nil, apperr.Unauthenticated(apperr.ErrUnauthenticated.Error())
	}

	comment, err := uc.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, CommentNotFound)
	}
	if err := authz.Require(p, comment, "You are not the author of this comment"); err != nil {
		return nil, err
	}

	if changes.Content != nil {
		if msgs := uc.validateContent(*changes.Content); len(msgs) > 0 {
			return nil, apperr.Validation(msgs...)
		}
	}

	if err := uc.commentRepo.Update(ctx, id, p.ID, changes); err != nil {
		return nil, notFoundOr(err, CommentNotFound)
	}
	return uc.GetComment(ctx, id)
}

func (uc *commentUseCase) DeleteComment(ctx context.Context, p *authz.Principal, id string) error {
	if p == nil {
		return apperr.Unauthenticated(apperr.ErrUnauthenticated.Error())
	}

	comment, err := uc.commentRepo.GetByID(ctx, id)
	if err != nil {
		return notFoundOr(err, CommentNotFound)
	}
	if err := authz.Require(p, comment, "You are not the author of this comment"); err != nil {
		return err
	}

	if err := uc.commentRepo.Delete(ctx, id, p.ID); err != nil {
		return notFoundOr(err, CommentNotFound)
	}

	uc.logger.Info("Comment %s deleted by %s", id, p.Username)
	return nil
}
