package usecase

import (
	"context"
	"time"

	"newsboard/pkg/apperr"
	"newsboard/pkg/authz"
	"newsboard/pkg/database"
	"newsboard/pkg/logger"
	"newsboard/pkg/validation"
	"newsboard/services/news/internal/entity"
	"newsboard/services/news/internal/repo/persistent"
)

const (
	titleRules   = "notblank,max=50"
	contentRules = "notblank"
	urlRules     = "notblank,max=200,http_url"
)

type NewsInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"url"`
}

type NewsUseCase interface {
	ListNews(ctx context.Context, by Ordering) ([]*entity.News, error)
	SearchNews(ctx context.Context, term string) ([]*entity.News, error)
	GetNews(ctx context.Context, id string) (*entity.NewsDetail, error)
	CreateNews(ctx context.Context, p *authz.Principal, input NewsInput) (*entity.News, error)
	UpdateNews(ctx context.Context, p *authz.Principal, id string, changes entity.NewsChanges) (*entity.News, error)
	DeleteNews(ctx context.Context, p *authz.Principal, id string) error
}

type newsUseCase struct {
	newsRepo    persistent.NewsRepository
	commentRepo persistent.CommentRepository
	counter     likeCounter
	validator   *validation.Validator
	logger      *logger.Logger
	now         func() time.Time
}

func NewNewsUseCase(
	newsRepo persistent.NewsRepository,
	commentRepo persistent.CommentRepository,
	newsLikes persistent.LikeRepository,
	commentLikes persistent.LikeRepository,
	validator *validation.Validator,
	logger *logger.Logger,
) NewsUseCase {
	return &newsUseCase{
		newsRepo:    newsRepo,
		commentRepo: commentRepo,
		counter:     likeCounter{newsLikes: newsLikes, commentLikes: commentLikes},
		validator:   validator,
		logger:      logger,
		now:         time.Now,
	}
}

func (uc *newsUseCase) ListNews(ctx context.Context, by Ordering) ([]*entity.News, error) {
	items, err := uc.newsRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := uc.counter.news(ctx, items...); err != nil {
		return nil, err
	}

	if by == OrderEngagement {
		if err := uc.countComments(ctx, items); err != nil {
			return nil, err
		}
	}

	SortNews(items, by)
	return items, nil
}

func (uc *newsUseCase) countComments(ctx context.Context, items []*entity.News) error {
	ids := make([]string, len(items))
	for i, n := range items {
		ids[i] = n.ID
	}

	counts, err := uc.newsRepo.CommentCounts(ctx, ids)
	if err != nil {
		return err
	}
	for _, n := range items {
		n.CommentCount = counts[n.ID]
	}
	return nil
}

func (uc *newsUseCase) SearchNews(ctx context.Context, term string) ([]*entity.News, error) {
	items, err := uc.newsRepo.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	if err := uc.counter.news(ctx, items...); err != nil {
		return nil, err
	}
	return items, nil
}

func (uc *newsUseCase) GetNews(ctx context.Context, id string) (*entity.NewsDetail, error) {
	news, err := uc.newsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, NewsNotFound)
	}

	comments, err := uc.commentRepo.ListByNews(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.counter.news(ctx, news); err != nil {
		return nil, err
	}
	if err := uc.counter.comments(ctx, comments...); err != nil {
		return nil, err
	}

	news.CommentCount = int64(len(comments))
	return &entity.NewsDetail{News: news, Comments: comments}, nil
}

func (uc *newsUseCase) CreateNews(ctx context.Context, p *authz.Principal, input NewsInput) (*entity.News, error) {
	if p == nil {
		return nil, apperr.Unauthenticated(apperr.ErrUnauthenticated.Error())
	}
	if msgs := uc.check(entity.NewsChanges{Title: &input.Title, Content: &input.Content, URL: &input.URL}); len(msgs) > 0 {
		return nil, apperr.Validation(msgs...)
	}

	now := uc.now()
	news := &entity.News{
		Title:           input.Title,
		Content:         input.Content,
		URL:             input.URL,
		CreatorID:       p.ID,
		CreatorUsername: p.Username,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.newsRepo.Create(ctx, news); err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, apperr.Unauthenticated("User not found")
		}
		uc.logger.Error("Failed to create news: %v", err)
		return nil, err
	}

	uc.logger.Info("News %s created by %s", news.ID, p.Username)
	return news, nil
}

func (uc *newsUseCase) UpdateNews(ctx context.Context, p *authz.Principal, id string, changes entity.NewsChanges) (*entity.News, error) {
	if p == nil {
		return nil, apperr.Unauthenticated(apperr.ErrUnauthenticated.Error())
	}

	news, err := uc.newsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, NewsNotFound)
	}
	if err := authz.Require(p, news, "You are not the author of this news"); err != nil {
		return nil, err
	}

	if msgs := uc.check(changes); len(msgs) > 0 {
		return nil, apperr.Validation(msgs...)
	}

	if err := uc.newsRepo.Update(ctx, id, p.ID, changes); err != nil {
		return nil, notFoundOr(err, NewsNotFound)
	}

	updated, err := uc.newsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, NewsNotFound)
	}
	if err := uc.counter.news(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// check validates the fields present in changes. Creation passes every field.
func (uc *newsUseCase) check(changes entity.NewsChanges) []string {
	var msgs []string
	if changes.Title != nil {
		msgs = append(msgs, uc.validator.Var("title", *changes.Title, titleRules)...)
	}
	if changes.Content != nil {
		msgs = append(msgs, uc.validator.Var("content", *changes.Content, contentRules)...)
	}
	if changes.URL != nil {
		msgs = append(msgs, uc.validator.Var("url", *changes.URL, urlRules)...)
	}
	return msgs
}

func (uc *newsUseCase) DeleteNews(ctx context.Context, p *authz.Principal, id string) error {
	if p == nil {
		return apperr.Unauthenticated(apperr.ErrUnauthenticated.Error())
	}

	news, err := uc.newsRepo.GetByID(ctx, id)
	if err != nil {
		return notFoundOr(err, NewsNotFound)
	}
	if err := authz.Require(p, news, "You are not the author of this news"); err != nil {
		return err
	}

	if err := uc.newsRepo.Delete(ctx, id, p.ID); err != nil {
		return notFoundOr(err, NewsNotFound)
	}

	uc.logger.Info("News %s deleted by %s", id, p.Username)
	return nil
}
