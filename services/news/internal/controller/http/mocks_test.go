package http

import (
	"context"

	"newsboard/pkg/authz"
	"newsboard/services/news/internal/entity"
	"newsboard/services/news/internal/usecase"

	"github.com/stretchr/testify/mock"
)

type MockNewsUseCase struct {
	mock.Mock
}

func (m *MockNewsUseCase) ListNews(ctx context.Context, by usecase.Ordering) ([]*entity.News, error) {
	args := m.Called(ctx, by)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.News), args.Error(1)
}

func (m *MockNewsUseCase) SearchNews(ctx context.Context, term string) ([]*entity.News, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.News), args.Error(1)
}

func (m *MockNewsUseCase) GetNews(ctx context.Context, id string) (*entity.NewsDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.NewsDetail), args.Error(1)
}

func (m *MockNewsUseCase) CreateNews(ctx context.Context, p *authz.Principal, input usecase.NewsInput) (*entity.News, error) {
	args := m.Called(ctx, p, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.News), args.Error(1)
}

func (m *MockNewsUseCase) UpdateNews(ctx context.Context, p *authz.Principal, id string, changes entity.NewsChanges) (*entity.News, error) {
	args := m.Called(ctx, p, id, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.News), args.Error(1)
}

func (m *MockNewsUseCase) DeleteNews(ctx context.Context, p *authz.Principal, id string) error {
	args := m.Called(ctx, p, id)
	return args.Error(0)
}

type MockCommentUseCase struct {
	mock.Mock
}

func (m *MockCommentUseCase) ListComments(ctx context.Context, newsID string) ([]*entity.Comment, error) {
	args := m.Called(ctx, newsID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) SearchComments(ctx context.Context, term string) ([]*entity.Comment, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) GetComment(ctx context.Context, id string) (*entity.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) CreateComment(ctx context.Context, p *authz.Principal, newsID, content string) (*entity.Comment, error) {
	args := m.Called(ctx, p, newsID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) UpdateComment(ctx context.Context, p *authz.Principal, id string, changes entity.CommentChanges) (*entity.Comment, error) {
	args := m.Called(ctx, p, id, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) DeleteComment(ctx context.Context, p *authz.Principal, id string) error {
	args := m.Called(ctx, p, id)
	return args.Error(0)
}

type MockLikeUseCase struct {
	mock.Mock
}

func (m *MockLikeUseCase) NewsLikers(ctx context.Context, newsID string) ([]string, error) {
	args := m.Called(ctx, newsID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockLikeUseCase) LikeNews(ctx context.Context, p *authz.Principal, newsID string) error {
	return m.Called(ctx, p, newsID).Error(0)
}

func (m *MockLikeUseCase) UnlikeNews(ctx context.Context, p *authz.Principal, newsID string) error {
	return m.Called(ctx, p, newsID).Error(0)
}

func (m *MockLikeUseCase) CommentLikers(ctx context.Context, commentID string) ([]string, error) {
	args := m.Called(ctx, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockLikeUseCase) LikeComment(ctx context.Context, p *authz.Principal, commentID string) error {
	return m.Called(ctx, p, commentID).Error(0)
}

func (m *MockLikeUseCase) UnlikeComment(ctx context.Context, p *authz.Principal, commentID string) error {
	return m.Called(ctx, p, commentID).Error(0)
}

type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) ResolvePrincipal(ctx context.Context, userID string) (*authz.Principal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authz.Principal), args.Error(1)
}

func (m *MockUserUseCase) GetUser(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) UpdateUser(ctx context.Context, p *authz.Principal, username string, changes entity.UserChanges) (*entity.User, error) {
	args := m.Called(ctx, p, username, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) DeleteUser(ctx context.Context, p *authz.Principal, username string) error {
	return m.Called(ctx, p, username).Error(0)
}

func (m *MockUserUseCase) Authored(ctx context.Context, username string) (*usecase.Activity, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.Activity), args.Error(1)
}

func (m *MockUserUseCase) Liked(ctx context.Context, username string) (*usecase.Activity, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.Activity), args.Error(1)
}

var (
	_ usecase.NewsUseCase    = (*MockNewsUseCase)(nil)
	_ usecase.CommentUseCase = (*MockCommentUseCase)(nil)
	_ usecase.LikeUseCase    = (*MockLikeUseCase)(nil)
	_ usecase.UserUseCase    = (*MockUserUseCase)(nil)
)
