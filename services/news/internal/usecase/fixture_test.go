package usecase

import (
	"bytes"
	"context"
	"testing"
	"time"

	"newsboard/pkg/authz"
	"newsboard/pkg/database"
	"newsboard/pkg/logger"
	"newsboard/pkg/models"
	"newsboard/pkg/password"
	"newsboard/pkg/validation"
	"newsboard/services/news/internal/entity"
	"newsboard/services/news/internal/repo/persistent"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fixture struct {
	news     NewsUseCase
	comments CommentUseCase
	likes    LikeUseCase
	users    UserUseCase
	hasher   password.Hasher
	userRepo persistent.UserRepository
	ctx      context.Context
	t        *testing.T
	db       *gorm.DB
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := database.NewSQLiteDB(":memory:")
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))
	t.Cleanup(func() { database.Close(db) })

	log := logger.NewWithWriters(&bytes.Buffer{}, &bytes.Buffer{})
	v := validation.New()
	hasher := password.NewBcryptHasher(bcrypt.MinCost)

	newsRepo := persistent.NewNewsRepository(db)
	commentRepo := persistent.NewCommentRepository(db)
	userRepo := persistent.NewUserRepository(db)
	newsLikes := persistent.NewNewsLikeRepository(db)
	commentLikes := persistent.NewCommentLikeRepository(db)

	newsUC := NewNewsUseCase(newsRepo, commentRepo, newsLikes, commentLikes, v, log).(*newsUseCase)
	commentUC := NewCommentUseCase(newsRepo, commentRepo, commentLikes, v, log).(*commentUseCase)

	// strictly increasing creation times keep orderings deterministic
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	tick := 0
	clock := func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}
	newsUC.now = clock
	commentUC.now = clock

	return &fixture{
		news:     newsUC,
		comments: commentUC,
		likes:    NewLikeUseCase(newsRepo, commentRepo, newsLikes, commentLikes),
		users: NewUserUseCase(userRepo, newsRepo, commentRepo, newsLikes, commentLikes,
			password.NewValidator(), hasher, v, log),
		hasher:   hasher,
		userRepo: userRepo,
		ctx:      context.Background(),
		t:        t,
		db:       db,
	}
}

// signup stores a user whose password is the given plain text.
func (f *fixture) signup(username, plain string) *authz.Principal {
	f.t.Helper()
	hashed, err := f.hasher.Hash(plain)
	require.NoError(f.t, err)

	user := &models.User{Username: username, Password: hashed, Role: models.RoleMember, IsActive: true}
	require.NoError(f.t, f.db.Create(user).Error)

	p, err := f.users.ResolvePrincipal(f.ctx, user.ID)
	require.NoError(f.t, err)
	return p
}

func (f *fixture) post(p *authz.Principal, title string) *entity.News {
	f.t.Helper()
	news, err := f.news.CreateNews(f.ctx, p, NewsInput{
		Title:   title,
		Content: "about " + title,
		URL:     "http://x/" + title,
	})
	require.NoError(f.t, err)
	return news
}

func (f *fixture) comment(p *authz.Principal, news *entity.News, content string) *entity.Comment {
	f.t.Helper()
	comment, err := f.comments.CreateComment(f.ctx, p, news.ID, content)
	require.NoError(f.t, err)
	return comment
}

func strPtr(s string) *string { return &s }
