package persistent

import (
	"context"
	"testing"

	"newsboard/services/news/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNewsRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewNewsRepository(db)
	alice := createUser(t, db, "alice")

	news := createNews(t, repo, alice, "golang")
	assert.NotEmpty(t, news.ID)
	assert.Equal(t, "alice", news.CreatorUsername)

	got, err := repo.GetByID(context.Background(), news.ID)
	require.NoError(t, err)
	assert.Equal(t, "golang", got.Title)
	assert.Equal(t, alice.ID, got.CreatorID)
	assert.Equal(t, "alice", got.CreatorUsername)

	_, err = repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestNewsRepository_ListStorageOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewNewsRepository(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	first := createNews(t, repo, alice, "first")
	second := createNews(t, repo, bob, "second")
	third := createNews(t, repo, alice, "third")

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{first.ID, second.ID, third.ID}, []string{all[0].ID, all[1].ID, all[2].ID})

	mine, err := repo.ListByCreator(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, first.ID, mine[0].ID)
	assert.Equal(t, third.ID, mine[1].ID)
}

func TestNewsRepository_Search(t *testing.T) {
	db := newTestDB(t)
	repo := NewNewsRepository(db)
	alice := createUser(t, db, "alice")
	carol := createUser(t, db, "Carol")

	byTitle := createNews(t, repo, alice, "GoLang")
	byUser := createNews(t, repo, carol, "rust")
	createNews(t, repo, alice, "python")

	found, err := repo.Search(context.Background(), "golang")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, byTitle.ID, found[0].ID)

	found, err = repo.Search(context.Background(), "CAROL")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, byUser.ID, found[0].ID)

	// matches url "https://example.com/..." of every row, in storage order
	found, err = repo.Search(context.Background(), "EXAMPLE.com")
	require.NoError(t, err)
	assert.Len(t, found, 3)
	assert.Equal(t, byTitle.ID, found[0].ID)

	found, err = repo.Search(context.Background(), "%")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestNewsRepository_UpdateRequiresOwner(t *testing.T) {
	db := newTestDB(t)
	repo := NewNewsRepository(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	news := createNews(t, repo, alice, "title")

	title := "renamed"
	err := repo.Update(context.Background(), news.ID, bob.ID, entity.NewsChanges{Title: &title})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	got, err := repo.GetByID(context.Background(), news.ID)
	require.NoError(t, err)
	assert.Equal(t, "title", got.Title)

	require.NoError(t, repo.Update(context.Background(), news.ID, alice.ID, entity.NewsChanges{Title: &title}))
	got, err = repo.GetByID(context.Background(), news.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Title)
	assert.Equal(t, "content of title", got.Content)
}

func TestNewsRepository_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	newsRepo := NewNewsRepository(db)
	commentRepo := NewCommentRepository(db)
	newsLikes := NewNewsLikeRepository(db)
	commentLikes := NewCommentLikeRepository(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	news := createNews(t, newsRepo, alice, "doomed")
	other := createNews(t, newsRepo, alice, "kept")
	c1 := createComment(t, commentRepo, news, bob, "c1")
	c2 := createComment(t, commentRepo, news, alice, "c2")
	kept := createComment(t, commentRepo, other, bob, "kept")
	require.NoError(t, newsLikes.Add(ctx, news.ID, bob.ID))
	require.NoError(t, commentLikes.Add(ctx, c1.ID, alice.ID))

	assert.ErrorIs(t, newsRepo.Delete(ctx, news.ID, bob.ID), gorm.ErrRecordNotFound)
	_, err := commentRepo.GetByID(ctx, c1.ID)
	require.NoError(t, err, "failed delete must not remove children")

	require.NoError(t, newsRepo.Delete(ctx, news.ID, alice.ID))

	_, err = newsRepo.GetByID(ctx, news.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	for _, id := range []string{c1.ID, c2.ID} {
		_, err = commentRepo.GetByID(ctx, id)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	}
	_, err = commentRepo.GetByID(ctx, kept.ID)
	assert.NoError(t, err)

	liked, err := newsRepo.ListLikedBy(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, liked)
	count, err := commentLikes.Count(ctx, c1.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestNewsRepository_CommentCounts(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	newsRepo := NewNewsRepository(db)
	commentRepo := NewCommentRepository(db)
	alice := createUser(t, db, "alice")

	a := createNews(t, newsRepo, alice, "a")
	b := createNews(t, newsRepo, alice, "b")
	createComment(t, commentRepo, a, alice, "1")
	createComment(t, commentRepo, a, alice, "2")

	counts, err := newsRepo.CommentCounts(ctx, []string{a.ID, b.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[a.ID])
	assert.Equal(t, int64(0), counts[b.ID])

	counts, err = newsRepo.CommentCounts(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, counts)
}
