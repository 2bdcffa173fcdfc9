package persistent

import (
	"context"

	"newsboard/pkg/models"
	"newsboard/services/news/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	ListByNews(ctx context.Context, newsID string) ([]*entity.Comment, error)
	ListByCreator(ctx context.Context, creatorID string) ([]*entity.Comment, error)
	ListLikedBy(ctx context.Context, userID string) ([]*entity.Comment, error)
	Search(ctx context.Context, term string) ([]*entity.Comment, error)
	Update(ctx context.Context, id, creatorID string, changes entity.CommentChanges) error
	Delete(ctx context.Context, id, creatorID string) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) base(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Preload("Creator").
		Order("comments.created_at ASC").
		Order("comments.id ASC")
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentModel := ToCommentModel(comment)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(commentModel).Error; err != nil {
		return err
	}

	username := comment.CreatorUsername
	*comment = *ToCommentEntity(commentModel)
	comment.CreatorUsername = username
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	var commentModel models.Comment
	if err := r.db.WithContext(ctx).Preload("Creator").Where("id = ?", id).First(&commentModel).Error; err != nil {
		return nil, err
	}
	return ToCommentEntity(&commentModel), nil
}

func (r *commentRepository) ListByNews(ctx context.Context, newsID string) ([]*entity.Comment, error) {
	var rows []models.Comment
	if err := r.base(ctx).Where("comments.news_id = ?", newsID).Find(&rows).Error; err != nil {
		return nil, err
	}
	return toCommentEntities(rows), nil
}

func (r *commentRepository) ListByCreator(ctx context.Context, creatorID string) ([]*entity.Comment, error) {
	var rows []models.Comment
	if err := r.base(ctx).Where("comments.creator_id = ?", creatorID).Find(&rows).Error; err != nil {
		return nil, err
	}
	return toCommentEntities(rows), nil
}

func (r *commentRepository) ListLikedBy(ctx context.Context, userID string) ([]*entity.Comment, error) {
	var rows []models.Comment
	err := r.base(ctx).
		Joins("JOIN comment_likes ON comment_likes.comment_id = comments.id").
		Where("comment_likes.user_id = ?", userID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toCommentEntities(rows), nil
}

func (r *commentRepository) Search(ctx context.Context, term string) ([]*entity.Comment, error) {
	filter, args := matchAny(r.db, term, "comments.content", "users.username")

	var rows []models.Comment
	err := r.base(ctx).
		Joins("JOIN users ON users.id = comments.creator_id").
		Where(filter, args...).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toCommentEntities(rows), nil
}

func (r *commentRepository) Update(ctx context.Context, id, creatorID string, changes entity.CommentChanges) error {
	if changes.Content == nil {
		return nil
	}

	res := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("id = ? AND creator_id = ?", id, creatorID).
		Update("content", *changes.Content)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *commentRepository) Delete(ctx context.Context, id, creatorID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id = ?", id).Delete(&models.CommentLike{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ? AND creator_id = ?", id, creatorID).Delete(&models.Comment{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
