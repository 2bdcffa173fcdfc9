package persistent

import (
	"context"

	"newsboard/pkg/models"
	"newsboard/services/news/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NewsRepository interface {
	Create(ctx context.Context, news *entity.News) error
	GetByID(ctx context.Context, id string) (*entity.News, error)
	List(ctx context.Context) ([]*entity.News, error)
	ListByCreator(ctx context.Context, creatorID string) ([]*entity.News, error)
	ListLikedBy(ctx context.Context, userID string) ([]*entity.News, error)
	Search(ctx context.Context, term string) ([]*entity.News, error)
	Update(ctx context.Context, id, creatorID string, changes entity.NewsChanges) error
	Delete(ctx context.Context, id, creatorID string) error
	CommentCounts(ctx context.Context, newsIDs []string) (map[string]int64, error)
}

type newsRepository struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

// storage order: insertion time, then id.
func (r *newsRepository) base(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.News{}).
		Preload("Creator").
		Order("news.created_at ASC").
		Order("news.id ASC")
}

func (r *newsRepository) Create(ctx context.Context, news *entity.News) error {
	newsModel := ToNewsModel(news)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(newsModel).Error; err != nil {
		return err
	}

	username := news.CreatorUsername
	*news = *ToNewsEntity(newsModel)
	news.CreatorUsername = username
	return nil
}

func (r *newsRepository) GetByID(ctx context.Context, id string) (*entity.News, error) {
	var newsModel models.News
	if err := r.db.WithContext(ctx).Preload("Creator").Where("id = ?", id).First(&newsModel).Error; err != nil {
		return nil, err
	}
	return ToNewsEntity(&newsModel), nil
}

func (r *newsRepository) List(ctx context.Context) ([]*entity.News, error) {
	var rows []models.News
	if err := r.base(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return toNewsEntities(rows), nil
}

func (r *newsRepository) ListByCreator(ctx context.Context, creatorID string) ([]*entity.News, error) {
	var rows []models.News
	if err := r.base(ctx).Where("news.creator_id = ?", creatorID).Find(&rows).Error; err != nil {
		return nil, err
	}
	return toNewsEntities(rows), nil
}

func (r *newsRepository) ListLikedBy(ctx context.Context, userID string) ([]*entity.News, error) {
	var rows []models.News
	err := r.base(ctx).
		Joins("JOIN news_likes ON news_likes.news_id = news.id").
		Where("news_likes.user_id = ?", userID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toNewsEntities(rows), nil
}

func (r *newsRepository) Search(ctx context.Context, term string) ([]*entity.News, error) {
	filter, args := matchAny(r.db, term, "news.title", "news.content", "news.url", "users.username")

	var rows []models.News
	err := r.base(ctx).
		Joins("JOIN users ON users.id = news.creator_id").
		Where(filter, args...).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toNewsEntities(rows), nil
}

// Update applies changes only while creatorID still owns the row. A miss
// is reported as gorm.ErrRecordNotFound.
func (r *newsRepository) Update(ctx context.Context, id, creatorID string, changes entity.NewsChanges) error {
	updates := map[string]interface{}{}
	if changes.Title != nil {
		updates["title"] = *changes.Title
	}
	if changes.Content != nil {
		updates["content"] = *changes.Content
	}
	if changes.URL != nil {
		updates["url"] = *changes.URL
	}
	if len(updates) == 0 {
		return nil
	}

	res := r.db.WithContext(ctx).
		Model(&models.News{}).
		Where("id = ? AND creator_id = ?", id, creatorID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the news item with its comments and every like on
// either, in one transaction.
func (r *newsRepository) Delete(ctx context.Context, id, creatorID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		comments := tx.Model(&models.Comment{}).Select("id").Where("news_id = ?", id)

		if err := tx.Where("comment_id IN (?)", comments).Delete(&models.CommentLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("news_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("news_id = ?", id).Delete(&models.NewsLike{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ? AND creator_id = ?", id, creatorID).Delete(&models.News{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *newsRepository) CommentCounts(ctx context.Context, newsIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(newsIDs))
	if len(newsIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		NewsID string
		Total  int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Select("news_id, COUNT(*) AS total").
		Where("news_id IN ?", newsIDs).
		Group("news_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.NewsID] = row.Total
	}
	return counts, nil
}
