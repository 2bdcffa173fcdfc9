package persistent

import (
	"context"

	"newsboard/pkg/models"
	"newsboard/services/news/internal/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// Update writes already validated and hashed changes.
	Update(ctx context.Context, id string, changes entity.UserChanges) error
	Delete(ctx context.Context, id string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var userModel models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userModel models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) Update(ctx context.Context, id string, changes entity.UserChanges) error {
	updates := map[string]interface{}{}
	if changes.Username != nil {
		updates["username"] = *changes.Username
	}
	if changes.Password != nil {
		updates["password"] = *changes.Password
	}
	if changes.Email != nil {
		updates["email"] = *changes.Email
	}
	if len(updates) == 0 {
		return nil
	}

	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the account together with everything it authored and
// every like it gave or received, in one transaction.
func (r *userRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ownNews := tx.Model(&models.News{}).Select("id").Where("creator_id = ?", id)
		doomedComments := tx.Model(&models.Comment{}).Select("id").
			Where("creator_id = ? OR news_id IN (?)", id, ownNews)

		if err := tx.Where("user_id = ? OR comment_id IN (?)", id, doomedComments).
			Delete(&models.CommentLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("creator_id = ? OR news_id IN (?)", id, ownNews).
			Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ? OR news_id IN (?)", id, ownNews).
			Delete(&models.NewsLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("creator_id = ?", id).Delete(&models.News{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&models.User{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
