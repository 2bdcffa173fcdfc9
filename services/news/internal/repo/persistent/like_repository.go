package persistent

import (
	"context"
	"errors"

	"newsboard/pkg/database"
	"newsboard/pkg/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrAlreadyMember = errors.New("like already exists")
	ErrNotMember     = errors.New("like does not exist")
)

// LikeRepository is the like-set of one kind of target. Membership is a
// row keyed by (target, user); the primary key is the uniqueness guard.
type LikeRepository interface {
	Add(ctx context.Context, targetID, userID string) error
	Remove(ctx context.Context, targetID, userID string) error
	Likers(ctx context.Context, targetID string) ([]string, error)
	Count(ctx context.Context, targetID string) (int64, error)
	CountMany(ctx context.Context, targetIDs []string) (map[string]int64, error)
}

type likeRepository struct {
	db        *gorm.DB
	model     interface{}
	table     string
	targetCol string
	newRow    func(targetID, userID string) interface{}
}

func NewNewsLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{
		db:        db,
		model:     &models.NewsLike{},
		table:     models.NewsLike{}.TableName(),
		targetCol: "news_id",
		newRow: func(targetID, userID string) interface{} {
			return &models.NewsLike{NewsID: targetID, UserID: userID}
		},
	}
}

func NewCommentLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{
		db:        db,
		model:     &models.CommentLike{},
		table:     models.CommentLike{}.TableName(),
		targetCol: "comment_id",
		newRow: func(targetID, userID string) interface{} {
			return &models.CommentLike{CommentID: targetID, UserID: userID}
		},
	}
}

// Add inserts the membership. An existing row, including one inserted by a
// concurrent request, yields ErrAlreadyMember. A target removed in the
// meantime yields gorm.ErrRecordNotFound.
func (r *likeRepository) Add(ctx context.Context, targetID, userID string) error {
	res := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(r.newRow(targetID, userID))
	if res.Error != nil {
		if database.IsUniqueViolation(res.Error) {
			return ErrAlreadyMember
		}
		if database.IsForeignKeyViolation(res.Error) {
			return gorm.ErrRecordNotFound
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAlreadyMember
	}
	return nil
}

func (r *likeRepository) Remove(ctx context.Context, targetID, userID string) error {
	res := r.db.WithContext(ctx).
		Where(r.targetCol+" = ? AND user_id = ?", targetID, userID).
		Delete(r.model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotMember
	}
	return nil
}

func (r *likeRepository) Likers(ctx context.Context, targetID string) ([]string, error) {
	var usernames []string
	err := r.db.WithContext(ctx).
		Table(r.table).
		Joins("JOIN users ON users.id = "+r.table+".user_id").
		Where(r.table+"."+r.targetCol+" = ?", targetID).
		Pluck("users.username", &usernames).Error
	if err != nil {
		return nil, err
	}
	if usernames == nil {
		usernames = []string{}
	}
	return usernames, nil
}

func (r *likeRepository) Count(ctx context.Context, targetID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(r.model).
		Where(r.targetCol+" = ?", targetID).
		Count(&count).Error
	return count, err
}

// CountMany returns the like count of every id; ids without likes map to 0.
func (r *likeRepository) CountMany(ctx context.Context, targetIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(targetIDs))
	if len(targetIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		TargetID string
		Total    int64
	}
	err := r.db.WithContext(ctx).
		Model(r.model).
		Select(r.targetCol+" AS target_id, COUNT(*) AS total").
		Where(r.targetCol+" IN ?", targetIDs).
		Group(r.targetCol).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, id := range targetIDs {
		counts[id] = 0
	}
	for _, row := range rows {
		counts[row.TargetID] = row.Total
	}
	return counts, nil
}
