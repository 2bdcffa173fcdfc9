package models

import "time"

// NewsLike and CommentLike are pure set memberships: the composite primary
// key is the uniqueness guard for (target, liker) and no timestamp is kept.
type NewsLike struct {
	NewsID string `gorm:"type:uuid;primaryKey" json:"news_id"`
	UserID string `gorm:"type:uuid;primaryKey;index" json:"user_id"`

	News News `gorm:"foreignKey:NewsID;constraint:OnDelete:CASCADE" json:"-"`
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (NewsLike) TableName() string {
	return "news_likes"
}

type CommentLike struct {
	CommentID string `gorm:"type:uuid;primaryKey" json:"comment_id"`
	UserID    string `gorm:"type:uuid;primaryKey;index" json:"user_id"`

	Comment Comment `gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE" json:"-"`
	User    User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}

// RevokedToken backs the refresh token blacklist when redis is unavailable.
type RevokedToken struct {
	JTI       string    `gorm:"column:jti;primaryKey;type:varchar(64)"`
	ExpiresAt time.Time `gorm:"index;not null"`
}

func (RevokedToken) TableName() string {
	return "revoked_tokens"
}
