package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type News struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(50);not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	URL       string    `gorm:"column:url;type:varchar(200);not null" json:"url"`
	CreatorID string    `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Creator User `gorm:"foreignKey:CreatorID;constraint:OnDelete:CASCADE" json:"-"`
}

func (News) TableName() string {
	return "news"
}

func (n *News) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return nil
}

type Comment struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	NewsID    string    `gorm:"type:uuid;not null;index" json:"news_id"`
	CreatorID string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Content   string    `gorm:"type:varchar(200);not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	News    News `gorm:"foreignKey:NewsID;constraint:OnDelete:CASCADE" json:"-"`
	Creator User `gorm:"foreignKey:CreatorID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Comment) TableName() string {
	return "comments"
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
