package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleMember UserRole = "member"
	RoleStaff  UserRole = "staff"
)

type User struct {
	ID        string     `gorm:"type:uuid;primaryKey" json:"id"`
	Username  string     `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	Email     string     `gorm:"type:varchar(254)" json:"email"`
	Password  string     `gorm:"not null" json:"-"`
	Role      UserRole   `gorm:"type:varchar(20);default:'member'" json:"role"`
	IsActive  bool       `gorm:"not null;default:true" json:"is_active"`
	LastLogin *time.Time `json:"last_login"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
