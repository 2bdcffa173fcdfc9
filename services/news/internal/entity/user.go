package entity

import (
	"time"

	"newsboard/pkg/authz"
)

type UserRole string

const (
	RoleMember UserRole = "member"
	RoleStaff  UserRole = "staff"
)

type User struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Password  string     `json:"-"`
	Role      UserRole   `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// OwnedBy holds when p is this very account. The principal is resolved
// from storage on every request, so its username is current.
func (u *User) OwnedBy(p authz.Principal) bool {
	return p.Username != "" && p.Username == u.Username
}

func (u *User) Principal() *authz.Principal {
	return &authz.Principal{ID: u.ID, Username: u.Username}
}

// UserChanges is a partial update; nil fields are left untouched.
type UserChanges struct {
	Username *string
	Password *string
	Email    *string
}

func (c UserChanges) Empty() bool {
	return c.Username == nil && c.Password == nil && c.Email == nil
}
