// Package model contains data models for the application
package model

import (
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

// Role names stored in roles.name
const (
	RoleAdmin    = "Admin"
	RoleCustomer = "Customer"
)

// User status values
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// Role groups users by what they may do on the dashboard
type Role struct {
	ID        string    `gorm:"type:char(26);primaryKey"`
	Name      string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// User represents a dashboard account. Login accepts the email or the phone.
type User struct {
	// ID is the unique identifier for the user
	ID string `gorm:"type:char(26);primaryKey"`
	// RoleID is the identifier of the user's role
	RoleID string `gorm:"type:char(26);not null;index"`
	// Role is loaded with Preload when the role name is needed
	Role Role `gorm:"foreignKey:RoleID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	// Name is the user's full name
	Name string `gorm:"type:varchar(255);not null"`
	// Email is the user's email address which must be unique
	Email string `gorm:"type:varchar(255);uniqueIndex;not null"`
	// Phone is the user's phone number which must be unique
	Phone string `gorm:"type:varchar(20);uniqueIndex;not null"`
	// Status is either active or inactive
	Status string `gorm:"type:varchar(20);not null"`
	// Password is the bcrypt hash of the user's password
	Password  string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// IsActive reports whether the user may sign in
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

func (r *Role) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = ulid.Make().String()
	}
	return nil
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	u.ID = ulid.Make().String()
	return nil
}

// Profile is the cached read model behind GET /auth/me
type Profile struct {
	ID       string `json:"id"`
	RoleID   string `json:"role_id"`
	RoleName string `json:"role_name"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Status   string `json:"status"`
}

// Profile builds the read model of u. Role must be preloaded for RoleName.
func (u *User) Profile() *Profile {
	return &Profile{
		ID:       u.ID,
		RoleID:   u.RoleID,
		RoleName: u.Role.Name,
		Name:     u.Name,
		Email:    u.Email,
		Phone:    u.Phone,
		Status:   u.Status,
	}
}
