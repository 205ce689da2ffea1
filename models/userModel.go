package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	gorm.Model
	Email        string  `json:"email" gorm:"size:254;uniqueIndex;not null"`
	Username     string  `json:"username" gorm:"size:150;uniqueIndex;not null"`
	FirstName    string  `json:"first_name" gorm:"size:150"`
	LastName     string  `json:"last_name" gorm:"size:150"`
	Password     string  `json:"-"`
	Avatar       *string `json:"avatar"`
	Role         string  `json:"-" gorm:"size:16;default:user"`
	TokenVersion int     `json:"-" gorm:"not null;default:0"`
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Subscription means UserID follows AuthorID.
type Subscription struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_subscription_user_author"`
	AuthorID  uint `gorm:"not null;uniqueIndex:idx_subscription_user_author"`
	CreatedAt time.Time
}

type SignupData struct {
	Email     string `json:"email" binding:"required,email,max=254"`
	Username  string `json:"username" binding:"required,max=150,username"`
	FirstName string `json:"first_name" binding:"required,max=150"`
	LastName  string `json:"last_name" binding:"required,max=150"`
	Password  string `json:"password" binding:"required,max=128"`
}

type LoginData struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SetPasswordData struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8,max=128"`
}

type AvatarData struct {
	Avatar string `json:"avatar" binding:"required"`
}
