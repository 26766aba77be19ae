package models

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password     string    `gorm:"size:255;not null" json:"-"` // bcrypt hash
	FirstName    string    `gorm:"size:100" json:"firstName"`
	LastName     string    `gorm:"size:100" json:"lastName"`
	Bio          string    `gorm:"type:text" json:"bio"`
	ProfileImage string    `json:"profileImage"`
	IsVerified   bool      `gorm:"default:false" json:"isVerified"`
	Theme        string    `gorm:"size:10;default:'light'" json:"theme"` // light, dark
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	// No DeletedAt for hard delete
}
