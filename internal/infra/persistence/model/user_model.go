package model

import (
	"time"
)

// UserModel mirrors the 'users' table used by the local identity provider.
type UserModel struct {
	UID          string `gorm:"column:uid;type:varchar(36);primaryKey"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	DisplayName  string `gorm:"type:varchar(100);not null;default:''"`
	PhotoURL     string `gorm:"column:photo_url;type:varchar(2000);not null;default:''"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	TokenVersion int    `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
