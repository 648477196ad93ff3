package model

import (
	"time"

	"gorm.io/datatypes"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
type AddressModel struct {
	ID            string                      `gorm:"type:varchar(36);primaryKey"`
	Title         string                      `gorm:"type:text;not null"`
	Description   string                      `gorm:"type:text;not null;default:''"`
	IsPublic      bool                        `gorm:"not null;default:false;index:idx_addresses_public_created,priority:1"`
	Latitude      float64                     `gorm:"type:decimal(10,8);not null"`
	Longitude     float64                     `gorm:"type:decimal(11,8);not null"`
	OwnerUID      string                      `gorm:"column:owner_uid;type:varchar(128);not null;index:idx_addresses_owner_created,priority:1"`
	OwnerName     string                      `gorm:"type:text;not null"`
	Images        datatypes.JSONSlice[string] `gorm:"not null"`
	AverageRating *float64                    `gorm:"type:decimal(3,1)"`
	RatingsCount  int                         `gorm:"not null;default:0"`
	CreatedAt     time.Time                   `gorm:"index:idx_addresses_owner_created,priority:2;index:idx_addresses_public_created,priority:2"`
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}

// CommentModel is the GORM-specific struct for the 'address_comments' table.
type CommentModel struct {
	ID         string    `gorm:"type:varchar(36);primaryKey"`
	AddressID  string    `gorm:"type:varchar(36);not null;index:idx_comments_address_created,priority:1"`
	Text       string    `gorm:"type:text;not null"`
	AuthorUID  string    `gorm:"column:author_uid;type:varchar(128);not null"`
	AuthorName string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"index:idx_comments_address_created,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "address_comments"
}

// RatingModel is the GORM-specific struct for the 'address_ratings' table.
// The composite primary key enforces one rating per user per address.
type RatingModel struct {
	AddressID string `gorm:"type:varchar(36);primaryKey"`
	UserUID   string `gorm:"column:user_uid;type:varchar(128);primaryKey"`
	Stars     int    `gorm:"not null;check:chk_address_ratings_stars,stars BETWEEN 1 AND 5"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RatingModel) TableName() string {
	return "address_ratings"
}
