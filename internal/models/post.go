package models

import (
	"time"

	"gorm.io/gorm"
)

// Post represents a post in the Chirp application. A post must carry text,
// an image, or both; ImageURL always holds the media store's durable URL,
// never the original upload payload.
type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Text     string `gorm:"type:text" json:"text"`
	ImageURL string `json:"img"`
	UserID   uint   `gorm:"not null;index" json:"user_id"`
	User     User   `gorm:"foreignKey:UserID" json:"user"`
	// Comments are loaded in creation order.
	Comments []Comment `gorm:"foreignKey:PostID" json:"comments"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes_count"`
	// Liked indicates whether the current requesting user liked this post (computed)
	Liked     bool           `gorm:"->" json:"liked"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
