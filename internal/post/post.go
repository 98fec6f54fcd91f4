package post

import (
	"time"

	"social-feed/internal/user"
)

type Post struct {
	ID        uint64     `gorm:"primaryKey" json:"id"`
	AuthorID  uint64     `gorm:"not null;index" json:"author_id"`
	Content   string     `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time  `json:"created_at"`
	Author    *user.User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

type CreateReq struct {
	Content string `json:"content" validate:"required"`
}
