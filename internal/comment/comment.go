package comment

import (
	"time"

	"social-feed/internal/user"
)

type Comment struct {
	ID        uint64     `gorm:"primaryKey" json:"id"`
	PostID    uint64     `gorm:"not null;index" json:"post_id"`
	AuthorID  uint64     `gorm:"not null;index" json:"author_id"`
	ParentID  *uint64    `gorm:"index" json:"parent_id,omitempty"`
	Content   string     `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time  `json:"created_at"`
	Author    *user.User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

type CreateReq struct {
	Content  string  `json:"content" validate:"required"`
	ParentID *uint64 `json:"parent_id"`
}
