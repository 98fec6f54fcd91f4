package like

import "time"

// Like holds exactly one of PostID/CommentID; Target enforces that shape at
// the API boundary. The composite unique indexes are the authority for
// at-most-one-row-per-(user,target) under concurrent toggles.
type Like struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"not null;index;uniqueIndex:uniq_user_post_like;uniqueIndex:uniq_user_comment_like" json:"user_id"`
	PostID    *uint64   `gorm:"index;uniqueIndex:uniq_user_post_like" json:"post_id,omitempty"`
	CommentID *uint64   `gorm:"index;uniqueIndex:uniq_user_comment_like" json:"comment_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// State reported by a toggle. Ignored means a concurrent like won the
// insert race; the caller's request still succeeded.
type State string

const (
	StateLiked   State = "liked"
	StateUnliked State = "unliked"
	StateIgnored State = "ignored"
)
