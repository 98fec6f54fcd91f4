package event

import "time"

// Envelope types published to the feed.events topic. Consumers key off Type.
type PostCreated struct {
	Type      string    `json:"type"` // "post.created"
	PostID    uint64    `json:"post_id"`
	AuthorID  uint64    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

type CommentCreated struct {
	Type      string    `json:"type"` // "comment.created"
	CommentID uint64    `json:"comment_id"`
	PostID    uint64    `json:"post_id"`
	AuthorID  uint64    `json:"author_id"`
	ParentID  *uint64   `json:"parent_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type LikeToggled struct {
	Type       string    `json:"type"` // "like.toggled"
	UserID     uint64    `json:"user_id"`
	TargetKind string    `json:"target_kind"` // "post" | "comment"
	TargetID   uint64    `json:"target_id"`
	State      string    `json:"state"` // "liked" | "unliked" | "ignored"
	At         time.Time `json:"at"`
}
