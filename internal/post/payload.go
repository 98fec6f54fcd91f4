package post

import "social-feed/internal/comment"

// PostWithStats carries the read-time annotations next to the stored row
// instead of mutating it.
type PostWithStats struct {
	Post
	LikesCount    int64 `json:"likes_count"`
	CommentsCount int64 `json:"comments_count"`
	IsLiked       bool  `json:"is_liked"`
}

type PostDetail struct {
	PostWithStats
	Comments []*comment.Node `json:"comments"`
}
