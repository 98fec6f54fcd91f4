package karma

import (
	"social-feed/internal/shared/db"

	"gorm.io/gorm"
)

type Row struct {
	UserID       uint64 `json:"-"`
	Username     string `json:"username"`
	Karma        int64  `json:"karma"`
	PostLikes    int64  `json:"post_likes"`
	CommentLikes int64  `json:"comment_likes"`
}

type Repository interface {
	TopUsers(limit int) ([]Row, error)
}

type repo struct {
	db *gorm.DB
}

func NewRepository(s *db.Store) Repository {
	return &repo{db: s.DB}
}

// TopUsers ranks users by karma = 5*post-likes + 1*comment-likes. The two
// join paths fan out the row set, so both counts use DISTINCT like ids and
// are combined per user before ordering. Username breaks karma ties.
func (r *repo) TopUsers(limit int) ([]Row, error) {
	var rows []Row
	err := r.db.Raw(`
		SELECT u.id AS user_id,
		       u.username,
		       COUNT(DISTINCT pl.id) AS post_likes,
		       COUNT(DISTINCT cl.id) AS comment_likes,
		       COUNT(DISTINCT pl.id) * 5 + COUNT(DISTINCT cl.id) AS karma
		FROM users u
		LEFT JOIN posts p ON p.author_id = u.id
		LEFT JOIN likes pl ON pl.post_id = p.id
		LEFT JOIN comments c ON c.author_id = u.id
		LEFT JOIN likes cl ON cl.comment_id = c.id
		GROUP BY u.id, u.username
		ORDER BY karma DESC, u.username ASC
		LIMIT ?`, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
