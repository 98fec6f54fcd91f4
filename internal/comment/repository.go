package comment

import (
	"errors"

	"social-feed/internal/shared/apperr"
	"social-feed/internal/shared/db"

	"gorm.io/gorm"
)

type Repository interface {
	Create(c *Comment) (*Comment, error)
	GetByID(id uint64) (*Comment, error)
	Exists(id uint64) (bool, error)
	ListByPost(postID uint64) ([]Comment, error)
	CountByPost(postIDs []uint64) (map[uint64]int64, error)
}

type repo struct {
	db *gorm.DB
}

func NewRepository(s *db.Store) Repository {
	return &repo{db: s.DB}
}

func (r *repo) Create(c *Comment) (*Comment, error) {
	if err := r.db.Create(c).Error; err != nil {
		return nil, err
	}
	// Reload with the author for the response payload.
	var out Comment
	if err := r.db.Preload("Author").First(&out, "id = ?", c.ID).Error; err != nil {
		return c, nil
	}
	return &out, nil
}

func (r *repo) GetByID(id uint64) (*Comment, error) {
	var c Comment
	if err := r.db.First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *repo) Exists(id uint64) (bool, error) {
	var n int64
	if err := r.db.Model(&Comment{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListByPost returns every comment of the post in creation order, id as the
// tie-break so the order is stable.
func (r *repo) ListByPost(postID uint64) ([]Comment, error) {
	var out []Comment
	err := r.db.Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&out).Error
	return out, err
}

func (r *repo) CountByPost(postIDs []uint64) (map[uint64]int64, error) {
	out := make(map[uint64]int64, len(postIDs))
	if len(postIDs) == 0 {
		return out, nil
	}
	var rows []struct {
		PostID uint64
		N      int64
	}
	err := r.db.Model(&Comment{}).
		Select("post_id, COUNT(*) AS n").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.PostID] = row.N
	}
	return out, nil
}
