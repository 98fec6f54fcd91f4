package post

import (
	"errors"

	"social-feed/internal/shared/apperr"
	"social-feed/internal/shared/db"

	"gorm.io/gorm"
)

type Repository interface {
	Create(p *Post) (*Post, error)
	GetByID(id uint64) (*Post, error)
	Exists(id uint64) (bool, error)
	List(limit, offset int) ([]Post, error)
}

type repo struct {
	db *gorm.DB
}

func NewRepository(s *db.Store) Repository {
	return &repo{db: s.DB}
}

func (r *repo) Create(p *Post) (*Post, error) {
	if err := r.db.Create(p).Error; err != nil {
		return nil, err
	}
	var out Post
	if err := r.db.Preload("Author").First(&out, "id = ?", p.ID).Error; err != nil {
		return p, nil
	}
	return &out, nil
}

func (r *repo) GetByID(id uint64) (*Post, error) {
	var p Post
	if err := r.db.Preload("Author").First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *repo) Exists(id uint64) (bool, error) {
	var n int64
	if err := r.db.Model(&Post{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *repo) List(limit, offset int) ([]Post, error) {
	var out []Post
	err := r.db.Preload("Author").
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	return out, err
}
