package user

import (
	"errors"

	"social-feed/internal/shared/apperr"
	"social-feed/internal/shared/db"

	"gorm.io/gorm"
)

type Repository interface {
	Create(u *User) (*User, error)
	GetByID(id uint64) (*User, error)
	GetByUsername(name string) (*User, error)
}

type repo struct {
	db *gorm.DB
}

func NewRepository(s *db.Store) Repository {
	return &repo{db: s.DB}
}

func (r *repo) Create(u *User) (*User, error) {
	if err := r.db.Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.ErrConflict
		}
		return nil, err
	}
	return u, nil
}

func (r *repo) GetByID(id uint64) (*User, error) {
	var u User
	if err := r.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *repo) GetByUsername(name string) (*User, error) {
	var u User
	if err := r.db.First(&u, "username = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
