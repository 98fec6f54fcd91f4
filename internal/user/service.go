package user

import (
	"errors"
	"strings"

	"social-feed/internal/shared/apperr"

	"golang.org/x/crypto/bcrypt"
)

// Guest accounts share one password; a username already claimed with a
// different password belongs to somebody else and is off limits.
const guestPassword = "guestpassword123"

type Service interface {
	GuestLogin(username string) (*User, error)
	GetByID(id uint64) (*User, error)
}

type service struct {
	repo Repository
}

func NewService(r Repository) Service { return &service{repo: r} }

func (s *service) GuestLogin(username string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.Join(apperr.ErrInvalid, errors.New("username required"))
	}

	u, err := s.repo.GetByUsername(username)
	switch {
	case err == nil:
		if bcrypt.CompareHashAndPassword([]byte(u.PassHash), []byte(guestPassword)) != nil {
			return nil, errors.Join(apperr.ErrConflict, errors.New("username taken"))
		}
		return u, nil
	case errors.Is(err, apperr.ErrNotFound):
		hash, herr := bcrypt.GenerateFromPassword([]byte(guestPassword), bcrypt.DefaultCost)
		if herr != nil {
			return nil, herr
		}
		created, cerr := s.repo.Create(&User{Username: username, PassHash: string(hash)})
		if errors.Is(cerr, apperr.ErrConflict) {
			// Lost a create race; the row exists now.
			return s.repo.GetByUsername(username)
		}
		return created, cerr
	default:
		return nil, err
	}
}

func (s *service) GetByID(id uint64) (*User, error) { return s.repo.GetByID(id) }
