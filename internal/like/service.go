package like

import (
	"context"
	"errors"
	"time"

	"social-feed/internal/event"
	"social-feed/internal/shared/apperr"
)

// TargetChecker verifies that the thing being liked exists. Implemented over
// the post and comment repositories, wired in the DI container.
type TargetChecker interface {
	PostExists(id uint64) (bool, error)
	CommentExists(id uint64) (bool, error)
}

type Service interface {
	Toggle(actorID uint64, t Target) (State, error)
}

type service struct {
	repo    Repository
	targets TargetChecker
	events  event.Writer
}

func NewService(r Repository, tc TargetChecker, ev event.Writer) Service {
	return &service{repo: r, targets: tc, events: ev}
}

func (s *service) Toggle(actorID uint64, t Target) (State, error) {
	if actorID == 0 {
		return "", apperr.ErrUnauthorized
	}
	ok, err := s.exists(t)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errors.Join(apperr.ErrNotFound, errors.New(string(t.Kind)+" not found"))
	}
	state, err := s.repo.Toggle(actorID, t)
	if err != nil {
		return "", err
	}
	if s.events != nil {
		_ = s.events.WriteJSON(context.Background(), event.LikeToggled{
			Type: "like.toggled", UserID: actorID,
			TargetKind: string(t.Kind), TargetID: t.ID,
			State: string(state), At: time.Now(),
		})
	}
	return state, nil
}

func (s *service) exists(t Target) (bool, error) {
	if t.Kind == KindPost {
		return s.targets.PostExists(t.ID)
	}
	return s.targets.CommentExists(t.ID)
}
