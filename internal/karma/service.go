package karma

import (
	"context"
	"encoding/json"
	"time"
)

const (
	topN     = 5
	cacheKey = "karma:leaderboard"
	cacheTTL = 30 * time.Second
)

type Service interface {
	Leaderboard() ([]Row, error)
}

type service struct {
	repo  Repository
	cache Cache
}

// NewService accepts a nil cache; the leaderboard then always hits the store.
func NewService(r Repository, c Cache) Service {
	return &service{repo: r, cache: c}
}

func (s *service) Leaderboard() ([]Row, error) {
	ctx := context.Background()
	if s.cache != nil {
		if raw, ok := s.cache.Get(ctx, cacheKey); ok {
			var rows []Row
			if err := json.Unmarshal([]byte(raw), &rows); err == nil {
				return rows, nil
			}
		}
	}
	rows, err := s.repo.TopUsers(topN)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if b, err := json.Marshal(rows); err == nil {
			s.cache.Set(ctx, cacheKey, string(b), cacheTTL)
		}
	}
	return rows, nil
}
