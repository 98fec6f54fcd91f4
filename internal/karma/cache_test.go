package karma

import (
	"context"
	"time"
)

// memCache is a test stand-in for the redis cache.
type memCache struct {
	data map[string]string
}

func (m *memCache) Get(_ context.Context, key string) (string, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *memCache) Set(_ context.Context, key, val string, _ time.Duration) {
	m.data[key] = val
}
