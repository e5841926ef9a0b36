package coursesync

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// SessionSource produces a validated portal session token. In
// production this is the browser-driven login handshake.
type SessionSource func(ctx context.Context) (string, error)

// sessionCache keeps validated tokens around for a short while so a
// course run shortly after another reuses the session instead of
// driving the browser again. Tokens never outlive the process.
type sessionCache struct {
	cache   *expirable.LRU[string, string]
	acquire SessionSource
	key     string
}

func newSessionCache(username string, ttl time.Duration, acquire SessionSource) sessionCache {
	return sessionCache{
		cache:   expirable.NewLRU[string, string](8, nil, ttl),
		acquire: acquire,
		key:     username,
	}
}

func (s sessionCache) Get(ctx context.Context) (string, error) {
	cached, hit := s.cache.Get(s.key)
	if hit {
		return cached, nil
	}

	token, err := s.acquire(ctx)
	if err != nil {
		return "", err
	}
	s.cache.Add(s.key, token)
	return token, nil
}

func (s sessionCache) Invalidate() {
	s.cache.Remove(s.key)
}
