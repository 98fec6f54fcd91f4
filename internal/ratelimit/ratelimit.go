package ratelimit

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"social-feed/internal/shared/apperr"
	"social-feed/internal/shared/httpx"

	"github.com/redis/go-redis/v9"
)

type Limiter struct{ R *redis.Client }

func New(r *redis.Client) *Limiter { return &Limiter{R: r} }

func (l *Limiter) AllowSliding(r *http.Request, key string, limit int64, window time.Duration) (bool, int64, error) {
	ctx := r.Context()
	k := "rl:" + key
	pipe := l.R.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.Expire(ctx, k, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, err
	}
	n := incr.Val()
	return n <= limit, n, nil
}

// PerUser limits authenticated writes per user id within the window.
func (l *Limiter) PerUser(limit int64, window time.Duration, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, err := httpx.UserFromCtx(r)
		if err != nil {
			httpx.WriteError(w, http.StatusUnauthorized, apperr.ErrUnauthorized, "missing_user")
			return
		}
		ok, n, e := l.AllowSliding(r, strconv.FormatUint(uid, 10), limit, window)
		if e != nil {
			httpx.WriteError(w, http.StatusTooManyRequests, fmt.Errorf("rate limiter error"), "rate_limiter_error")
			return
		}
		if !ok {
			httpx.WriteError(w, http.StatusTooManyRequests,
				fmt.Errorf("rate limit exceeded (count=%d, limit=%d)", n, limit),
				"rate_limited")
			return
		}
		next.ServeHTTP(w, r)
	})
}
