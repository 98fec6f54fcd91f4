package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"social-feed/internal/shared/apperr"
	"social-feed/internal/shared/jwt"
)

type HandlerFunc func(http.ResponseWriter, *http.Request) error

func Wrap(fn HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			WriteJSON(w, map[string]any{"error": err.Error()}, statusOf(err))
		}
	})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, apperr.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperr.ErrInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func Decode[T any](r *http.Request) (T, error) {
	var t T
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		return t, errors.Join(apperr.ErrInvalid, err)
	}
	return t, nil
}

func WriteJSON(w http.ResponseWriter, v any, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, code int, err error, reason string) {
	WriteJSON(w, map[string]any{"error": err.Error(), "reason": reason}, code)
}

// Stable string key so multiple linked copies of the package agree.
var ctxUserIDKey = "httpx.user_id"

// AuthMiddleware requires a valid Bearer token and stores the user id on
// the request context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := r.Header.Get("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			WriteError(w, http.StatusUnauthorized, apperr.ErrUnauthorized, "missing bearer")
			return
		}
		uid, err := jwt.Parse(strings.TrimSpace(h[7:]))
		if err != nil || uid == 0 {
			WriteError(w, http.StatusUnauthorized, apperr.ErrUnauthorized, "bad token")
			return
		}
		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), uid)))
	})
}

// OptionalAuth parses a Bearer token when one is sent but lets anonymous
// requests through. Read endpoints use it for viewer annotations.
func OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := r.Header.Get("Authorization")
		if strings.HasPrefix(h, "Bearer ") {
			if uid, err := jwt.Parse(strings.TrimSpace(h[7:])); err == nil && uid != 0 {
				r = r.WithContext(withUser(r.Context(), uid))
			}
		}
		next.ServeHTTP(w, r)
	})
}

func withUser(ctx context.Context, uid uint64) context.Context {
	return context.WithValue(ctx, ctxUserIDKey, uid)
}

func UserFromCtx(r *http.Request) (uint64, error) {
	uid, _ := r.Context().Value(ctxUserIDKey).(uint64)
	if uid == 0 {
		return 0, apperr.ErrUnauthorized
	}
	return uid, nil
}

// ViewerFromCtx is UserFromCtx without the error: zero means anonymous.
func ViewerFromCtx(r *http.Request) uint64 {
	uid, _ := r.Context().Value(ctxUserIDKey).(uint64)
	return uid
}

func PathID(r *http.Request, name string) (uint64, error) {
	id, err := strconv.ParseUint(r.PathValue(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.Join(apperr.ErrInvalid, errors.New("bad "+name))
	}
	return id, nil
}

func QueryInt(r *http.Request, key string, def int) int {
	s := r.URL.Query().Get(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
