package like

import (
	"net/http"

	"social-feed/internal/shared/httpx"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) TogglePost(w http.ResponseWriter, r *http.Request) error {
	return h.toggle(w, r, "post_id", PostTarget)
}

func (h *Handler) ToggleComment(w http.ResponseWriter, r *http.Request) error {
	return h.toggle(w, r, "comment_id", CommentTarget)
}

func (h *Handler) toggle(w http.ResponseWriter, r *http.Request, param string, mk func(uint64) Target) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	id, err := httpx.PathID(r, param)
	if err != nil {
		return err
	}
	state, err := h.svc.Toggle(uid, mk(id))
	if err != nil {
		return err
	}
	code := http.StatusOK
	if state == StateLiked {
		code = http.StatusCreated
	}
	httpx.WriteJSON(w, map[string]any{"status": string(state)}, code)
	return nil
}
