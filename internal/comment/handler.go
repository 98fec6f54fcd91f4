package comment

import (
	"net/http"

	"social-feed/internal/shared/httpx"
	"social-feed/internal/shared/validate"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	pid, err := httpx.PathID(r, "post_id")
	if err != nil {
		return err
	}
	in, err := httpx.Decode[CreateReq](r)
	if err != nil {
		return err
	}
	if err := validate.Struct(in); err != nil {
		return err
	}
	c, err := h.svc.Create(uid, pid, in)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, c, http.StatusCreated)
	return nil
}

func (h *Handler) TreeByPost(w http.ResponseWriter, r *http.Request) error {
	pid, err := httpx.PathID(r, "post_id")
	if err != nil {
		return err
	}
	viewer := httpx.ViewerFromCtx(r)
	tree, total, err := h.svc.TreeByPost(pid, viewer)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{
		"post_id": pid, "total": total, "comments": tree,
	}, http.StatusOK)
	return nil
}
