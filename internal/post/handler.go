package post

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
	in, err := httpx.Decode[CreateReq](r)
	if err != nil {
		return err
	}
	if err := validate.Struct(in); err != nil {
		return err
	}
	p, err := h.svc.Create(uid, in.Content)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, p, http.StatusCreated)
	return nil
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) error {
	viewer := httpx.ViewerFromCtx(r)
	limit := httpx.QueryInt(r, "limit", 50)
	offset := httpx.QueryInt(r, "offset", 0)
	items, err := h.svc.List(viewer, limit, offset)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{
		"items": items, "limit": limit, "offset": offset,
	}, http.StatusOK)
	return nil
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) error {
	pid, err := httpx.PathID(r, "post_id")
	if err != nil {
		return err
	}
	viewer := httpx.ViewerFromCtx(r)
	detail, err := h.svc.GetDetail(pid, viewer)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, detail, http.StatusOK)
	return nil
}
