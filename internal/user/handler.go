package user

import (
	"net/http"

	"social-feed/internal/shared/httpx"
	"social-feed/internal/shared/jwt"
	"social-feed/internal/shared/validate"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

type GuestLoginReq struct {
	Username string `json:"username" validate:"required,min=2,max=64"`
}

func (h *Handler) GuestLogin(w http.ResponseWriter, r *http.Request) error {
	body, err := httpx.Decode[GuestLoginReq](r)
	if err != nil {
		return err
	}
	if err = validate.Struct(body); err != nil {
		return err
	}
	u, err := h.svc.GuestLogin(body.Username)
	if err != nil {
		return err
	}
	token, _ := jwt.Make(u.ID)
	httpx.WriteJSON(w, map[string]any{
		"user_id": u.ID, "username": u.Username, "access_token": token,
	}, http.StatusOK)
	return nil
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	u, err := h.svc.GetByID(uid)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, u, http.StatusOK)
	return nil
}
