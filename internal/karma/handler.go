package karma

import (
	"net/http"

	"social-feed/internal/shared/httpx"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) error {
	rows, err := h.svc.Leaderboard()
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, rows, http.StatusOK)
	return nil
}
