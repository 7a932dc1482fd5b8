package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/recipegen/recipe-roulette/internal/core/domain"
	"github.com/recipegen/recipe-roulette/internal/core/ports"
)

// HistoryHandler serves the acting user's selection history.
type HistoryHandler struct {
	history ports.HistoryService
}

func NewHistoryHandler(history ports.HistoryService) *HistoryHandler {
	return &HistoryHandler{history: history}
}

type historyResponse struct {
	Entries []domain.HistoryEntry `json:"entries"`
}

// List returns the acting user's history, newest first. The username comes
// from the token, so a user can only ever read their own entries.
//
// @Summary      Selection history
// @Tags         history
// @Produce      json
// @Success      200  {object}  historyResponse
// @Failure      401  {object}  map[string]string
// @Router       /history [get]
func (h *HistoryHandler) List(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	entries, err := h.history.ListForUser(c.Request().Context(), username)
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []domain.HistoryEntry{}
	}

	return c.JSON(http.StatusOK, historyResponse{Entries: entries})
}
