package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "batcave.app/batcave/internal/data_models"
	middleware "batcave.app/batcave/internal/http/middlewares"
	"batcave.app/batcave/internal/http/validators"
)

func (h *Handler) Suggestions(c echo.Context) error {
	result, err := h.alfred.Suggest(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) Chat(c echo.Context) error {
	var req dto.ChatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateChatRequest(&req); err != nil {
		return httpError(err)
	}

	reply, err := h.alfred.Chat(c.Request().Context(), middleware.UserID(c), req.Message)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ChatResponse{Reply: reply})
}
