package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "batcave.app/batcave/internal/data_models"
	middleware "batcave.app/batcave/internal/http/middlewares"
	"batcave.app/batcave/internal/http/validators"
	"batcave.app/batcave/internal/services"
)

func (h *Handler) CreateVision(c echo.Context) error {
	var req dto.CreateVisionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateVisionRequest(&req); err != nil {
		return httpError(err)
	}

	in := services.CreateVisionInput{
		Title:       req.Title,
		Description: req.Description,
		TargetValue: req.TargetValue,
		Unit:        req.Unit,
		Year:        req.Year,
	}
	if req.CurrentValue != nil {
		in.CurrentValue = *req.CurrentValue
	}

	vision, err := h.visions.CreateVision(c.Request().Context(), middleware.UserID(c), in)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, vision)
}

func (h *Handler) GetVision(c echo.Context) error {
	vision, err := h.visions.GetVision(c.Request().Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, vision)
}

func (h *Handler) ListVisions(c echo.Context) error {
	year, err := intQuery(c, "year")
	if err != nil {
		return httpError(err)
	}

	visions, err := h.visions.ListVisions(c.Request().Context(), middleware.UserID(c), year)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"count":   len(visions),
		"visions": visions,
	})
}

func (h *Handler) UpdateVision(c echo.Context) error {
	var req dto.UpdateVisionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateUpdateVisionRequest(&req); err != nil {
		return httpError(err)
	}

	patch := services.VisionPatch{
		Title:        req.Title,
		Description:  req.Description,
		TargetValue:  req.TargetValue,
		CurrentValue: req.CurrentValue,
		Unit:         req.Unit,
		Year:         req.Year,
		IsCompleted:  req.IsCompleted,
	}

	vision, err := h.visions.UpdateVision(c.Request().Context(), middleware.UserID(c), c.Param("id"), patch)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, vision)
}

func (h *Handler) DeleteVision(c echo.Context) error {
	deleted, err := h.visions.DeleteVision(c.Request().Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	if !deleted {
		return c.JSON(http.StatusOK, echo.Map{"deleted": false})
	}
	return c.NoContent(http.StatusNoContent)
}
