package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "batcave.app/batcave/internal/data_models"
	middleware "batcave.app/batcave/internal/http/middlewares"
	"batcave.app/batcave/internal/http/validators"
	"batcave.app/batcave/internal/services"
)

func (h *Handler) CreateObjective(c echo.Context) error {
	var req dto.CreateObjectiveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateObjectiveRequest(&req); err != nil {
		return httpError(err)
	}

	in := services.CreateObjectiveInput{
		Title:       req.Title,
		Description: req.Description,
		TargetValue: req.TargetValue,
		Unit:        req.Unit,
		Quarter:     req.Quarter,
		Year:        req.Year,
	}
	if req.CurrentValue != nil {
		in.CurrentValue = *req.CurrentValue
	}

	objective, err := h.objectives.CreateObjective(c.Request().Context(), middleware.UserID(c), in)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, objective)
}

func (h *Handler) GetObjective(c echo.Context) error {
	objective, err := h.objectives.GetObjective(c.Request().Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, objective)
}

func (h *Handler) ListObjectives(c echo.Context) error {
	quarter, err := intQuery(c, "quarter")
	if err != nil {
		return httpError(err)
	}
	year, err := intQuery(c, "year")
	if err != nil {
		return httpError(err)
	}

	objectives, err := h.objectives.ListObjectives(c.Request().Context(), middleware.UserID(c), quarter, year)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"count":      len(objectives),
		"objectives": objectives,
	})
}

func (h *Handler) UpdateObjective(c echo.Context) error {
	var req dto.UpdateObjectiveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateUpdateObjectiveRequest(&req); err != nil {
		return httpError(err)
	}

	patch := services.ObjectivePatch{
		Title:        req.Title,
		Description:  req.Description,
		TargetValue:  req.TargetValue,
		CurrentValue: req.CurrentValue,
		Unit:         req.Unit,
		Quarter:      req.Quarter,
		Year:         req.Year,
		IsCompleted:  req.IsCompleted,
	}

	objective, err := h.objectives.UpdateObjective(c.Request().Context(), middleware.UserID(c), c.Param("id"), patch)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, objective)
}

func (h *Handler) DeleteObjective(c echo.Context) error {
	deleted, err := h.objectives.DeleteObjective(c.Request().Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	if !deleted {
		return c.JSON(http.StatusOK, echo.Map{"deleted": false})
	}
	return c.NoContent(http.StatusNoContent)
}
