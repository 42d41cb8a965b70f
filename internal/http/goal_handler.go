package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "batcave.app/batcave/internal/data_models"
	middleware "batcave.app/batcave/internal/http/middlewares"
	"batcave.app/batcave/internal/http/validators"
	"batcave.app/batcave/internal/services"
)

func (h *Handler) CreateGoal(c echo.Context) error {
	var req dto.CreateGoalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateGoalRequest(&req); err != nil {
		return httpError(err)
	}

	in := services.CreateGoalInput{
		Title:       req.Title,
		Description: req.Description,
		TargetValue: req.TargetValue,
		Unit:        req.Unit,
		Month:       req.Month,
		Year:        req.Year,
	}
	if req.CurrentValue != nil {
		in.CurrentValue = *req.CurrentValue
	}

	goal, err := h.goals.CreateGoal(c.Request().Context(), middleware.UserID(c), in)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, goal)
}

func (h *Handler) GetGoal(c echo.Context) error {
	goal, err := h.goals.GetGoal(c.Request().Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, goal)
}

func (h *Handler) ListGoals(c echo.Context) error {
	month, err := intQuery(c, "month")
	if err != nil {
		return httpError(err)
	}
	year, err := intQuery(c, "year")
	if err != nil {
		return httpError(err)
	}

	goals, err := h.goals.ListGoals(c.Request().Context(), middleware.UserID(c), month, year)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"count": len(goals),
		"goals": goals,
	})
}

func (h *Handler) UpdateGoal(c echo.Context) error {
	var req dto.UpdateGoalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateUpdateGoalRequest(&req); err != nil {
		return httpError(err)
	}

	patch := services.GoalPatch{
		Title:        req.Title,
		Description:  req.Description,
		TargetValue:  req.TargetValue,
		CurrentValue: req.CurrentValue,
		Unit:         req.Unit,
		Month:        req.Month,
		Year:         req.Year,
		IsCompleted:  req.IsCompleted,
	}

	goal, err := h.goals.UpdateGoal(c.Request().Context(), middleware.UserID(c), c.Param("id"), patch)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, goal)
}

func (h *Handler) DeleteGoal(c echo.Context) error {
	deleted, err := h.goals.DeleteGoal(c.Request().Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	if !deleted {
		return c.JSON(http.StatusOK, echo.Map{"deleted": false})
	}
	return c.NoContent(http.StatusNoContent)
}
