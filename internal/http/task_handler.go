package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"batcave.app/batcave/internal/constants"
	dto "batcave.app/batcave/internal/data_models"
	middleware "batcave.app/batcave/internal/http/middlewares"
	"batcave.app/batcave/internal/http/validators"
	"batcave.app/batcave/internal/services"
)

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return httpError(err)
	}

	in := services.CreateTaskInput{
		Title:          req.Title,
		Description:    req.Description,
		Domain:         constants.TaskDomain(req.Domain),
		Priority:       constants.TaskPriority(req.Priority),
		EstimatedHours: req.EstimatedHours,
		ActualHours:    req.ActualHours,
		DueDate:        req.DueDate,
	}

	task, err := h.tasks.CreateTask(c.Request().Context(), middleware.UserID(c), in)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) GetTask(c echo.Context) error {
	task, err := h.tasks.GetTask(c.Request().Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, task)
}

func (h *Handler) ListTasks(c echo.Context) error {
	tasks, err := h.tasks.ListTasks(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"count": len(tasks),
		"tasks": tasks,
	})
}

func (h *Handler) UpdateTask(c echo.Context) error {
	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateUpdateTaskRequest(&req); err != nil {
		return httpError(err)
	}

	patch := services.TaskPatch{
		Title:          req.Title,
		Description:    req.Description,
		EstimatedHours: req.EstimatedHours,
		ActualHours:    req.ActualHours,
		DueDate:        req.DueDate,
		IsCompleted:    req.IsCompleted,
	}
	if req.Domain != nil {
		d := constants.TaskDomain(*req.Domain)
		patch.Domain = &d
	}
	if req.Priority != nil {
		p := constants.TaskPriority(*req.Priority)
		patch.Priority = &p
	}

	task, err := h.tasks.UpdateTask(c.Request().Context(), middleware.UserID(c), c.Param("id"), patch)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	deleted, err := h.tasks.DeleteTask(c.Request().Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	if !deleted {
		return c.JSON(http.StatusOK, echo.Map{"deleted": false})
	}
	return c.NoContent(http.StatusNoContent)
}
