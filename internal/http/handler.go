package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "batcave.app/batcave/internal/errors"
	"batcave.app/batcave/internal/services"
)

type Handler struct {
	tasks      *services.TaskService
	goals      *services.GoalService
	objectives *services.ObjectiveService
	visions    *services.VisionService
	alfred     *services.AlfredService
}

func NewHandler(
	tasks *services.TaskService,
	goals *services.GoalService,
	objectives *services.ObjectiveService,
	visions *services.VisionService,
	alfred *services.AlfredService,
) *Handler {
	return &Handler{
		tasks:      tasks,
		goals:      goals,
		objectives: objectives,
		visions:    visions,
		alfred:     alfred,
	}
}

// httpError maps application errors to transport status codes. Unexpected
// failures are logged with detail server-side and surfaced generically.
func httpError(err error) error {
	var appErr *apperrors.Exception
	if errors.As(err, &appErr) {
		return echo.NewHTTPError(appErr.StatusCode, appErr.Message)
	}
	log.Printf("unexpected error: %v", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
}

// intQuery reads an optional integer query parameter.
func intQuery(c echo.Context, name string) (*int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperrors.Validation(name, name+" must be an integer")
	}
	return &v, nil
}
