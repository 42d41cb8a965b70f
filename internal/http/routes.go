package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	middleware "batcave.app/batcave/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	api := e.Group("/api", middleware.RequireUser())

	api.POST("/tasks", h.CreateTask)
	api.GET("/tasks", h.ListTasks)
	api.GET("/tasks/:id", h.GetTask)
	api.PUT("/tasks/:id", h.UpdateTask)
	api.DELETE("/tasks/:id", h.DeleteTask)

	api.POST("/goals", h.CreateGoal)
	api.GET("/goals", h.ListGoals)
	api.GET("/goals/:id", h.GetGoal)
	api.PUT("/goals/:id", h.UpdateGoal)
	api.DELETE("/goals/:id", h.DeleteGoal)

	api.POST("/objectives", h.CreateObjective)
	api.GET("/objectives", h.ListObjectives)
	api.GET("/objectives/:id", h.GetObjective)
	api.PUT("/objectives/:id", h.UpdateObjective)
	api.DELETE("/objectives/:id", h.DeleteObjective)

	api.POST("/visions", h.CreateVision)
	api.GET("/visions", h.ListVisions)
	api.GET("/visions/:id", h.GetVision)
	api.PUT("/visions/:id", h.UpdateVision)
	api.DELETE("/visions/:id", h.DeleteVision)

	api.GET("/alfred/suggestions", h.Suggestions)
	api.POST("/alfred/chat", h.Chat)
}
