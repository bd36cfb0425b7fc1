package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "todolist-app.com/todolist-app/internal/http/middlewares"
	"todolist-app.com/todolist-app/internal/services"
)

func Register(e *echo.Echo, h *Handler, ah *AuthHandler, auth *services.AuthService, rateLimitPerMinute int) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.POST("/register", ah.Register)
	e.POST("/login", ah.Login)
	e.POST("/login/guest", ah.LoginGuest)

	authed := e.Group("", middleware.SessionAuth(auth))

	authed.POST("/logout", ah.Logout)

	authed.GET("/tasks", h.ListTasks)
	authed.POST("/tasks", h.CreateTask)
	authed.GET("/tasks/:id", h.GetTask)
	authed.PUT("/tasks/:id", h.UpdateTask)
	authed.POST("/tasks/:id/complete", h.CompleteTask)
	authed.DELETE("/tasks/:id", h.DeleteTask)

	authed.GET("/groups", h.ListGroups)
	authed.POST("/groups", h.AddGroup)
	authed.DELETE("/groups", h.DeleteGroup)

	authed.GET("/dashboard", h.Dashboard)

	authed.DELETE("/completed/:id", h.CleanCompletedTask)
	authed.DELETE("/completed", h.CleanAllCompletedTasks)
}
