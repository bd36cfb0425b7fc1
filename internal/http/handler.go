package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	dto "todolist-app.com/todolist-app/internal/data_models"
	apperrors "todolist-app.com/todolist-app/internal/errors"
	middleware "todolist-app.com/todolist-app/internal/http/middlewares"
	"todolist-app.com/todolist-app/internal/http/validators"
	"todolist-app.com/todolist-app/internal/services"
)

type Handler struct {
	taskService      *services.TaskService
	groupService     *services.GroupService
	dashboardService *services.DashboardService
}

func NewHandler(
	taskService *services.TaskService,
	groupService *services.GroupService,
	dashboardService *services.DashboardService,
) *Handler {
	return &Handler{
		taskService:      taskService,
		groupService:     groupService,
		dashboardService: dashboardService,
	}
}

func (h *Handler) ListTasks(c echo.Context) error {
	identity := middleware.IdentityFrom(c)

	tasks, err := h.taskService.ListTasks(c.Request().Context(), identity.UserID)
	if err != nil {
		return httpError(err, "failed to list tasks")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(tasks),
		"tasks": tasks,
	})
}

func (h *Handler) GetTask(c echo.Context) error {
	identity := middleware.IdentityFrom(c)

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	task, err := h.taskService.GetTask(c.Request().Context(), identity.UserID, id)
	if err != nil {
		return httpError(err, "failed to get task")
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) CreateTask(c echo.Context) error {
	identity := middleware.IdentityFrom(c)

	var req dto.TaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), identity.UserID, req)
	if err != nil {
		return httpError(err, "failed to create task")
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	identity := middleware.IdentityFrom(c)

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req dto.TaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), identity.UserID, id, req)
	if err != nil {
		return httpError(err, "failed to update task")
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) CompleteTask(c echo.Context) error {
	identity := middleware.IdentityFrom(c)

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.taskService.CompleteTask(c.Request().Context(), identity, id); err != nil {
		return httpError(err, "failed to complete task")
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	identity := middleware.IdentityFrom(c)

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), identity.UserID, id); err != nil {
		return httpError(err, "failed to delete task")
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListGroups(c echo.Context) error {
	identity := middleware.IdentityFrom(c)

	groups, err := h.groupService.AvailableGroups(c.Request().Context(), identity.UserID)
	if err != nil {
		return httpError(err, "failed to list groups")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count":  len(groups),
		"groups": groups,
	})
}

func (h *Handler) AddGroup(c echo.Context) error {
	identity := middleware.IdentityFrom(c)

	var req dto.GroupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateGroupRequest(&req); err != nil {
		return err
	}

	group, err := h.groupService.AddGroup(c.Request().Context(), identity.UserID, req.Name)
	if err != nil {
		return httpError(err, "failed to create group")
	}

	return c.JSON(http.StatusCreated, group)
}

// DeleteGroup deletes by (name, owner); a miss is still a 204 because the
// source treats it as a silent no-op.
func (h *Handler) DeleteGroup(c echo.Context) error {
	identity := middleware.IdentityFrom(c)

	var req dto.GroupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateGroupRequest(&req); err != nil {
		return err
	}

	if err := h.groupService.DeleteGroup(c.Request().Context(), identity.UserID, req.Name); err != nil {
		return httpError(err, "failed to delete group")
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Dashboard(c echo.Context) error {
	identity := middleware.IdentityFrom(c)

	summary, err := h.dashboardService.Summary(c.Request().Context(), identity.UserID)
	if err != nil {
		return httpError(err, "failed to build dashboard")
	}

	return c.JSON(http.StatusOK, summary)
}

func (h *Handler) CleanCompletedTask(c echo.Context) error {
	identity := middleware.IdentityFrom(c)

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.taskService.CleanCompleted(c.Request().Context(), identity.UserID, &id); err != nil {
		return httpError(err, "failed to clean completed task")
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) CleanAllCompletedTasks(c echo.Context) error {
	identity := middleware.IdentityFrom(c)

	if err := h.taskService.CleanCompleted(c.Request().Context(), identity.UserID, nil); err != nil {
		return httpError(err, "failed to clean completed tasks")
	}

	return c.NoContent(http.StatusNoContent)
}

func pathID(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

func httpError(err error, fallback string) error {
	status := apperrors.StatusCode(err)
	if status == http.StatusInternalServerError {
		return echo.NewHTTPError(status, fallback)
	}
	return echo.NewHTTPError(status, err.Error())
}
