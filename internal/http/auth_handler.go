package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "todolist-app.com/todolist-app/internal/data_models"
	middleware "todolist-app.com/todolist-app/internal/http/middlewares"
	"todolist-app.com/todolist-app/internal/http/validators"
	"todolist-app.com/todolist-app/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateRegisterRequest(&req); err != nil {
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return httpError(err, "failed to register")
	}

	return c.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateLoginRequest(&req); err != nil {
		return err
	}

	token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return httpError(err, "failed to log in")
	}

	return c.JSON(http.StatusOK, echo.Map{"token": token})
}

func (h *AuthHandler) LoginGuest(c echo.Context) error {
	token, err := h.authService.LoginGuest(c.Request().Context())
	if err != nil {
		return httpError(err, "failed to start guest session")
	}

	return c.JSON(http.StatusOK, echo.Map{"token": token})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	token, _ := c.Get(middleware.SessionTokenKey).(string)

	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return httpError(err, "failed to log out")
	}

	return c.NoContent(http.StatusNoContent)
}
