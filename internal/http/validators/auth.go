package validators

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	dto "todolist-app.com/todolist-app/internal/data_models"
)

func ValidateRegisterRequest(r *dto.RegisterRequest) error {
	fields := map[string]string{}

	if r.Username == "" {
		fields["username"] = "username is required"
	} else if utf8.RuneCountInString(r.Username) > 150 {
		fields["username"] = "username must be at most 150 characters"
	}

	if r.Email != "" && !strings.Contains(r.Email, "@") {
		fields["email"] = "email is not valid"
	}

	if len(r.Password) < 8 {
		fields["password"] = "password must be at least 8 characters"
	}

	if len(fields) > 0 {
		return echo.NewHTTPError(http.StatusBadRequest, echo.Map{"errors": fields})
	}

	return nil
}

func ValidateLoginRequest(r *dto.LoginRequest) error {
	fields := map[string]string{}

	if r.Username == "" {
		fields["username"] = "username is required"
	}
	if r.Password == "" {
		fields["password"] = "password is required"
	}

	if len(fields) > 0 {
		return echo.NewHTTPError(http.StatusBadRequest, echo.Map{"errors": fields})
	}

	return nil
}
