package validators

import (
	"net/http"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	dto "todolist-app.com/todolist-app/internal/data_models"
	model "todolist-app.com/todolist-app/internal/models"
)

// ValidateTaskRequest checks a full task submission and reports every
// failing field at once. Nothing is persisted when any check fails.
func ValidateTaskRequest(r *dto.TaskRequest) error {
	fields := map[string]string{}

	if r.Name == "" {
		fields["name"] = "name is required"
	} else if utf8.RuneCountInString(r.Name) > 50 {
		fields["name"] = "name must be at most 50 characters"
	}

	if utf8.RuneCountInString(r.Description) > 255 {
		fields["description"] = "description must be at most 255 characters"
	}

	if !model.ValidPriority(model.Priority(r.Priority)) {
		fields["priority"] = "priority must be one of Low, Medium, High, Critical"
	}

	if r.Deadline.IsZero() {
		fields["deadline"] = "deadline is required"
	}

	if len(fields) > 0 {
		return echo.NewHTTPError(http.StatusBadRequest, echo.Map{"errors": fields})
	}

	return nil
}

func ValidateGroupRequest(r *dto.GroupRequest) error {
	fields := map[string]string{}

	if r.Name == "" {
		fields["name"] = "name is required"
	} else if utf8.RuneCountInString(r.Name) > 50 {
		fields["name"] = "name must be at most 50 characters"
	}

	if len(fields) > 0 {
		return echo.NewHTTPError(http.StatusBadRequest, echo.Map{"errors": fields})
	}

	return nil
}
