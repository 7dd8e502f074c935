package transport

import (
	"time"

	"github.com/taskhive/backend/domain"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

type TaskRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	DueDate     string `json:"dueDate"`
}

// ToDomain builds the entity. The project assignment is never taken from a
// task request; only the assign/unassign operations touch it. Enum validity
// is left to domain validation, only the date format is checked here.
func (r TaskRequest) ToDomain() (*domain.Task, error) {
	var due *time.Time
	if r.DueDate != "" {
		parsed, err := time.Parse(DateLayout, r.DueDate)
		if err != nil {
			return nil, domain.NewValidationError(domain.FieldError{
				Field:  "dueDate",
				Reason: "must be a date in format YYYY-MM-DD",
			})
		}
		due = &parsed
	}

	return &domain.Task{
		Name:        r.Name,
		Description: r.Description,
		Priority:    domain.Priority(r.Priority),
		Status:      domain.Status(r.Status),
		DueDate:     due,
	}, nil
}

type ProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r ProjectRequest) ToDomain() *domain.Project {
	return &domain.Project{
		Name:        r.Name,
		Description: r.Description,
	}
}
