package domain

import "time"

// Priority ranks how urgent a task is.
type Priority string

const (
	PriorityLow      Priority = "LOW"
	PriorityMedium   Priority = "MEDIUM"
	PriorityHigh     Priority = "HIGH"
	PriorityCritical Priority = "CRITICAL"
)

// Status tracks where a task sits in its workflow.
type Status string

const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusBlocked    Status = "BLOCKED"
	StatusDone       Status = "DONE"
)

// ParsePriority maps a wire value to a Priority, reporting whether it is known.
func ParsePriority(value string) (Priority, bool) {
	switch Priority(value) {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return Priority(value), true
	}
	return "", false
}

// ParseStatus maps a wire value to a Status, reporting whether it is known.
func ParseStatus(value string) (Status, bool) {
	switch Status(value) {
	case StatusTodo, StatusInProgress, StatusBlocked, StatusDone:
		return Status(value), true
	}
	return "", false
}

// Task is a unit of work, optionally assigned to a single project.
// ProjectID is the owning side of the task/project relationship.
type Task struct {
	ID          string
	Name        string
	Description string
	Priority    Priority
	Status      Status
	DueDate     *time.Time
	ProjectID   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks field constraints against the supplied reference time.
// The due date, when present, must not fall before the reference date.
func (t *Task) Validate(now time.Time) error {
	var fields []FieldError

	if n := len([]rune(t.Name)); n < 3 || n > 100 {
		fields = append(fields, FieldError{Field: "name", Reason: "must be between 3 and 100 characters"})
	}
	if len([]rune(t.Description)) > 500 {
		fields = append(fields, FieldError{Field: "description", Reason: "cannot exceed 500 characters"})
	}
	if _, ok := ParsePriority(string(t.Priority)); !ok {
		fields = append(fields, FieldError{Field: "priority", Reason: "must be one of LOW, MEDIUM, HIGH, CRITICAL"})
	}
	if _, ok := ParseStatus(string(t.Status)); !ok {
		fields = append(fields, FieldError{Field: "status", Reason: "must be one of TODO, IN_PROGRESS, BLOCKED, DONE"})
	}
	if t.DueDate != nil && dateOf(*t.DueDate).Before(dateOf(now)) {
		fields = append(fields, FieldError{Field: "dueDate", Reason: "must be in the future or present"})
	}

	if len(fields) > 0 {
		return NewValidationError(fields...)
	}
	return nil
}

// AssignedTo reports whether the task currently belongs to the given project.
func (t *Task) AssignedTo(projectID string) bool {
	return t != nil && t.ProjectID != nil && *t.ProjectID == projectID
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
