package domain

import "time"

// Project groups tasks. Tasks is the inverse side of the relationship and is
// populated from the owning foreign key on load; it enforces no uniqueness of
// its own, the foreign key on Task is authoritative.
type Project struct {
	ID          string
	Name        string
	Description string
	Tasks       []Task
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks field constraints.
func (p *Project) Validate() error {
	var fields []FieldError

	if n := len([]rune(p.Name)); n < 3 || n > 100 {
		fields = append(fields, FieldError{Field: "name", Reason: "must be between 3 and 100 characters"})
	}
	if len([]rune(p.Description)) > 500 {
		fields = append(fields, FieldError{Field: "description", Reason: "cannot exceed 500 characters"})
	}

	if len(fields) > 0 {
		return NewValidationError(fields...)
	}
	return nil
}
