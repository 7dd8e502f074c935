package repository

import (
	"strings"
	"time"

	"github.com/taskhive/backend/domain"
)

// Operator tags how a clause compares a field against its value.
type Operator string

const (
	// OpEqual matches the field exactly.
	OpEqual Operator = "eq"
	// OpContains matches a case-insensitive substring of a text field.
	OpContains Operator = "contains"
	// OpContainsAny matches when any of the listed text fields contains the
	// value, case-insensitively. Used by the "search" convenience criterion.
	OpContainsAny Operator = "contains_any"
	// OpOnOrAfter is an inclusive lower bound on a date field.
	OpOnOrAfter Operator = "gte"
	// OpOnOrBefore is an inclusive upper bound on a date field.
	OpOnOrBefore Operator = "lte"
)

// Field names understood by the stores. Stores translate these to their own
// column or attribute names.
const (
	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldStatus      = "status"
	FieldPriority    = "priority"
	FieldProjectID   = "project_id"
	FieldDueDate     = "due_date"
)

// Clause is one filter condition. All clauses of a criteria set are combined
// with logical AND; OpContainsAny forms a disjunction across its Fields
// internally. An empty clause list matches every record.
type Clause struct {
	Fields []string
	Op     Operator
	Value  any
}

func equal(field string, value any) Clause {
	return Clause{Fields: []string{field}, Op: OpEqual, Value: value}
}

func contains(field, value string) Clause {
	return Clause{Fields: []string{field}, Op: OpContains, Value: value}
}

// TaskCriteria is the sparse filter set for task search. Zero values mean
// "absent"; blank or whitespace-only strings are treated as absent.
type TaskCriteria struct {
	ID          string
	Status      domain.Status
	Priority    domain.Priority
	ProjectID   string
	DueDateFrom *time.Time
	DueDateTo   *time.Time
	Search      string
	Name        string
}

// Clauses compiles the active criteria into a conjunctive clause list.
// The Search criterion expands to a contains-any over name and description.
// A from-date later than the to-date is still compiled as-is; the resulting
// predicate simply matches nothing.
func (c TaskCriteria) Clauses() []Clause {
	var clauses []Clause

	if c.Status != "" {
		clauses = append(clauses, equal(FieldStatus, string(c.Status)))
	}
	if c.Priority != "" {
		clauses = append(clauses, equal(FieldPriority, string(c.Priority)))
	}
	if present(c.ProjectID) {
		clauses = append(clauses, equal(FieldProjectID, strings.TrimSpace(c.ProjectID)))
	}
	if c.DueDateFrom != nil {
		clauses = append(clauses, Clause{Fields: []string{FieldDueDate}, Op: OpOnOrAfter, Value: *c.DueDateFrom})
	}
	if c.DueDateTo != nil {
		clauses = append(clauses, Clause{Fields: []string{FieldDueDate}, Op: OpOnOrBefore, Value: *c.DueDateTo})
	}
	if present(c.Search) {
		clauses = append(clauses, Clause{
			Fields: []string{FieldName, FieldDescription},
			Op:     OpContainsAny,
			Value:  strings.TrimSpace(c.Search),
		})
	}
	if present(c.Name) {
		clauses = append(clauses, contains(FieldName, strings.TrimSpace(c.Name)))
	}
	if present(c.ID) {
		clauses = append(clauses, equal(FieldID, strings.TrimSpace(c.ID)))
	}

	return clauses
}

// ProjectCriteria is the sparse filter set for project search.
type ProjectCriteria struct {
	ID          string
	Name        string
	Description string
}

// Clauses compiles the active criteria into a conjunctive clause list.
func (c ProjectCriteria) Clauses() []Clause {
	var clauses []Clause

	if present(c.ID) {
		clauses = append(clauses, equal(FieldID, strings.TrimSpace(c.ID)))
	}
	if present(c.Name) {
		clauses = append(clauses, contains(FieldName, strings.TrimSpace(c.Name)))
	}
	if present(c.Description) {
		clauses = append(clauses, contains(FieldDescription, strings.TrimSpace(c.Description)))
	}

	return clauses
}

func present(s string) bool {
	return strings.TrimSpace(s) != ""
}
