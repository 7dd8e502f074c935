package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhive/backend/domain"
	"github.com/taskhive/backend/repository"
)

func TestBuildWhere_NoClauses(t *testing.T) {
	where, args := buildWhere(nil, taskColumns)
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestBuildWhere_SingleEquality(t *testing.T) {
	clauses := repository.TaskCriteria{Status: domain.StatusTodo}.Clauses()
	where, args := buildWhere(clauses, taskColumns)

	assert.Equal(t, " WHERE status = $1", where)
	assert.Equal(t, []any{"TODO"}, args)
}

func TestBuildWhere_ConjunctionAndNumbering(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clauses := repository.TaskCriteria{
		Status:      domain.StatusTodo,
		Priority:    domain.PriorityHigh,
		ProjectID:   "p1",
		DueDateFrom: &from,
	}.Clauses()

	where, args := buildWhere(clauses, taskColumns)

	assert.Equal(t, " WHERE status = $1 AND priority = $2 AND project_id = $3 AND due_date >= $4", where)
	require.Len(t, args, 4)
	assert.Equal(t, "TODO", args[0])
	assert.Equal(t, from, args[3])
}

func TestBuildWhere_ContainsUsesILIKE(t *testing.T) {
	clauses := repository.TaskCriteria{Name: "fix"}.Clauses()
	where, args := buildWhere(clauses, taskColumns)

	assert.Equal(t, " WHERE name ILIKE $1", where)
	assert.Equal(t, []any{"%fix%"}, args)
}

func TestBuildWhere_SearchDisjunctionSharesOneArg(t *testing.T) {
	clauses := repository.TaskCriteria{Search: "alpha"}.Clauses()
	where, args := buildWhere(clauses, taskColumns)

	assert.Equal(t, " WHERE (name ILIKE $1 OR description ILIKE $1)", where)
	assert.Equal(t, []any{"%alpha%"}, args)
}

func TestBuildWhere_SearchANDedWithOtherCriteria(t *testing.T) {
	clauses := repository.TaskCriteria{Status: domain.StatusDone, Search: "alpha"}.Clauses()
	where, args := buildWhere(clauses, taskColumns)

	assert.Equal(t, " WHERE status = $1 AND (name ILIKE $2 OR description ILIKE $2)", where)
	assert.Len(t, args, 2)
}

func TestBuildWhere_DateRange(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	clauses := repository.TaskCriteria{DueDateFrom: &from, DueDateTo: &to}.Clauses()

	where, args := buildWhere(clauses, taskColumns)

	assert.Equal(t, " WHERE due_date >= $1 AND due_date <= $2", where)
	assert.Equal(t, []any{from, to}, args)
}

func TestBuildWhere_UnknownFieldDropped(t *testing.T) {
	clauses := []repository.Clause{
		{Fields: []string{"evil_column"}, Op: repository.OpEqual, Value: "x"},
		{Fields: []string{repository.FieldID}, Op: repository.OpEqual, Value: "t1"},
	}
	where, args := buildWhere(clauses, taskColumns)

	assert.Equal(t, " WHERE id = $1", where)
	assert.Equal(t, []any{"t1"}, args)
}

func TestBuildWhere_ProjectColumns(t *testing.T) {
	clauses := repository.ProjectCriteria{ID: "p1", Name: "alpha"}.Clauses()
	where, args := buildWhere(clauses, projectColumns)

	assert.Equal(t, " WHERE id = $1 AND name ILIKE $2", where)
	assert.Equal(t, []any{"p1", "%alpha%"}, args)
}

func TestOrderBy(t *testing.T) {
	tests := []struct {
		name string
		page repository.PageRequest
		want string
	}{
		{
			name: "default id ascending",
			page: repository.PageRequest{}.Normalize(),
			want: " ORDER BY id ASC",
		},
		{
			name: "explicit field descending",
			page: repository.PageRequest{SortField: repository.FieldDueDate, SortDir: repository.SortDesc}.Normalize(),
			want: " ORDER BY due_date DESC",
		},
		{
			name: "unknown field falls back to id",
			page: repository.PageRequest{SortField: "no_such_column"}.Normalize(),
			want: " ORDER BY id ASC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, orderBy(tt.page, taskColumns))
		})
	}
}
