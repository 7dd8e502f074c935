package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhive/backend/domain"
)

func TestTaskCriteria_EmptyMatchesAll(t *testing.T) {
	assert.Empty(t, TaskCriteria{}.Clauses())
}

func TestTaskCriteria_BlankStringsAreAbsent(t *testing.T) {
	criteria := TaskCriteria{
		ProjectID: "   ",
		Search:    "\t",
		Name:      "",
		ID:        "  ",
	}
	assert.Empty(t, criteria.Clauses())
}

func TestTaskCriteria_AllCriteriaCompile(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)

	criteria := TaskCriteria{
		ID:          "t1",
		Status:      domain.StatusTodo,
		Priority:    domain.PriorityHigh,
		ProjectID:   "p1",
		DueDateFrom: &from,
		DueDateTo:   &to,
		Search:      "alpha",
		Name:        "fix",
	}

	clauses := criteria.Clauses()
	require.Len(t, clauses, 8)

	assert.Equal(t, Clause{Fields: []string{FieldStatus}, Op: OpEqual, Value: "TODO"}, clauses[0])
	assert.Equal(t, Clause{Fields: []string{FieldPriority}, Op: OpEqual, Value: "HIGH"}, clauses[1])
	assert.Equal(t, Clause{Fields: []string{FieldProjectID}, Op: OpEqual, Value: "p1"}, clauses[2])
	assert.Equal(t, Clause{Fields: []string{FieldDueDate}, Op: OpOnOrAfter, Value: from}, clauses[3])
	assert.Equal(t, Clause{Fields: []string{FieldDueDate}, Op: OpOnOrBefore, Value: to}, clauses[4])
	assert.Equal(t, Clause{Fields: []string{FieldName, FieldDescription}, Op: OpContainsAny, Value: "alpha"}, clauses[5])
	assert.Equal(t, Clause{Fields: []string{FieldName}, Op: OpContains, Value: "fix"}, clauses[6])
	assert.Equal(t, Clause{Fields: []string{FieldID}, Op: OpEqual, Value: "t1"}, clauses[7])
}

func TestTaskCriteria_SearchExpandsToContainsAny(t *testing.T) {
	clauses := TaskCriteria{Search: " alpha "}.Clauses()
	require.Len(t, clauses, 1)
	assert.Equal(t, OpContainsAny, clauses[0].Op)
	assert.Equal(t, []string{FieldName, FieldDescription}, clauses[0].Fields)
	assert.Equal(t, "alpha", clauses[0].Value, "value is trimmed")
}

func TestTaskCriteria_InvertedDateRangeStillCompiles(t *testing.T) {
	from := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	clauses := TaskCriteria{DueDateFrom: &from, DueDateTo: &to}.Clauses()
	require.Len(t, clauses, 2, "an inverted range is a well-defined predicate that matches nothing")
}

func TestProjectCriteria_Clauses(t *testing.T) {
	clauses := ProjectCriteria{ID: "p1", Name: "alpha", Description: "desc"}.Clauses()
	require.Len(t, clauses, 3)
	assert.Equal(t, Clause{Fields: []string{FieldID}, Op: OpEqual, Value: "p1"}, clauses[0])
	assert.Equal(t, Clause{Fields: []string{FieldName}, Op: OpContains, Value: "alpha"}, clauses[1])
	assert.Equal(t, Clause{Fields: []string{FieldDescription}, Op: OpContains, Value: "desc"}, clauses[2])

	assert.Empty(t, ProjectCriteria{}.Clauses())
}
