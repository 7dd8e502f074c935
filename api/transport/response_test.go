package transport

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhive/backend/domain"
	"github.com/taskhive/backend/repository"
)

func TestFromTask_AllFields(t *testing.T) {
	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	pid := "p1"
	task := domain.Task{
		ID:          "t1",
		Name:        "Fix bug",
		Description: "crash on save",
		Priority:    domain.PriorityHigh,
		Status:      domain.StatusTodo,
		DueDate:     &due,
		ProjectID:   &pid,
	}

	resp := FromTask(task)

	assert.Equal(t, "t1", resp.ID)
	assert.Equal(t, "Fix bug", resp.Name)
	assert.Equal(t, "crash on save", resp.Description)
	assert.Equal(t, "HIGH", resp.Priority)
	assert.Equal(t, "TODO", resp.Status)
	assert.Equal(t, "2026-09-01", resp.DueDate)
	assert.Equal(t, "p1", resp.ProjectID)
}

func TestFromTask_AbsentOptionalsStayAbsent(t *testing.T) {
	task := domain.Task{ID: "t1", Name: "Bare task", Priority: domain.PriorityLow, Status: domain.StatusDone}

	body, err := json.Marshal(FromTask(task))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.NotContains(t, decoded, "dueDate")
	assert.NotContains(t, decoded, "projectId")
	assert.NotContains(t, decoded, "description")
}

func TestFromProject_FlattensTasksWithoutBackEmbedding(t *testing.T) {
	pid := "p1"
	project := domain.Project{
		ID:   "p1",
		Name: "Alpha",
		Tasks: []domain.Task{
			{ID: "t1", Name: "Fix bug", Priority: domain.PriorityHigh, Status: domain.StatusTodo, ProjectID: &pid},
		},
	}

	resp := FromProject(project)

	require.Len(t, resp.Tasks, 1)
	assert.Equal(t, "p1", resp.Tasks[0].ProjectID, "a task carries only the project's identifier, never the project itself")
}

func TestFromProject_EmptyTaskListSerializesAsArray(t *testing.T) {
	body, err := json.Marshal(FromProject(domain.Project{ID: "p1", Name: "Alpha"}))
	require.NoError(t, err)
	assert.Contains(t, string(body), `"tasks":[]`)
}

func TestTaskPage_PreservesEnvelope(t *testing.T) {
	req := repository.PageRequest{Number: 0, Size: 2}.Normalize()
	page := repository.NewPage([]domain.Task{
		{ID: "t1", Name: "One", Priority: domain.PriorityLow, Status: domain.StatusTodo},
		{ID: "t2", Name: "Two", Priority: domain.PriorityLow, Status: domain.StatusTodo},
	}, req, 3)

	mapped := TaskPage(page)

	assert.Equal(t, page.PageNumber, mapped.PageNumber)
	assert.Equal(t, page.PageSize, mapped.PageSize)
	assert.Equal(t, page.TotalPages, mapped.TotalPages)
	assert.Equal(t, page.TotalElements, mapped.TotalElements)
	assert.Equal(t, page.First, mapped.First)
	assert.Equal(t, page.Last, mapped.Last)
	require.Len(t, mapped.Content, 2)
	assert.Equal(t, "t1", mapped.Content[0].ID)
}

func TestPageEnvelopeWireShape(t *testing.T) {
	req := repository.PageRequest{}.Normalize()
	page := TaskPage(repository.NewPage([]domain.Task{}, req, 0))

	body, err := json.Marshal(page)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	for _, key := range []string{"content", "pageNumber", "pageSize", "totalPages", "totalElements", "first", "last"} {
		assert.Contains(t, decoded, key)
	}
}

func TestTaskRequestToDomain(t *testing.T) {
	req := TaskRequest{
		Name:     "Fix bug",
		Priority: "HIGH",
		Status:   "TODO",
		DueDate:  "2026-09-01",
	}

	task, err := req.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityHigh, task.Priority)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, "2026-09-01", task.DueDate.Format(DateLayout))
	assert.Nil(t, task.ProjectID, "requests never carry an assignment")
}

func TestTaskRequestToDomain_BadDate(t *testing.T) {
	_, err := TaskRequest{Name: "Fix bug", Priority: "HIGH", Status: "TODO", DueDate: "01/09/2026"}.ToDomain()
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeValidation))
}
