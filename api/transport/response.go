package transport

import (
	"encoding/json"

	"github.com/taskhive/backend/domain"
	"github.com/taskhive/backend/repository"
)

// Envelope is the standard API response wrapper used for both success and error payloads.
type Envelope struct {
	Status string      `json:"status"`
	Code   string      `json:"code,omitempty"`
	Data   interface{} `json:"data,omitempty"`
	Error  interface{} `json:"error,omitempty"`
	Meta   interface{} `json:"meta,omitempty"`
}

// NewSuccess returns a success envelope.
func NewSuccess(data interface{}, meta interface{}) Envelope {
	return Envelope{
		Status: "success",
		Data:   data,
		Meta:   meta,
	}
}

// NewError returns an error envelope with optional metadata.
func NewError(code string, err interface{}, meta interface{}) Envelope {
	return Envelope{
		Status: "error",
		Code:   code,
		Error:  err,
		Meta:   meta,
	}
}

// String returns the JSON representation (best-effort) for logging purposes.
func (e Envelope) String() string {
	out, err := json.Marshal(e)
	if err != nil {
		return "{}"
	}
	return string(out)
}

// TaskResponse is the wire shape of a task. The project is flattened to its
// bare identifier; a task response never embeds a project object.
type TaskResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	DueDate     string `json:"dueDate,omitempty"`
	ProjectID   string `json:"projectId,omitempty"`
}

// ProjectResponse is the wire shape of a project with its tasks flattened.
type ProjectResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Tasks       []TaskResponse `json:"tasks"`
}

// FromTask projects a task entity onto its response shape. Absent optional
// fields stay absent on the wire.
func FromTask(t domain.Task) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Priority:    string(t.Priority),
		Status:      string(t.Status),
	}
	if t.DueDate != nil {
		resp.DueDate = t.DueDate.Format(DateLayout)
	}
	if t.ProjectID != nil {
		resp.ProjectID = *t.ProjectID
	}
	return resp
}

func FromTasks(tasks []domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, FromTask(t))
	}
	return out
}

func FromProject(p domain.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Tasks:       FromTasks(p.Tasks),
	}
}

func FromProjects(projects []domain.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, FromProject(p))
	}
	return out
}

// TaskPage maps a page of entities into a page of responses, keeping the
// pagination metadata intact.
func TaskPage(p repository.Page[domain.Task]) repository.Page[TaskResponse] {
	return repository.MapPage(p, FromTask)
}

func ProjectPage(p repository.Page[domain.Project]) repository.Page[ProjectResponse] {
	return repository.MapPage(p, FromProject)
}
