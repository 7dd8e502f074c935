// Package memory implements repository.Store entirely in memory. It is the
// reference semantics for the clause language and backs the unit tests; every
// clause list the criteria types produce is evaluated here without SQL.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/taskhive/backend/domain"
	"github.com/taskhive/backend/repository"
)

// Store keeps tasks and projects in maps guarded by one mutex.
type Store struct {
	mu       sync.RWMutex
	tasks    map[string]domain.Task
	projects map[string]domain.Project
}

func NewStore() *Store {
	return &Store{
		tasks:    make(map[string]domain.Task),
		projects: make(map[string]domain.Project),
	}
}

func (s *Store) Tasks() repository.TaskRepository {
	return &taskRepository{store: s}
}

func (s *Store) Projects() repository.ProjectRepository {
	return &projectRepository{store: s}
}

// WithinTx runs fn against the store itself. Individual operations are
// synchronized and never fail halfway, so the single-process fake offers no
// partial state for a transaction to hide.
func (s *Store) WithinTx(_ context.Context, fn func(repository.Store) error) error {
	return fn(s)
}

type taskRepository struct {
	store *Store
}

func (r *taskRepository) GetByID(_ context.Context, id string) (*domain.Task, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	task, ok := r.store.tasks[id]
	if !ok {
		return nil, domain.NewTaskNotFound(id)
	}
	return &task, nil
}

func (r *taskRepository) List(_ context.Context) ([]domain.Task, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	tasks := make([]domain.Task, 0, len(r.store.tasks))
	for _, task := range r.store.tasks {
		tasks = append(tasks, task)
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

func (r *taskRepository) Search(_ context.Context, criteria repository.TaskCriteria, page repository.PageRequest) (repository.Page[domain.Task], error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	page = page.Normalize()
	clauses := criteria.Clauses()

	var matched []domain.Task
	for _, task := range r.store.tasks {
		if matchesAll(clauses, taskFieldValue(task)) {
			matched = append(matched, task)
		}
	}
	sortTasks(matched, page)
	total := int64(len(matched))
	return repository.NewPage(paginate(matched, page), page, total), nil
}

func (r *taskRepository) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil {
		return nil, domain.ErrInvalidPayload
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now
	r.store.tasks[task.ID] = *task
	return task, nil
}

func (r *taskRepository) Update(_ context.Context, task *domain.Task) error {
	if task == nil {
		return domain.ErrInvalidPayload
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.tasks[task.ID]
	if !ok {
		return domain.NewTaskNotFound(task.ID)
	}
	task.CreatedAt = existing.CreatedAt
	task.UpdatedAt = time.Now().UTC()
	r.store.tasks[task.ID] = *task
	return nil
}

func (r *taskRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.tasks[id]; !ok {
		return domain.NewTaskNotFound(id)
	}
	delete(r.store.tasks, id)
	return nil
}

func (r *taskRepository) Exists(_ context.Context, id string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	_, ok := r.store.tasks[id]
	return ok, nil
}

type projectRepository struct {
	store *Store
}

func (r *projectRepository) GetByID(_ context.Context, id string) (*domain.Project, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	project, ok := r.store.projects[id]
	if !ok {
		return nil, domain.NewProjectNotFound(id)
	}
	project.Tasks = r.store.tasksOf(id)
	return &project, nil
}

func (r *projectRepository) List(_ context.Context) ([]domain.Project, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	projects := make([]domain.Project, 0, len(r.store.projects))
	for _, project := range r.store.projects {
		project.Tasks = r.store.tasksOf(project.ID)
		projects = append(projects, project)
	}
	sort.Slice(projects, func(i, j int) bool { return projects[i].ID < projects[j].ID })
	return projects, nil
}

func (r *projectRepository) Search(_ context.Context, criteria repository.ProjectCriteria, page repository.PageRequest) (repository.Page[domain.Project], error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	page = page.Normalize()
	clauses := criteria.Clauses()

	var matched []domain.Project
	for _, project := range r.store.projects {
		if matchesAll(clauses, projectFieldValue(project)) {
			project.Tasks = r.store.tasksOf(project.ID)
			matched = append(matched, project)
		}
	}
	sortProjects(matched, page)
	total := int64(len(matched))
	return repository.NewPage(paginate(matched, page), page, total), nil
}

func (r *projectRepository) Create(_ context.Context, project *domain.Project) (*domain.Project, error) {
	if project == nil {
		return nil, domain.ErrInvalidPayload
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if project.ID == "" {
		project.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now

	stored := *project
	stored.Tasks = nil
	r.store.projects[project.ID] = stored
	return project, nil
}

func (r *projectRepository) Update(_ context.Context, project *domain.Project) error {
	if project == nil {
		return domain.ErrInvalidPayload
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.projects[project.ID]
	if !ok {
		return domain.NewProjectNotFound(project.ID)
	}
	project.CreatedAt = existing.CreatedAt
	project.UpdatedAt = time.Now().UTC()

	stored := *project
	stored.Tasks = nil
	r.store.projects[project.ID] = stored
	return nil
}

// Delete removes the project and clears the owning reference on its tasks,
// mirroring the schema's ON DELETE SET NULL.
func (r *projectRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.projects[id]; !ok {
		return domain.NewProjectNotFound(id)
	}
	delete(r.store.projects, id)
	for tid, task := range r.store.tasks {
		if task.ProjectID != nil && *task.ProjectID == id {
			task.ProjectID = nil
			r.store.tasks[tid] = task
		}
	}
	return nil
}

func (r *projectRepository) Exists(_ context.Context, id string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	_, ok := r.store.projects[id]
	return ok, nil
}

// tasksOf collects the inverse task collection. Caller holds the lock.
func (s *Store) tasksOf(projectID string) []domain.Task {
	tasks := []domain.Task{}
	for _, task := range s.tasks {
		if task.ProjectID != nil && *task.ProjectID == projectID {
			tasks = append(tasks, task)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks
}

// fieldValue resolves a clause field name to the record's value. A nil value
// with ok=false means the field is unset on this record, which never matches.
type fieldValue func(field string) (any, bool)

func taskFieldValue(t domain.Task) fieldValue {
	return func(field string) (any, bool) {
		switch field {
		case repository.FieldID:
			return t.ID, true
		case repository.FieldName:
			return t.Name, true
		case repository.FieldDescription:
			return t.Description, true
		case repository.FieldStatus:
			return string(t.Status), true
		case repository.FieldPriority:
			return string(t.Priority), true
		case repository.FieldProjectID:
			if t.ProjectID == nil {
				return nil, false
			}
			return *t.ProjectID, true
		case repository.FieldDueDate:
			if t.DueDate == nil {
				return nil, false
			}
			return *t.DueDate, true
		}
		return nil, false
	}
}

func projectFieldValue(p domain.Project) fieldValue {
	return func(field string) (any, bool) {
		switch field {
		case repository.FieldID:
			return p.ID, true
		case repository.FieldName:
			return p.Name, true
		case repository.FieldDescription:
			return p.Description, true
		}
		return nil, false
	}
}

func matchesAll(clauses []repository.Clause, value fieldValue) bool {
	for _, cl := range clauses {
		if !matches(cl, value) {
			return false
		}
	}
	return true
}

func matches(cl repository.Clause, value fieldValue) bool {
	switch cl.Op {
	case repository.OpEqual:
		v, ok := value(cl.Fields[0])
		if !ok {
			return false
		}
		s, _ := v.(string)
		w, _ := cl.Value.(string)
		return s == w

	case repository.OpContains:
		v, ok := value(cl.Fields[0])
		if !ok {
			return false
		}
		return containsFold(v, cl.Value)

	case repository.OpContainsAny:
		for _, field := range cl.Fields {
			if v, ok := value(field); ok && containsFold(v, cl.Value) {
				return true
			}
		}
		return false

	case repository.OpOnOrAfter:
		v, ok := value(cl.Fields[0])
		if !ok {
			return false
		}
		return !dateOnly(v).Before(dateOnly(cl.Value))

	case repository.OpOnOrBefore:
		v, ok := value(cl.Fields[0])
		if !ok {
			return false
		}
		return !dateOnly(v).After(dateOnly(cl.Value))
	}
	return false
}

func containsFold(field, needle any) bool {
	s, _ := field.(string)
	w, _ := needle.(string)
	return strings.Contains(strings.ToLower(s), strings.ToLower(w))
}

func dateOnly(v any) time.Time {
	t, _ := v.(time.Time)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sortTasks(tasks []domain.Task, page repository.PageRequest) {
	less := func(a, b domain.Task) bool {
		switch page.SortField {
		case repository.FieldName:
			return a.Name < b.Name
		case repository.FieldDescription:
			return a.Description < b.Description
		case repository.FieldStatus:
			return a.Status < b.Status
		case repository.FieldPriority:
			return a.Priority < b.Priority
		case repository.FieldDueDate:
			at, bt := a.DueDate, b.DueDate
			if at == nil || bt == nil {
				return bt == nil && at != nil
			}
			return at.Before(*bt)
		default:
			return a.ID < b.ID
		}
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		if page.SortDir == repository.SortDesc {
			return less(tasks[j], tasks[i])
		}
		return less(tasks[i], tasks[j])
	})
}

func sortProjects(projects []domain.Project, page repository.PageRequest) {
	less := func(a, b domain.Project) bool {
		switch page.SortField {
		case repository.FieldName:
			return a.Name < b.Name
		case repository.FieldDescription:
			return a.Description < b.Description
		default:
			return a.ID < b.ID
		}
	}
	sort.SliceStable(projects, func(i, j int) bool {
		if page.SortDir == repository.SortDesc {
			return less(projects[j], projects[i])
		}
		return less(projects[i], projects[j])
	})
}

func paginate[T any](items []T, page repository.PageRequest) []T {
	start := page.Offset()
	if start >= len(items) {
		return []T{}
	}
	end := start + page.Size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
