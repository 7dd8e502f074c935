package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/taskhive/backend/domain"
	"github.com/taskhive/backend/repository"
)

const taskFields = "id, name, description, priority, status, due_date, project_id, created_at, updated_at"

type taskRepository struct {
	q Querier
}

// NewTaskRepository returns a Postgres-backed implementation of TaskRepository.
func NewTaskRepository(q Querier) repository.TaskRepository {
	return &taskRepository{q: q}
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE id = $1", taskFields)
	task, err := scanTask(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewTaskNotFound(id)
		}
		return nil, err
	}
	return task, nil
}

func (r *taskRepository) List(ctx context.Context) ([]domain.Task, error) {
	query := fmt.Sprintf("SELECT %s FROM tasks ORDER BY id ASC", taskFields)
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

func (r *taskRepository) Search(ctx context.Context, criteria repository.TaskCriteria, page repository.PageRequest) (repository.Page[domain.Task], error) {
	page = page.Normalize()
	where, args := buildWhere(criteria.Clauses(), taskColumns)

	var total int64
	if err := r.q.QueryRow(ctx, "SELECT count(*) FROM tasks"+where, args...).Scan(&total); err != nil {
		return repository.Page[domain.Task]{}, err
	}

	query := fmt.Sprintf("SELECT %s FROM tasks%s%s LIMIT $%d OFFSET $%d",
		taskFields, where, orderBy(page, taskColumns), len(args)+1, len(args)+2)
	rows, err := r.q.Query(ctx, query, append(args, page.Size, page.Offset())...)
	if err != nil {
		return repository.Page[domain.Task]{}, err
	}
	defer rows.Close()

	tasks, err := collectTasks(rows)
	if err != nil {
		return repository.Page[domain.Task]{}, err
	}
	return repository.NewPage(tasks, page, total), nil
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil {
		return nil, domain.ErrInvalidPayload
	}
	if task.ID == "" {
		task.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO tasks (id, name, description, priority, status, due_date, project_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING created_at, updated_at
	`
	if err := r.q.QueryRow(ctx, query,
		task.ID,
		task.Name,
		task.Description,
		string(task.Priority),
		string(task.Status),
		nullDate(task.DueDate),
		task.ProjectID,
	).Scan(&task.CreatedAt, &task.UpdatedAt); err != nil {
		return nil, err
	}

	return task, nil
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE tasks
	SET name = $2,
		description = $3,
		priority = $4,
		status = $5,
		due_date = $6,
		project_id = $7,
		updated_at = NOW()
	WHERE id = $1
	RETURNING updated_at
	`
	if err := r.q.QueryRow(ctx, query,
		task.ID,
		task.Name,
		task.Description,
		string(task.Priority),
		string(task.Status),
		nullDate(task.DueDate),
		task.ProjectID,
	).Scan(&task.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NewTaskNotFound(task.ID)
		}
		return err
	}

	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, "DELETE FROM tasks WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NewTaskNotFound(id)
	}
	return nil
}

func (r *taskRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM tasks WHERE id = $1)", id).Scan(&exists)
	return exists, err
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var (
		task domain.Task
		due  *time.Time
	)
	if err := row.Scan(
		&task.ID,
		&task.Name,
		&task.Description,
		&task.Priority,
		&task.Status,
		&due,
		&task.ProjectID,
		&task.CreatedAt,
		&task.UpdatedAt,
	); err != nil {
		return nil, err
	}
	task.DueDate = due
	return &task, nil
}

func collectTasks(rows pgx.Rows) ([]domain.Task, error) {
	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

func nullDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
