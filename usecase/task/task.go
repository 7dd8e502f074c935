package task

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/taskhive/backend/domain"
	"github.com/taskhive/backend/repository"
)

// UseCase is the read/write entry point for tasks. Assignment to a project is
// out of its reach; only the project use case mutates the relationship.
type UseCase struct {
	store  repository.Store
	logger *zap.Logger
}

func New(store repository.Store, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		store:  store,
		logger: logger,
	}
}

// CreateTask validates and persists a new task. The store assigns the id.
func (uc *UseCase) CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil {
		return nil, domain.ErrInvalidPayload
	}
	if err := task.Validate(time.Now()); err != nil {
		return nil, err
	}

	created, err := uc.store.Tasks().Create(ctx, task)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("task created", zap.String("task_id", created.ID))
	return created, nil
}

func (uc *UseCase) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	return uc.store.Tasks().GetByID(ctx, id)
}

// ListTasks returns every task, unfiltered and unpaged.
func (uc *UseCase) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return uc.store.Tasks().List(ctx)
}

// UpdateTask replaces all mutable fields of an existing task in one call.
// The project assignment is preserved as-is.
func (uc *UseCase) UpdateTask(ctx context.Context, id string, task *domain.Task) (*domain.Task, error) {
	if task == nil {
		return nil, domain.ErrInvalidPayload
	}
	if err := task.Validate(time.Now()); err != nil {
		return nil, err
	}

	existing, err := uc.store.Tasks().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = task.Name
	existing.Description = task.Description
	existing.Priority = task.Priority
	existing.Status = task.Status
	existing.DueDate = task.DueDate

	if err := uc.store.Tasks().Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (uc *UseCase) DeleteTask(ctx context.Context, id string) error {
	exists, err := uc.store.Tasks().Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.NewTaskNotFound(id)
	}
	if err := uc.store.Tasks().Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("task deleted", zap.String("task_id", id))
	return nil
}

// SearchTasks runs a filtered, paginated, sorted query.
func (uc *UseCase) SearchTasks(ctx context.Context, criteria repository.TaskCriteria, page repository.PageRequest) (repository.Page[domain.Task], error) {
	return uc.store.Tasks().Search(ctx, criteria, page)
}
