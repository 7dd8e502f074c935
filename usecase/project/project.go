package project

import (
	"context"

	"go.uber.org/zap"

	"github.com/taskhive/backend/domain"
	"github.com/taskhive/backend/repository"
)

// UseCase covers project CRUD/search and is the only component allowed to
// mutate the task/project relationship. Assign and unassign update both sides
// inside a single store transaction.
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

func (uc *UseCase) CreateProject(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	if project == nil {
		return nil, domain.ErrInvalidPayload
	}
	if err := project.Validate(); err != nil {
		return nil, err
	}

	created, err := uc.store.Projects().Create(ctx, project)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("project created", zap.String("project_id", created.ID))
	return created, nil
}

func (uc *UseCase) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	return uc.store.Projects().GetByID(ctx, id)
}

// ListProjects returns every project, unfiltered and unpaged.
func (uc *UseCase) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return uc.store.Projects().List(ctx)
}

// UpdateProject replaces the project's mutable fields in one call.
func (uc *UseCase) UpdateProject(ctx context.Context, id string, project *domain.Project) (*domain.Project, error) {
	if project == nil {
		return nil, domain.ErrInvalidPayload
	}
	if err := project.Validate(); err != nil {
		return nil, err
	}

	existing, err := uc.store.Projects().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = project.Name
	existing.Description = project.Description

	if err := uc.store.Projects().Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteProject removes an empty project. Deletion is rejected while tasks
// remain assigned; callers must unassign them first. There is no cascade.
func (uc *UseCase) DeleteProject(ctx context.Context, id string) error {
	exists, err := uc.store.Projects().Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.NewProjectNotFound(id)
	}

	assigned, err := uc.store.Tasks().Search(ctx,
		repository.TaskCriteria{ProjectID: id},
		repository.PageRequest{Size: 1},
	)
	if err != nil {
		return err
	}
	if assigned.TotalElements > 0 {
		return domain.ErrProjectHasTasks
	}

	if err := uc.store.Projects().Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("project deleted", zap.String("project_id", id))
	return nil
}

// SearchProjects runs a filtered, paginated, sorted query.
func (uc *UseCase) SearchProjects(ctx context.Context, criteria repository.ProjectCriteria, page repository.PageRequest) (repository.Page[domain.Project], error) {
	return uc.store.Projects().Search(ctx, criteria, page)
}

// AssignTask links a task to a project: the owning reference on the task is
// set and the task is appended to the project's collection. There is no dedup
// check; assigning the same pair twice appends a second reference while the
// foreign key stays singular. Both sides are persisted in one transaction.
func (uc *UseCase) AssignTask(ctx context.Context, projectID, taskID string) (*domain.Project, error) {
	var result *domain.Project

	err := uc.store.WithinTx(ctx, func(s repository.Store) error {
		project, err := s.Projects().GetByID(ctx, projectID)
		if err != nil {
			return err
		}
		task, err := s.Tasks().GetByID(ctx, taskID)
		if err != nil {
			return err
		}

		task.ProjectID = &project.ID
		project.Tasks = append(project.Tasks, *task)

		if err := s.Tasks().Update(ctx, task); err != nil {
			return err
		}
		if err := s.Projects().Update(ctx, project); err != nil {
			return err
		}

		result = project
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("task assigned",
		zap.String("project_id", projectID),
		zap.String("task_id", taskID),
	)
	return result, nil
}

// UnassignTask removes the link between a task and the project it belongs
// to. The task must currently be assigned to this exact project; otherwise
// the call fails with an invalid-assignment error and mutates nothing.
func (uc *UseCase) UnassignTask(ctx context.Context, projectID, taskID string) (*domain.Project, error) {
	var result *domain.Project

	err := uc.store.WithinTx(ctx, func(s repository.Store) error {
		project, err := s.Projects().GetByID(ctx, projectID)
		if err != nil {
			return err
		}
		task, err := s.Tasks().GetByID(ctx, taskID)
		if err != nil {
			return err
		}

		if !task.AssignedTo(project.ID) {
			return domain.ErrTaskNotAssigned
		}

		task.ProjectID = nil
		project.Tasks = removeTask(project.Tasks, task.ID)

		if err := s.Tasks().Update(ctx, task); err != nil {
			return err
		}
		if err := s.Projects().Update(ctx, project); err != nil {
			return err
		}

		result = project
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("task unassigned",
		zap.String("project_id", projectID),
		zap.String("task_id", taskID),
	)
	return result, nil
}

// removeTask drops every reference with the given id from the collection.
func removeTask(tasks []domain.Task, id string) []domain.Task {
	kept := tasks[:0]
	for _, t := range tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	return kept
}
