package repository

import (
	"context"

	"github.com/taskhive/backend/domain"
)

// ProjectRepository loads projects with their inverse task collection
// populated from the owning foreign key on Task.
type ProjectRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	Search(ctx context.Context, criteria ProjectCriteria, page PageRequest) (Page[domain.Project], error)
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}
