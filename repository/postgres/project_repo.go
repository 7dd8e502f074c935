package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/taskhive/backend/domain"
	"github.com/taskhive/backend/repository"
)

const projectFields = "id, name, description, created_at, updated_at"

type projectRepository struct {
	q Querier
}

// NewProjectRepository returns a Postgres-backed implementation of ProjectRepository.
func NewProjectRepository(q Querier) repository.ProjectRepository {
	return &projectRepository{q: q}
}

func (r *projectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := fmt.Sprintf("SELECT %s FROM projects WHERE id = $1", projectFields)
	project, err := scanProject(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewProjectNotFound(id)
		}
		return nil, err
	}
	if err := r.attachTasks(ctx, []*domain.Project{project}); err != nil {
		return nil, err
	}
	return project, nil
}

func (r *projectRepository) List(ctx context.Context) ([]domain.Project, error) {
	query := fmt.Sprintf("SELECT %s FROM projects ORDER BY id ASC", projectFields)
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects, err := collectProjects(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachTasksTo(ctx, projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *projectRepository) Search(ctx context.Context, criteria repository.ProjectCriteria, page repository.PageRequest) (repository.Page[domain.Project], error) {
	page = page.Normalize()
	where, args := buildWhere(criteria.Clauses(), projectColumns)

	var total int64
	if err := r.q.QueryRow(ctx, "SELECT count(*) FROM projects"+where, args...).Scan(&total); err != nil {
		return repository.Page[domain.Project]{}, err
	}

	query := fmt.Sprintf("SELECT %s FROM projects%s%s LIMIT $%d OFFSET $%d",
		projectFields, where, orderBy(page, projectColumns), len(args)+1, len(args)+2)
	rows, err := r.q.Query(ctx, query, append(args, page.Size, page.Offset())...)
	if err != nil {
		return repository.Page[domain.Project]{}, err
	}
	defer rows.Close()

	projects, err := collectProjects(rows)
	if err != nil {
		return repository.Page[domain.Project]{}, err
	}
	if err := r.attachTasksTo(ctx, projects); err != nil {
		return repository.Page[domain.Project]{}, err
	}
	return repository.NewPage(projects, page, total), nil
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	if project == nil {
		return nil, domain.ErrInvalidPayload
	}
	if project.ID == "" {
		project.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO projects (id, name, description)
	VALUES ($1, $2, $3)
	RETURNING created_at, updated_at
	`
	if err := r.q.QueryRow(ctx, query,
		project.ID,
		project.Name,
		project.Description,
	).Scan(&project.CreatedAt, &project.UpdatedAt); err != nil {
		return nil, err
	}

	return project, nil
}

// Update persists the project's own columns. The task collection is the
// inverse side of the relationship; its state lives in the tasks table.
func (r *projectRepository) Update(ctx context.Context, project *domain.Project) error {
	if project == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE projects
	SET name = $2,
		description = $3,
		updated_at = NOW()
	WHERE id = $1
	RETURNING updated_at
	`
	if err := r.q.QueryRow(ctx, query,
		project.ID,
		project.Name,
		project.Description,
	).Scan(&project.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NewProjectNotFound(project.ID)
		}
		return err
	}

	return nil
}

func (r *projectRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, "DELETE FROM projects WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NewProjectNotFound(id)
	}
	return nil
}

func (r *projectRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM projects WHERE id = $1)", id).Scan(&exists)
	return exists, err
}

func (r *projectRepository) attachTasksTo(ctx context.Context, projects []domain.Project) error {
	refs := make([]*domain.Project, len(projects))
	for i := range projects {
		refs[i] = &projects[i]
	}
	return r.attachTasks(ctx, refs)
}

// attachTasks populates the inverse task collections in one query.
func (r *projectRepository) attachTasks(ctx context.Context, projects []*domain.Project) error {
	if len(projects) == 0 {
		return nil
	}

	ids := make([]string, 0, len(projects))
	byID := make(map[string]*domain.Project, len(projects))
	for _, p := range projects {
		p.Tasks = []domain.Task{}
		ids = append(ids, p.ID)
		byID[p.ID] = p
	}

	query := fmt.Sprintf("SELECT %s FROM tasks WHERE project_id = ANY($1) ORDER BY id ASC", taskFields)
	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	tasks, err := collectTasks(rows)
	if err != nil {
		return err
	}
	for _, task := range tasks {
		if task.ProjectID == nil {
			continue
		}
		if p, ok := byID[*task.ProjectID]; ok {
			p.Tasks = append(p.Tasks, task)
		}
	}
	return nil
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	var project domain.Project
	if err := row.Scan(
		&project.ID,
		&project.Name,
		&project.Description,
		&project.CreatedAt,
		&project.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &project, nil
}

func collectProjects(rows pgx.Rows) ([]domain.Project, error) {
	var projects []domain.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *project)
	}
	return projects, rows.Err()
}
