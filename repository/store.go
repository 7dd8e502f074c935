package repository

import "context"

// Store bundles the entity repositories and provides a unit-of-work boundary.
// WithinTx runs fn against a transactional view of the store: every write fn
// performs becomes visible atomically when fn returns nil, and none of them
// when fn returns an error.
type Store interface {
	Tasks() TaskRepository
	Projects() ProjectRepository
	WithinTx(ctx context.Context, fn func(Store) error) error
}
