package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskhive/backend/repository"
)

// Querier is the subset of pgx shared by *pgxpool.Pool and pgx.Tx, so the
// same repository code runs inside and outside a transaction.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Store is the Postgres-backed repository.Store.
type Store struct {
	pool *pgxpool.Pool
	q    Querier
}

// NewStore wraps a pgx pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool, q: pool}
}

func (s *Store) Tasks() repository.TaskRepository {
	return &taskRepository{q: s.q}
}

func (s *Store) Projects() repository.ProjectRepository {
	return &projectRepository{q: s.q}
}

// WithinTx runs fn against a transaction-bound view of the store. A nested
// call joins the enclosing transaction.
func (s *Store) WithinTx(ctx context.Context, fn func(repository.Store) error) error {
	if s.pool == nil {
		return fn(s)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}

	if err := fn(&Store{q: tx}); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}
