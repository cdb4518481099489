package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// rowScanner is the piece of sql.Row / sql.Rows a mapping needs.
type rowScanner interface {
	Scan(dest ...any) error
}

// Mapping supplies the entity-specific SQL text and row mapping consumed by
// Repo. The insert statement must end in RETURNING the generated key.
type Mapping[T any] struct {
	Insert     string
	InsertArgs func(*T) []any
	SelectByID string
	SelectAll  string
	Update     string
	UpdateArgs func(*T) []any
	Delete     string

	// Scan maps one row to an entity.
	Scan func(rowScanner) (T, error)
	// SetID writes the store-assigned key back onto the entity.
	SetID func(*T, int64)
}

// Repo executes CRUD statements for one entity type. It owns the execution
// flow; all SQL text and row mapping come from the Mapping, so the engine
// itself knows nothing about any particular table.
type Repo[T any] struct {
	db *DB
	m  Mapping[T]
}

// NewRepo binds a mapping to the shared connection.
func NewRepo[T any](db *DB, m Mapping[T]) *Repo[T] {
	return &Repo[T]{db: db, m: m}
}

// Create inserts the entity and assigns its identity from the generated key.
// On failure the entity's identity is left untouched.
func (r *Repo[T]) Create(ctx context.Context, e *T) error {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return err
	}

	var id int64
	if err := conn.QueryRowContext(ctx, r.m.Insert, r.m.InsertArgs(e)...).Scan(&id); err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	r.m.SetID(e, id)
	return nil
}

// ByID returns the entity with the given identity, or nil when no row
// matches. Absence is not an error.
func (r *Repo[T]) ByID(ctx context.Context, id int64) (*T, error) {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return nil, err
	}

	e, err := r.m.Scan(conn.QueryRowContext(ctx, r.m.SelectByID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select by id: %w", err)
	}
	return &e, nil
}

// All returns every entity in the store's natural row order.
func (r *Repo[T]) All(ctx context.Context) ([]T, error) {
	return r.list(ctx, r.m.SelectAll)
}

// Update overwrites the full record keyed by identity. Updating an identity
// that matches no row is a no-op.
func (r *Repo[T]) Update(ctx context.Context, e T) error {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return err
	}

	if _, err := conn.ExecContext(ctx, r.m.Update, r.m.UpdateArgs(&e)...); err != nil {
		return fmt.Errorf("update: %w", err)
	}
	return nil
}

// Delete removes the row with the given identity. Deleting an identity that
// matches no row is a no-op.
func (r *Repo[T]) Delete(ctx context.Context, id int64) error {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return err
	}

	if _, err := conn.ExecContext(ctx, r.m.Delete, id); err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	return nil
}

// list runs a query returning entity rows and maps them in order.
func (r *Repo[T]) list(ctx context.Context, query string, args ...any) ([]T, error) {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		e, err := r.m.Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
