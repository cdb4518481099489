package postgres

import (
	"context"
	"fmt"

	"caretrack/internal/domain"
)

// UserRepo persists login credentials. The user table has no primary key,
// so the generic engine does not apply: there is no generated key to return
// and no identity to read, update, or delete by. Inherited schema gap.
type UserRepo struct {
	db *DB
}

// NewUserRepo wraps the shared connection as a UserRepository.
func NewUserRepo(db *DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create inserts a credential row.
func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return err
	}

	if _, err := conn.ExecContext(ctx,
		`INSERT INTO "user" (username, password) VALUES ($1, $2)`,
		u.Username, u.Password,
	); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// All returns every credential row in store order.
func (r *UserRepo) All(ctx context.Context) ([]domain.User, error) {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := conn.QueryContext(ctx, `SELECT username, password FROM "user"`)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.Username, &u.Password); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
