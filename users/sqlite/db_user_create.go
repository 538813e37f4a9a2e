package sqlite

import (
	"context"
	"fmt"

	"github.com/uservault/uservault/users"
)

// Create inserts a user row; the engine assigns id and created_at.
func (repo *Repo) Create(ctx context.Context, name, email string) (users.User, error) {
	const q = `INSERT INTO users (name, email) VALUES (?, ?)`

	res, err := repo.db.ExecContext(ctx, q, name, email)
	if err != nil {
		if isUniqueViolation(err) {
			return users.User{}, users.ErrAlreadyExists
		}

		return users.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return users.User{}, fmt.Errorf("failed to read inserted id: %w", err)
	}

	return repo.Get(ctx, id)
}
