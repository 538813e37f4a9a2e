package sqlite

import (
	"context"
	"fmt"

	"github.com/uservault/uservault/users"
)

// Delete removes a user row and returns its last-known value.
func (repo *Repo) Delete(ctx context.Context, id int64) (users.User, error) {
	user, err := repo.Get(ctx, id)
	if err != nil {
		return users.User{}, err
	}

	const q = `DELETE FROM users WHERE id = ?`

	if _, err := repo.db.ExecContext(ctx, q, id); err != nil {
		return users.User{}, fmt.Errorf("failed to delete user: %w", err)
	}

	return user, nil
}
