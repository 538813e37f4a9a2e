package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uservault/uservault/users"
)

func (repo *Repo) Get(ctx context.Context, id int64) (users.User, error) {
	const q = `SELECT id, name, email, created_at FROM users WHERE id = ?`

	row := repo.db.QueryRowContext(ctx, q, id)

	user, err := rowToUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, users.ErrNotFound
		}

		return users.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}
