package sqlite

import (
	"context"
	"fmt"

	"github.com/uservault/uservault/users"
)

// Select returns one page of users ordered by ascending id together with
// the total row count. The count is a separate statement; a slight skew
// under concurrent writers is acceptable.
func (repo *Repo) Select(ctx context.Context, params users.SelectParams) ([]users.User, int, error) {
	const q = `SELECT id, name, email, created_at FROM users ORDER BY id ASC LIMIT ? OFFSET ?`

	rows, err := repo.db.QueryContext(ctx, q, params.Limit, params.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	defer rows.Close()

	var ans []users.User

	for rows.Next() {
		user, err := rowToUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to list users: %w", err)
		}

		ans = append(ans, user)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	const countQ = `SELECT COUNT(*) FROM users`

	var total int
	if err := repo.db.QueryRowContext(ctx, countQ).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	return ans, total, nil
}
