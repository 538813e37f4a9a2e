package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/uservault/uservault/users"
)

// Update changes the supplied fields only. Column names come from a fixed
// whitelist; every value is parameter-bound.
func (repo *Repo) Update(ctx context.Context, id int64, fields users.UpdateFields) (users.User, error) {
	var (
		sets []string
		args []any
	)

	if fields.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *fields.Name)
	}

	if fields.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, *fields.Email)
	}

	if len(sets) == 0 {
		return users.User{}, users.ErrInvalidInput
	}

	q := "UPDATE users SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, id)

	res, err := repo.db.ExecContext(ctx, q, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return users.User{}, users.ErrAlreadyExists
		}

		return users.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return users.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	if affected == 0 {
		return users.User{}, users.ErrNotFound
	}

	return repo.Get(ctx, id)
}
