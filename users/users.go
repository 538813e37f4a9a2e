// Package users holds the user record domain: the entity, the repository
// contract, input validation and the response envelopes shared by every
// tool surface.
package users

import "context"

// User is one row of the users table.
type User struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// UpdateFields carries the optional fields of a partial update. A nil
// pointer means the field is left untouched.
type UpdateFields struct {
	Name  *string
	Email *string
}

func (f UpdateFields) Empty() bool {
	return f.Name == nil && f.Email == nil
}

type SelectParams struct {
	Limit  int
	Offset int
}

// Page is the pagination metadata returned alongside a listing.
type Page struct {
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type Repository interface {
	Create(ctx context.Context, name, email string) (User, error)
	Get(ctx context.Context, id int64) (User, error)
	Select(ctx context.Context, params SelectParams) ([]User, int, error)
	Update(ctx context.Context, id int64, fields UpdateFields) (User, error)
	Delete(ctx context.Context, id int64) (User, error)
}
