package users

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// Service validates inputs and delegates to the repository. It is the only
// path between a tool surface and the storage engine.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) Create(ctx context.Context, name, email string) (User, error) {
	if err := ValidateName(name); err != nil {
		return User{}, err
	}

	if err := ValidateEmail(email); err != nil {
		return User{}, err
	}

	user, err := s.repo.Create(ctx, strings.TrimSpace(name), strings.TrimSpace(email))
	if err != nil {
		return User{}, err
	}

	s.logger.Info("user created", zap.Int64("id", user.ID))

	return user, nil
}

func (s *Service) Get(ctx context.Context, id int64) (User, error) {
	if err := ValidateID(id); err != nil {
		return User{}, err
	}

	return s.repo.Get(ctx, id)
}

// List returns one page of users ordered by ascending id plus the
// pagination metadata. The limit is clamped to MaxLimit.
func (s *Service) List(ctx context.Context, limit, offset int) ([]User, Page, error) {
	limit, err := ClampLimit(limit)
	if err != nil {
		return nil, Page{}, err
	}

	if err := ValidateOffset(offset); err != nil {
		return nil, Page{}, err
	}

	items, total, err := s.repo.Select(ctx, SelectParams{Limit: limit, Offset: offset})
	if err != nil {
		return nil, Page{}, err
	}

	page := Page{
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}

	return items, page, nil
}

func (s *Service) Update(ctx context.Context, id int64, fields UpdateFields) (User, error) {
	if err := ValidateID(id); err != nil {
		return User{}, err
	}

	if fields.Empty() {
		return User{}, InvalidInput("At least one field (name or email) must be provided")
	}

	if fields.Name != nil {
		if err := ValidateName(*fields.Name); err != nil {
			return User{}, err
		}

		trimmed := strings.TrimSpace(*fields.Name)
		fields.Name = &trimmed
	}

	if fields.Email != nil {
		if err := ValidateEmail(*fields.Email); err != nil {
			return User{}, err
		}

		trimmed := strings.TrimSpace(*fields.Email)
		fields.Email = &trimmed
	}

	user, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return User{}, err
	}

	s.logger.Info("user updated", zap.Int64("id", id))

	return user, nil
}

func (s *Service) Delete(ctx context.Context, id int64) (User, error) {
	if err := ValidateID(id); err != nil {
		return User{}, err
	}

	user, err := s.repo.Delete(ctx, id)
	if err != nil {
		return User{}, err
	}

	s.logger.Info("user deleted", zap.Int64("id", id))

	return user, nil
}
