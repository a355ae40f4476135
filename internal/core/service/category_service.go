package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/fintrack/finance-api/internal/core/domain"
	"github.com/fintrack/finance-api/internal/core/ports"
)

// CategoryService implements ownership-scoped category CRUD.
type CategoryService struct {
	repo   ports.CategoryRepository
	logger zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, logger zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, logger: logger}
}

// Create stores a new category. The owner is taken from the authenticated
// identity in the input; any owner the client attempted to supply is gone by
// the time the request reaches this layer.
func (s *CategoryService) Create(ctx context.Context, input ports.CreateCategoryInput) (*domain.Category, error) {
	category := &domain.Category{
		Name:   input.Name,
		Kind:   input.Kind,
		UserID: input.UserID,
	}

	created, err := s.repo.Create(ctx, category)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", input.UserID).Int64("category_id", created.ID).Str("kind", string(created.Kind)).Msg("category created")
	return created, nil
}

func (s *CategoryService) List(ctx context.Context, userID int64) ([]domain.Category, error) {
	return s.repo.FindByUser(ctx, userID)
}

func (s *CategoryService) ListByKind(ctx context.Context, userID int64, kind domain.CategoryKind) ([]domain.Category, error) {
	return s.repo.FindByUserAndKind(ctx, userID, kind)
}

func (s *CategoryService) Get(ctx context.Context, userID, id int64) (*domain.Category, error) {
	return s.repo.FindByID(ctx, userID, id)
}

// Update replaces name and kind. A category owned by someone else surfaces as
// ErrCategoryNotFound, never as a permission error.
func (s *CategoryService) Update(ctx context.Context, input ports.UpdateCategoryInput) (*domain.Category, error) {
	category := &domain.Category{
		ID:     input.CategoryID,
		Name:   input.Name,
		Kind:   input.Kind,
		UserID: input.UserID,
	}

	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes the category; dependent records cascade in the store.
func (s *CategoryService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.logger.Info().Int64("user_id", userID).Int64("category_id", id).Msg("category deleted")
	return nil
}
