package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/fintrack/finance-api/internal/core/domain"
	"github.com/fintrack/finance-api/internal/core/ports"
)

// RecordService implements ownership-scoped record CRUD.
type RecordService struct {
	repo       ports.RecordRepository
	categories ports.CategoryRepository
	logger     zerolog.Logger
}

func NewRecordService(repo ports.RecordRepository, categories ports.CategoryRepository, logger zerolog.Logger) *RecordService {
	return &RecordService{repo: repo, categories: categories, logger: logger}
}

// Create stores a new record. The referenced category must belong to the same
// identity; a category under another owner is reported as not found so record
// creation can never link across users.
func (s *RecordService) Create(ctx context.Context, input ports.CreateRecordInput) (*domain.Record, error) {
	if !domain.ValidAmount(input.Amount) {
		return nil, domain.ErrInvalidAmount
	}
	if _, err := s.categories.FindByID(ctx, input.UserID, input.CategoryID); err != nil {
		return nil, err
	}

	record := &domain.Record{
		Name:       input.Name,
		Amount:     input.Amount,
		Date:       input.Date,
		Paid:       input.Paid,
		CategoryID: input.CategoryID,
		UserID:     input.UserID,
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", input.UserID).Int64("record_id", created.ID).Str("amount", created.Amount.String()).Msg("record created")
	return created, nil
}

func (s *RecordService) List(ctx context.Context, userID int64) ([]domain.Record, error) {
	return s.repo.FindByUser(ctx, userID)
}

func (s *RecordService) Get(ctx context.Context, userID, id int64) (*domain.Record, error) {
	return s.repo.FindByID(ctx, userID, id)
}

// Update replaces all mutable fields. The target category is revalidated so
// an update cannot move a record under another user's category.
func (s *RecordService) Update(ctx context.Context, input ports.UpdateRecordInput) (*domain.Record, error) {
	if !domain.ValidAmount(input.Amount) {
		return nil, domain.ErrInvalidAmount
	}
	category, err := s.categories.FindByID(ctx, input.UserID, input.CategoryID)
	if err != nil {
		return nil, err
	}

	record := &domain.Record{
		ID:         input.RecordID,
		Name:       input.Name,
		Amount:     input.Amount,
		Date:       input.Date,
		Paid:       input.Paid,
		CategoryID: input.CategoryID,
		UserID:     input.UserID,
	}

	if err := s.repo.Update(ctx, record); err != nil {
		return nil, err
	}

	record.Category = category
	return record, nil
}

func (s *RecordService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.logger.Info().Int64("user_id", userID).Int64("record_id", id).Msg("record deleted")
	return nil
}
