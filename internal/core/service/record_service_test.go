package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/fintrack/finance-api/internal/core/domain"
	"github.com/fintrack/finance-api/internal/core/ports"
)

type stubRecordRepo struct {
	records map[int64]*domain.Record
	nextID  int64
}

func newStubRecordRepo() *stubRecordRepo {
	return &stubRecordRepo{records: make(map[int64]*domain.Record)}
}

func (r *stubRecordRepo) Create(_ context.Context, record *domain.Record) (*domain.Record, error) {
	r.nextID++
	clone := *record
	clone.ID = r.nextID
	r.records[clone.ID] = &clone
	copy := clone
	return &copy, nil
}

func (r *stubRecordRepo) FindByUser(_ context.Context, userID int64) ([]domain.Record, error) {
	out := []domain.Record{}
	for _, rec := range r.records {
		if rec.UserID == userID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (r *stubRecordRepo) FindByID(_ context.Context, userID, id int64) (*domain.Record, error) {
	rec, ok := r.records[id]
	if !ok || rec.UserID != userID {
		return nil, domain.ErrRecordNotFound
	}
	clone := *rec
	return &clone, nil
}

func (r *stubRecordRepo) Update(_ context.Context, record *domain.Record) error {
	rec, ok := r.records[record.ID]
	if !ok || rec.UserID != record.UserID {
		return domain.ErrRecordNotFound
	}
	*rec = *record
	return nil
}

func (r *stubRecordRepo) Delete(_ context.Context, userID, id int64) error {
	rec, ok := r.records[id]
	if !ok || rec.UserID != userID {
		return domain.ErrRecordNotFound
	}
	delete(r.records, id)
	return nil
}

func newRecordFixture(t *testing.T) (*RecordService, *domain.Category) {
	t.Helper()
	categories := newStubCategoryRepo()
	category, err := categories.Create(context.Background(), &domain.Category{
		Name:   "Salary",
		Kind:   domain.KindIncome,
		UserID: 1,
	})
	if err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return NewRecordService(newStubRecordRepo(), categories, zerolog.Nop()), category
}

func recordInput(category *domain.Category, amount string) ports.CreateRecordInput {
	return ports.CreateRecordInput{
		UserID:     1,
		Name:       "January salary",
		Amount:     decimal.RequireFromString(amount),
		Date:       time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Paid:       true,
		CategoryID: category.ID,
	}
}

func TestRecordService_Create(t *testing.T) {
	svc, category := newRecordFixture(t)

	created, err := svc.Create(context.Background(), recordInput(category, "100.00"))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.UserID != 1 {
		t.Fatalf("expected owner 1, got %d", created.UserID)
	}
	if !created.Amount.Equal(decimal.RequireFromString("100")) {
		t.Fatalf("unexpected amount: %s", created.Amount)
	}
}

func TestRecordService_Create_ForeignCategoryIsNotFound(t *testing.T) {
	svc, category := newRecordFixture(t)

	input := recordInput(category, "100.00")
	input.UserID = 2 // category belongs to user 1
	if _, err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestRecordService_Create_InvalidAmounts(t *testing.T) {
	svc, category := newRecordFixture(t)

	for _, amount := range []string{"0", "-5.00", "10.123", "100000000.00"} {
		input := recordInput(category, amount)
		if _, err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrInvalidAmount) {
			t.Fatalf("amount %s: expected ErrInvalidAmount, got %v", amount, err)
		}
	}
}

func TestRecordService_Update_RevalidatesCategory(t *testing.T) {
	svc, category := newRecordFixture(t)

	created, err := svc.Create(context.Background(), recordInput(category, "100.00"))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	_, err = svc.Update(context.Background(), ports.UpdateRecordInput{
		UserID:     1,
		RecordID:   created.ID,
		Name:       created.Name,
		Amount:     created.Amount,
		Date:       created.Date,
		Paid:       created.Paid,
		CategoryID: category.ID + 999, // nonexistent
	})
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestRecordService_Delete_OtherOwnerIsNotFound(t *testing.T) {
	svc, category := newRecordFixture(t)

	created, err := svc.Create(context.Background(), recordInput(category, "100.00"))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := svc.Delete(context.Background(), 2, created.ID); !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
