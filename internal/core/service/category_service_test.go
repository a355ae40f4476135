package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/fintrack/finance-api/internal/core/domain"
	"github.com/fintrack/finance-api/internal/core/ports"
)

type stubCategoryRepo struct {
	categories map[int64]*domain.Category
	nextID     int64
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[int64]*domain.Category)}
}

func (r *stubCategoryRepo) Create(_ context.Context, category *domain.Category) (*domain.Category, error) {
	r.nextID++
	clone := *category
	clone.ID = r.nextID
	r.categories[clone.ID] = &clone
	copy := clone
	return &copy, nil
}

func (r *stubCategoryRepo) FindByUser(_ context.Context, userID int64) ([]domain.Category, error) {
	out := []domain.Category{}
	for _, c := range r.categories {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubCategoryRepo) FindByUserAndKind(_ context.Context, userID int64, kind domain.CategoryKind) ([]domain.Category, error) {
	out := []domain.Category{}
	for _, c := range r.categories {
		if c.UserID == userID && c.Kind == kind {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, userID, id int64) (*domain.Category, error) {
	c, ok := r.categories[id]
	if !ok || c.UserID != userID {
		return nil, domain.ErrCategoryNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, category *domain.Category) error {
	c, ok := r.categories[category.ID]
	if !ok || c.UserID != category.UserID {
		return domain.ErrCategoryNotFound
	}
	c.Name = category.Name
	c.Kind = category.Kind
	return nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, userID, id int64) error {
	c, ok := r.categories[id]
	if !ok || c.UserID != userID {
		return domain.ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}

func TestCategoryService_Create_ForcesOwner(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateCategoryInput{
		UserID: 7,
		Name:   "Groceries",
		Kind:   domain.KindExpense,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.UserID != 7 {
		t.Fatalf("expected owner 7, got %d", created.UserID)
	}
	if created.Kind != domain.KindExpense {
		t.Fatalf("unexpected kind: %s", created.Kind)
	}
}

func TestCategoryService_ListByKind(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo, zerolog.Nop())

	mustCreateCategory(t, svc, 1, "Salary", domain.KindIncome)
	mustCreateCategory(t, svc, 1, "Rent", domain.KindExpense)
	mustCreateCategory(t, svc, 2, "Bonus", domain.KindIncome)

	income, err := svc.ListByKind(context.Background(), 1, domain.KindIncome)
	if err != nil {
		t.Fatalf("ListByKind returned error: %v", err)
	}
	if len(income) != 1 || income[0].Name != "Salary" {
		t.Fatalf("unexpected income categories: %+v", income)
	}
}

func TestCategoryService_Update_OtherOwnerIsNotFound(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo, zerolog.Nop())

	created := mustCreateCategory(t, svc, 1, "Salary", domain.KindIncome)

	_, err := svc.Update(context.Background(), ports.UpdateCategoryInput{
		UserID:     2,
		CategoryID: created.ID,
		Name:       "Hijacked",
		Kind:       domain.KindExpense,
	})
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestCategoryService_Delete_OtherOwnerIsNotFound(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo, zerolog.Nop())

	created := mustCreateCategory(t, svc, 1, "Salary", domain.KindIncome)

	if err := svc.Delete(context.Background(), 2, created.ID); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), 1, created.ID); err != nil {
		t.Fatalf("owner delete returned error: %v", err)
	}
}

func mustCreateCategory(t *testing.T, svc *CategoryService, userID int64, name string, kind domain.CategoryKind) *domain.Category {
	t.Helper()
	created, err := svc.Create(context.Background(), ports.CreateCategoryInput{
		UserID: userID,
		Name:   name,
		Kind:   kind,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	return created
}
