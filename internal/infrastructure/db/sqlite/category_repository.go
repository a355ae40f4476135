package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fintrack/finance-api/internal/core/domain"
)

// kindToWire maps the domain kind to its stored integer (1 income, 0 expense).
func kindToWire(kind domain.CategoryKind) int {
	if kind == domain.KindIncome {
		return 1
	}
	return 0
}

func kindFromStored(v int) domain.CategoryKind {
	if v == 1 {
		return domain.KindIncome
	}
	return domain.KindExpense
}

// CategoryRepository persists categories. Every statement conjoins user_id so
// categories under another owner are indistinguishable from absent ones.
type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (name, kind, user_id) VALUES (?, ?, ?)`,
		category.Name, kindToWire(category.Kind), category.UserID,
	)
	if err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert category id: %w", err)
	}

	created := *category
	created.ID = id
	return &created, nil
}

func (r *CategoryRepository) FindByUser(ctx context.Context, userID int64) ([]domain.Category, error) {
	return r.query(ctx,
		`SELECT id, name, kind, user_id FROM categories WHERE user_id = ? ORDER BY id`,
		userID,
	)
}

func (r *CategoryRepository) FindByUserAndKind(ctx context.Context, userID int64, kind domain.CategoryKind) ([]domain.Category, error) {
	return r.query(ctx,
		`SELECT id, name, kind, user_id FROM categories WHERE user_id = ? AND kind = ? ORDER BY id`,
		userID, kindToWire(kind),
	)
}

func (r *CategoryRepository) FindByID(ctx context.Context, userID, id int64) (*domain.Category, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, kind, user_id FROM categories WHERE id = ? AND user_id = ?`,
		id, userID,
	)

	var c domain.Category
	var kind int
	if err := row.Scan(&c.ID, &c.Name, &kind, &c.UserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("scan category: %w", err)
	}
	c.Kind = kindFromStored(kind)
	return &c, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE categories SET name = ?, kind = ? WHERE id = ? AND user_id = ?`,
		category.Name, kindToWire(category.Kind), category.ID, category.UserID,
	)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return requireRow(res, domain.ErrCategoryNotFound)
}

func (r *CategoryRepository) Delete(ctx context.Context, userID, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM categories WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return requireRow(res, domain.ErrCategoryNotFound)
}

func (r *CategoryRepository) query(ctx context.Context, statement string, args ...any) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx, statement, args...)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		var kind int
		if err := rows.Scan(&c.ID, &c.Name, &kind, &c.UserID); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		c.Kind = kindFromStored(kind)
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// requireRow converts a zero-row write into notFound, hiding whether the row
// exists under another owner.
func requireRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
