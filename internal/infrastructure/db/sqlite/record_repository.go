package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack/finance-api/internal/core/domain"
)

const dateLayout = "2006-01-02"

// amountToCents converts a validated 2-decimal amount to integer cents for
// storage. Aggregation happens on cents so no monetary value ever passes
// through binary floating point.
func amountToCents(d decimal.Decimal) int64 {
	return d.Shift(2).IntPart()
}

func amountFromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// RecordRepository persists records. Reads join the categories table so each
// record carries its full category; every statement is scoped to the owner.
type RecordRepository struct {
	db *sql.DB
}

func NewRecordRepository(db *sql.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

func (r *RecordRepository) Create(ctx context.Context, record *domain.Record) (*domain.Record, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO records (name, amount_cents, date, paid, category_id, user_id) VALUES (?, ?, ?, ?, ?, ?)`,
		record.Name, amountToCents(record.Amount), record.Date.Format(dateLayout),
		record.Paid, record.CategoryID, record.UserID,
	)
	if err != nil {
		return nil, fmt.Errorf("insert record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert record id: %w", err)
	}

	return r.FindByID(ctx, record.UserID, id)
}

const recordSelect = `
SELECT r.id, r.name, r.amount_cents, r.date, r.paid, r.category_id, r.user_id,
       c.id, c.name, c.kind, c.user_id
FROM records r
JOIN categories c ON c.id = r.category_id`

func (r *RecordRepository) FindByUser(ctx context.Context, userID int64) ([]domain.Record, error) {
	rows, err := r.db.QueryContext(ctx,
		recordSelect+` WHERE r.user_id = ? ORDER BY r.date DESC, r.id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	records := []domain.Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

func (r *RecordRepository) FindByID(ctx context.Context, userID, id int64) (*domain.Record, error) {
	rows, err := r.db.QueryContext(ctx,
		recordSelect+` WHERE r.id = ? AND r.user_id = ?`,
		id, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query record: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("query record: %w", err)
		}
		return nil, domain.ErrRecordNotFound
	}
	return scanRecord(rows)
}

func (r *RecordRepository) Update(ctx context.Context, record *domain.Record) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE records SET name = ?, amount_cents = ?, date = ?, paid = ?, category_id = ?
		 WHERE id = ? AND user_id = ?`,
		record.Name, amountToCents(record.Amount), record.Date.Format(dateLayout),
		record.Paid, record.CategoryID, record.ID, record.UserID,
	)
	if err != nil {
		return fmt.Errorf("update record: %w", err)
	}
	return requireRow(res, domain.ErrRecordNotFound)
}

func (r *RecordRepository) Delete(ctx context.Context, userID, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM records WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return requireRow(res, domain.ErrRecordNotFound)
}

func scanRecord(rows *sql.Rows) (*domain.Record, error) {
	var rec domain.Record
	var cat domain.Category
	var cents int64
	var date string
	var kind int
	if err := rows.Scan(
		&rec.ID, &rec.Name, &cents, &date, &rec.Paid, &rec.CategoryID, &rec.UserID,
		&cat.ID, &cat.Name, &kind, &cat.UserID,
	); err != nil {
		return nil, fmt.Errorf("scan record: %w", err)
	}

	ts, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("parse record date: %w", err)
	}

	rec.Amount = amountFromCents(cents)
	rec.Date = ts
	cat.Kind = kindFromStored(kind)
	rec.Category = &cat
	return &rec, nil
}
