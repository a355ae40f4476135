package sqlite

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack/finance-api/internal/core/domain"
)

// newTestDB opens a fresh in-memory database with the schema applied.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Connect(":memory:")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func seedUser(t *testing.T, db *sql.DB, username string) *domain.User {
	t.Helper()
	user, err := NewUserRepository(db).Create(context.Background(), &domain.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	})
	if err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return user
}

func seedCategory(t *testing.T, db *sql.DB, userID int64, name string, kind domain.CategoryKind) *domain.Category {
	t.Helper()
	category, err := NewCategoryRepository(db).Create(context.Background(), &domain.Category{
		Name:   name,
		Kind:   kind,
		UserID: userID,
	})
	if err != nil {
		t.Fatalf("seed category %s: %v", name, err)
	}
	return category
}

func seedRecord(t *testing.T, db *sql.DB, userID, categoryID int64, name, amount, date string) *domain.Record {
	t.Helper()
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("parse date %s: %v", date, err)
	}
	record, err := NewRecordRepository(db).Create(context.Background(), &domain.Record{
		Name:       name,
		Amount:     decimal.RequireFromString(amount),
		Date:       day,
		Paid:       true,
		CategoryID: categoryID,
		UserID:     userID,
	})
	if err != nil {
		t.Fatalf("seed record %s: %v", name, err)
	}
	return record
}
