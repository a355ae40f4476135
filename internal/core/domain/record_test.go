package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidAmount(t *testing.T) {
	valid := []string{"0.01", "1", "10.5", "99999999.99"}
	for _, s := range valid {
		if !ValidAmount(decimal.RequireFromString(s)) {
			t.Errorf("ValidAmount(%s) = false, want true", s)
		}
	}

	invalid := []string{"0", "-5.00", "10.123", "100000000", "100000000.00"}
	for _, s := range invalid {
		if ValidAmount(decimal.RequireFromString(s)) {
			t.Errorf("ValidAmount(%s) = true, want false", s)
		}
	}
}

func TestKindFromWire(t *testing.T) {
	if kind, ok := KindFromWire(1); !ok || kind != KindIncome {
		t.Fatalf("KindFromWire(1) = %q, %v", kind, ok)
	}
	if kind, ok := KindFromWire(0); !ok || kind != KindExpense {
		t.Fatalf("KindFromWire(0) = %q, %v", kind, ok)
	}
	for _, v := range []int{2, -1, 10} {
		if _, ok := KindFromWire(v); ok {
			t.Errorf("KindFromWire(%d) should fail", v)
		}
	}
}

func TestCategoryKindValid(t *testing.T) {
	if !KindIncome.Valid() || !KindExpense.Valid() {
		t.Fatalf("known kinds should be valid")
	}
	if CategoryKind("savings").Valid() {
		t.Fatalf("unknown kind should be invalid")
	}
}
