package domain

// CategoryKind classifies a category, and transitively its records, as money
// coming in or going out.
type CategoryKind string

const (
	KindIncome  CategoryKind = "income"
	KindExpense CategoryKind = "expense"
)

// Valid reports whether the kind is one of the two known values.
func (k CategoryKind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// KindFromWire maps the numeric wire encoding (1 = income, 0 = expense) used
// by the /category/type/:type filter.
func KindFromWire(v int) (CategoryKind, bool) {
	switch v {
	case 1:
		return KindIncome, true
	case 0:
		return KindExpense, true
	}
	return "", false
}

// Category is a user-defined income or expense label.
type Category struct {
	ID     int64        `json:"id"`
	Name   string       `json:"name"`
	Kind   CategoryKind `json:"kind"`
	UserID int64        `json:"-"`
}
