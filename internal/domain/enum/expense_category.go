package enum

// ExpenseCategory represents the bucket a standalone expense falls into
type ExpenseCategory string

const (
	ExpenseGeneral ExpenseCategory = "general"
	ExpenseInsumos ExpenseCategory = "insumos"
)

// Valid reports whether the category is one of the known values
func (c ExpenseCategory) Valid() bool {
	return c == ExpenseGeneral || c == ExpenseInsumos
}

func (c ExpenseCategory) String() string {
	return string(c)
}
