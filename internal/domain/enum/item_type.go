package enum

// ItemType represents the kind of a work order line item
type ItemType string

const (
	ItemPart    ItemType = "part"
	ItemLabor   ItemType = "labor"
	ItemExpense ItemType = "expense"
)

// Valid reports whether the item type is one of the known values
func (t ItemType) Valid() bool {
	switch t {
	case ItemPart, ItemLabor, ItemExpense:
		return true
	}
	return false
}

// Billable reports whether the item is a client-facing sale line.
// Expense items are internal outlays and never enter the sale total.
func (t ItemType) Billable() bool {
	return t == ItemPart || t == ItemLabor
}

func (t ItemType) String() string {
	return string(t)
}
