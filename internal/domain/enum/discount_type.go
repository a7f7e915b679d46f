package enum

// DiscountType represents how a line item discount is expressed
type DiscountType string

const (
	DiscountAmount  DiscountType = "amount"
	DiscountPercent DiscountType = "percent"
)

// Valid reports whether the discount type is one of the known values
func (t DiscountType) Valid() bool {
	return t == DiscountAmount || t == DiscountPercent
}

func (t DiscountType) String() string {
	return string(t)
}
