package enum

// OrderKind distinguishes regular work orders from warranty follow-ups
type OrderKind string

const (
	OrderKindNormal   OrderKind = "normal"
	OrderKindWarranty OrderKind = "warranty"
)

// Valid reports whether the kind is one of the known values
func (k OrderKind) Valid() bool {
	return k == OrderKindNormal || k == OrderKindWarranty
}

func (k OrderKind) String() string {
	return string(k)
}
