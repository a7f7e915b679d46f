package enum

// DocumentType represents the Chilean fiscal document backing a sale or purchase
type DocumentType string

const (
	DocumentCotizacion DocumentType = "cotizacion"
	DocumentBoleta     DocumentType = "boleta"
	DocumentFactura    DocumentType = "factura"
)

// Valid reports whether the document type is one of the known values
func (d DocumentType) Valid() bool {
	switch d {
	case DocumentCotizacion, DocumentBoleta, DocumentFactura:
		return true
	}
	return false
}

// Declarable reports whether the document carries a fiscal declaration
// obligation. Only boletas and facturas do; a cotización never enters the F29.
func (d DocumentType) Declarable() bool {
	return d == DocumentBoleta || d == DocumentFactura
}

func (d DocumentType) String() string {
	return string(d)
}
