// Package money formats Chilean peso amounts for reports and documents.
package money

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Spanish)

// CLP renders an amount as an integer-rounded localized peso string,
// e.g. 1234567.4 -> "$ 1.234.567".
func CLP(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	return printer.Sprintf("$ %d", int64(math.Round(amount)))
}
