// Package money formats decimal amounts for display.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var usPrinter = message.NewPrinter(language.AmericanEnglish)

// USD renders amount as US dollars with a leading symbol, thousands
// separators and two decimals, e.g. "$1,234.50". The amount is rounded half
// away from zero to whole cents and is never converted to a float.
func USD(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}

	fixed := rounded.StringFixed(2)
	cents := fixed[len(fixed)-2:]

	whole := rounded.Truncate(0).BigInt()
	if !whole.IsInt64() {
		// Beyond int64 dollars the grouping is dropped, the digits are not.
		return sign + "$" + fixed
	}
	return sign + "$" + usPrinter.Sprint(number.Decimal(whole.Int64())) + "." + cents
}
