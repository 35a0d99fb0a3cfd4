// Package currency converts the server's USD totals for display only.
// Converted values are never sent back to the server.
package currency

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// USDToINR is a static display rate.
const USDToINR = 83.0

var (
	enUS = message.NewPrinter(language.AmericanEnglish)
	enIN = message.NewPrinter(language.MustParse("en-IN"))
)

// FormatUSD renders with two fraction digits and en-US grouping: $1,234.50.
func FormatUSD(v float64) string {
	return enUS.Sprintf("$%v", number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

func ToINR(usd float64) float64 { return usd * USDToINR }

// FormatINR converts and renders with no fraction digits and Indian digit
// grouping: ₹1,02,505.
func FormatINR(usd float64) string {
	return enIN.Sprintf("₹%v", number.Decimal(math.Round(ToINR(usd)), number.MaxFractionDigits(0)))
}
