package utils

import (
	"math"

	"github.com/SscSPs/staycost/internal/core/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DisplayPrecision returns the number of decimals an amount is shown with.
// THB is shown in whole baht, EUR in cents.
func DisplayPrecision(currency domain.Currency) int {
	if currency == domain.THB {
		return 0
	}
	return 2
}

// FormatCurrency formats an amount for display with the currency symbol and US digit grouping.
// Example: 1234.5 THB returns "฿1,235"
// Example: 1234.5 EUR returns "€1,234.50"
func FormatCurrency(amount float64, currency domain.Currency) string {
	symbol := currency.Symbol()
	switch {
	case math.IsNaN(amount):
		return symbol + "NaN"
	case math.IsInf(amount, 1):
		return symbol + "∞"
	case math.IsInf(amount, -1):
		return symbol + "-∞"
	}

	prec := DisplayPrecision(currency)
	rounded := RoundForDisplay(amount, currency)

	// The value already has at most prec decimals, so the printer only groups and pads.
	p := message.NewPrinter(language.AmericanEnglish)
	return symbol + p.Sprint(number.Decimal(rounded.InexactFloat64(), number.Scale(prec)))
}

// RoundForDisplay rounds an amount to the currency's display precision, half away from zero.
func RoundForDisplay(amount float64, currency domain.Currency) decimal.Decimal {
	return decimal.NewFromFloat(amount).Round(int32(DisplayPrecision(currency)))
}
