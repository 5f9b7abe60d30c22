package domain

import "strings"

// Currency is one of the two units a price can be recorded in.
type Currency string

const (
	EUR Currency = "EUR"
	THB Currency = "THB"
)

// SupportedCurrencies lists the accepted units in display order.
var SupportedCurrencies = []Currency{EUR, THB}

// Symbol returns the display symbol for the currency, or the code itself if unknown.
func (c Currency) Symbol() string {
	switch c {
	case EUR:
		return "€"
	case THB:
		return "฿"
	default:
		return string(c)
	}
}

// IsValid reports whether c is a supported currency.
func (c Currency) IsValid() bool {
	return c == EUR || c == THB
}

// CurrencyFromCode reads a currency code in any case, e.g. "thb".
// The result is not checked; use IsValid or request validation for that.
func CurrencyFromCode(code string) Currency {
	return Currency(strings.ToUpper(strings.TrimSpace(code)))
}
