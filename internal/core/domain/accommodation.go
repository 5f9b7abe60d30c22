package domain

import "time"

// AccommodationID identifies one record in a ledger for the lifetime of the process.
type AccommodationID string

// Accommodation is a candidate place to stay. Records are immutable once stored.
type Accommodation struct {
	ID         AccommodationID `json:"id"`
	Name       string          `json:"name"`
	TotalPrice float64         `json:"totalPrice"` // price for the whole stay, in Currency
	Currency   Currency        `json:"currency"`
	TotalDays  int             `json:"totalDays"`
	Notes      string          `json:"notes"` // Optional
	CreatedAt  time.Time       `json:"createdAt"`
}

// RateBreakdown is the normalized view of one accommodation in both currencies.
// It is derived on demand and never stored.
type RateBreakdown struct {
	DailyRateEUR   float64 `json:"dailyRateEUR"`
	DailyRateTHB   float64 `json:"dailyRateTHB"`
	TotalPriceEUR  float64 `json:"totalPriceEUR"`
	TotalPriceTHB  float64 `json:"totalPriceTHB"`
	Total28DaysEUR float64 `json:"total28DaysEUR"`
	Total28DaysTHB float64 `json:"total28DaysTHB"`
}
