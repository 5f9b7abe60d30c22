package dto

import (
	"github.com/SscSPs/staycost/internal/core/domain"
)

// EmptyNotesPlaceholder is shown in place of notes that were left blank.
const EmptyNotesPlaceholder = "—"

// ComparisonRow is one accommodation with its breakdown, ready for display.
type ComparisonRow struct {
	ID            domain.AccommodationID `json:"id"`
	Name          string                 `json:"name"`
	Duration      string                 `json:"duration"`
	DailyRateTHB  string                 `json:"dailyRateTHB"`
	DailyRateEUR  string                 `json:"dailyRateEUR"`
	TotalTHB      string                 `json:"totalTHB"`
	TotalEUR      string                 `json:"totalEUR"`
	Total28DayTHB string                 `json:"total28DayTHB"`
	Total28DayEUR string                 `json:"total28DayEUR"`
	Notes         string                 `json:"notes"`
	IsBestValue   bool                   `json:"isBestValue"`

	Breakdown domain.RateBreakdown `json:"breakdown"` // unrounded figures behind the strings
}

// ComparisonReport is the full comparison table for a ledger.
type ComparisonReport struct {
	ExchangeRateLabel string                 `json:"exchangeRateLabel"` // e.g. "1 EUR = 37.65 THB"
	Rows              []ComparisonRow        `json:"rows"`
	BestValueID       domain.AccommodationID `json:"bestValueID,omitempty"`
	HasBestValue      bool                   `json:"hasBestValue"`
}

// BestRow returns the row flagged as best value, if any.
func (r *ComparisonReport) BestRow() (ComparisonRow, bool) {
	for _, row := range r.Rows {
		if row.IsBestValue {
			return row, true
		}
	}
	return ComparisonRow{}, false
}
