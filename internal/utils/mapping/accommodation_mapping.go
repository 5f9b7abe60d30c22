package mapping

import (
	"fmt"

	"github.com/SscSPs/staycost/internal/core/domain"
	"github.com/SscSPs/staycost/internal/dto"
	"github.com/SscSPs/staycost/internal/utils"
)

// DurationLabel renders a stay length, e.g. "1 day" or "9 days".
func DurationLabel(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

// ToComparisonRow converts an accommodation and its breakdown to a display row
func ToComparisonRow(acc domain.Accommodation, b domain.RateBreakdown, isBest bool) dto.ComparisonRow {
	notes := acc.Notes
	if notes == "" {
		notes = dto.EmptyNotesPlaceholder
	}
	return dto.ComparisonRow{
		ID:            acc.ID,
		Name:          acc.Name,
		Duration:      DurationLabel(acc.TotalDays),
		DailyRateTHB:  utils.FormatCurrency(b.DailyRateTHB, domain.THB),
		DailyRateEUR:  utils.FormatCurrency(b.DailyRateEUR, domain.EUR),
		TotalTHB:      utils.FormatCurrency(b.TotalPriceTHB, domain.THB),
		TotalEUR:      utils.FormatCurrency(b.TotalPriceEUR, domain.EUR),
		Total28DayTHB: utils.FormatCurrency(b.Total28DaysTHB, domain.THB),
		Total28DayEUR: utils.FormatCurrency(b.Total28DaysEUR, domain.EUR),
		Notes:         notes,
		IsBestValue:   isBest,
		Breakdown:     b,
	}
}

// ToDomainAccommodation builds the record to store from a validated request
func ToDomainAccommodation(id domain.AccommodationID, req dto.CreateAccommodationRequest) domain.Accommodation {
	return domain.Accommodation{
		ID:         id,
		Name:       req.Name,
		TotalPrice: req.TotalPrice,
		Currency:   req.Currency,
		TotalDays:  req.TotalDays,
		Notes:      req.Notes,
	}
}
