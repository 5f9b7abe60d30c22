package rates

import (
	"fmt"
	"math"
	"strconv"

	"github.com/SscSPs/staycost/internal/apperrors"
	"github.com/SscSPs/staycost/internal/core/domain"
)

// ExchangeRate is the fixed number of THB per 1 EUR used for every conversion.
const ExchangeRate = 37.65

// StandardMonthDays is the stay length used to project a monthly cost.
const StandardMonthDays = 28

// Compute derives daily, total and 28-day figures in both currencies for one stay.
// No rounding is applied; totalDays must be at least 1.
func Compute(totalPrice float64, currency domain.Currency, totalDays int) (domain.RateBreakdown, error) {
	if totalDays < 1 {
		return domain.RateBreakdown{}, fmt.Errorf("%w: total days must be at least 1, got %d", apperrors.ErrPrecondition, totalDays)
	}

	var b domain.RateBreakdown
	days := float64(totalDays)

	switch currency {
	case domain.EUR:
		b.DailyRateEUR = totalPrice / days
		b.DailyRateTHB = b.DailyRateEUR * ExchangeRate
		b.TotalPriceEUR = totalPrice
		b.TotalPriceTHB = totalPrice * ExchangeRate
	case domain.THB:
		b.DailyRateTHB = totalPrice / days
		b.DailyRateEUR = b.DailyRateTHB / ExchangeRate
		b.TotalPriceTHB = totalPrice
		b.TotalPriceEUR = totalPrice / ExchangeRate
	default:
		return domain.RateBreakdown{}, fmt.Errorf("%w: unsupported currency %q", apperrors.ErrPrecondition, currency)
	}

	b.Total28DaysTHB = b.DailyRateTHB * StandardMonthDays
	b.Total28DaysEUR = b.DailyRateEUR * StandardMonthDays
	return b, nil
}

// ComputeFor is Compute applied to a stored record.
func ComputeFor(acc domain.Accommodation) (domain.RateBreakdown, error) {
	b, err := Compute(acc.TotalPrice, acc.Currency, acc.TotalDays)
	if err != nil {
		return domain.RateBreakdown{}, fmt.Errorf("cannot compute rates for accommodation %s: %w", acc.ID, err)
	}
	return b, nil
}

// SelectBest returns the id of the record with the lowest 28-day cost in EUR.
// Ties keep the earliest record. Records that fail Compute, or whose cost is not a
// finite number, never win. The second return value is false when there is no winner.
func SelectBest(records []domain.Accommodation) (domain.AccommodationID, bool) {
	var bestID domain.AccommodationID
	lowestCost := math.Inf(1)
	found := false

	for _, acc := range records {
		b, err := ComputeFor(acc)
		if err != nil {
			continue
		}
		if b.Total28DaysEUR < lowestCost {
			bestID = acc.ID
			lowestCost = b.Total28DaysEUR
			found = true
		}
	}

	return bestID, found
}

// Label renders the fixed rate for display, e.g. "1 EUR = 37.65 THB".
func Label() string {
	return "1 EUR = " + strconv.FormatFloat(ExchangeRate, 'f', -1, 64) + " THB"
}
