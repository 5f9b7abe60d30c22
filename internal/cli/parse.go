package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/staycost/internal/core/domain"
	"github.com/SscSPs/staycost/internal/dto"
)

const entryFormat = "name|price|EUR or THB|days[|notes]"

// ParseEntry splits a pipe-separated entry into a create request.
// Numbers that do not parse are left at zero so validation reports them per field.
func ParseEntry(entry string) (dto.CreateAccommodationRequest, error) {
	parts := strings.Split(entry, "|")
	if len(parts) < 4 || len(parts) > 5 {
		return dto.CreateAccommodationRequest{}, fmt.Errorf("expected %s, got %d field(s)", entryFormat, len(parts))
	}

	req := dto.CreateAccommodationRequest{
		Name:       parts[0],
		TotalPrice: parsePrice(parts[1]),
		Currency:   domain.CurrencyFromCode(parts[2]),
		TotalDays:  parseDays(parts[3]),
	}
	if len(parts) == 5 {
		req.Notes = parts[4]
	}
	return req, nil
}

// parseConvertArgs reads PRICE CURRENCY DAYS for the convert command.
// Like ParseEntry it leaves checking to the request's Validate.
func parseConvertArgs(args []string) dto.ConvertRequest {
	return dto.ConvertRequest{
		TotalPrice: parsePrice(args[0]),
		Currency:   domain.CurrencyFromCode(args[1]),
		TotalDays:  parseDays(args[2]),
	}
}

func parsePrice(s string) float64 {
	price, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return price
}

func parseDays(s string) int {
	days, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return days
}
