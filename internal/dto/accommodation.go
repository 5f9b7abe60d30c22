package dto

import (
	"strings"

	"github.com/SscSPs/staycost/internal/core/domain"
)

// CreateAccommodationRequest defines the data needed to record a new accommodation.
type CreateAccommodationRequest struct {
	Name       string          `json:"name" validate:"required"`
	TotalPrice float64         `json:"totalPrice" validate:"gt=0,finite"`
	Currency   domain.Currency `json:"currency" validate:"required,oneof=EUR THB"`
	TotalDays  int             `json:"totalDays" validate:"gte=1"`
	Notes      string          `json:"notes"`
}

// Normalized returns a copy with surrounding whitespace removed from the text fields
// and the currency code upper-cased.
func (r CreateAccommodationRequest) Normalized() CreateAccommodationRequest {
	r.Name = strings.TrimSpace(r.Name)
	r.Notes = strings.TrimSpace(r.Notes)
	r.Currency = domain.CurrencyFromCode(string(r.Currency))
	return r
}

// ConvertRequest is a one-off price conversion: a stay that is priced but not recorded.
// Its fields carry the same rules as CreateAccommodationRequest.
type ConvertRequest struct {
	TotalPrice float64         `json:"totalPrice" validate:"gt=0,finite"`
	Currency   domain.Currency `json:"currency" validate:"required,oneof=EUR THB"`
	TotalDays  int             `json:"totalDays" validate:"gte=1"`
}

// Normalized returns a copy with the currency code upper-cased.
func (r ConvertRequest) Normalized() ConvertRequest {
	r.Currency = domain.CurrencyFromCode(string(r.Currency))
	return r
}
