package dto_test

import (
	"errors"
	"math"
	"testing"

	"github.com/SscSPs/staycost/internal/apperrors"
	"github.com/SscSPs/staycost/internal/core/domain"
	"github.com/SscSPs/staycost/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() dto.CreateAccommodationRequest {
	return dto.CreateAccommodationRequest{
		Name:       "Beach Hut",
		TotalPrice: 500,
		Currency:   domain.THB,
		TotalDays:  2,
		Notes:      "near the pier",
	}
}

func TestCreateAccommodationRequest_Validate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(r *dto.CreateAccommodationRequest)
		wantFields []string
	}{
		{name: "valid request", mutate: func(r *dto.CreateAccommodationRequest) {}},
		{name: "empty notes are fine", mutate: func(r *dto.CreateAccommodationRequest) { r.Notes = "" }},
		{name: "missing name", mutate: func(r *dto.CreateAccommodationRequest) { r.Name = "" }, wantFields: []string{"name"}},
		{name: "zero price", mutate: func(r *dto.CreateAccommodationRequest) { r.TotalPrice = 0 }, wantFields: []string{"totalPrice"}},
		{name: "negative price", mutate: func(r *dto.CreateAccommodationRequest) { r.TotalPrice = -5 }, wantFields: []string{"totalPrice"}},
		{name: "NaN price", mutate: func(r *dto.CreateAccommodationRequest) { r.TotalPrice = math.NaN() }, wantFields: []string{"totalPrice"}},
		{name: "infinite price", mutate: func(r *dto.CreateAccommodationRequest) { r.TotalPrice = math.Inf(1) }, wantFields: []string{"totalPrice"}},
		{name: "zero days", mutate: func(r *dto.CreateAccommodationRequest) { r.TotalDays = 0 }, wantFields: []string{"totalDays"}},
		{name: "negative days", mutate: func(r *dto.CreateAccommodationRequest) { r.TotalDays = -1 }, wantFields: []string{"totalDays"}},
		{name: "unsupported currency", mutate: func(r *dto.CreateAccommodationRequest) { r.Currency = "USD" }, wantFields: []string{"currency"}},
		{name: "missing currency", mutate: func(r *dto.CreateAccommodationRequest) { r.Currency = "" }, wantFields: []string{"currency"}},
		{
			name: "every field reported in order",
			mutate: func(r *dto.CreateAccommodationRequest) {
				r.Name, r.TotalPrice, r.Currency, r.TotalDays = "", 0, "GBP", 0
			},
			wantFields: []string{"name", "totalPrice", "currency", "totalDays"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := req.Validate()
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidation)

			var verr *apperrors.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantFields, verr.FieldNames())
			for _, f := range verr.Fields {
				assert.NotEmpty(t, f.Message)
			}
		})
	}
}

func TestCreateAccommodationRequest_ValidateMessages(t *testing.T) {
	req := validRequest()
	req.Name = ""
	req.TotalDays = 0

	var verr *apperrors.ValidationError
	require.ErrorAs(t, req.Validate(), &verr)
	assert.Equal(t, []apperrors.FieldError{
		{Field: "name", Message: "Property name is required"},
		{Field: "totalDays", Message: "Please enter valid number of days"},
	}, verr.Fields)
}

func TestCreateAccommodationRequest_Normalized(t *testing.T) {
	req := dto.CreateAccommodationRequest{
		Name:     "  Sea View  ",
		Currency: " eur ",
		Notes:    "\tquiet\n",
	}

	got := req.Normalized()

	assert.Equal(t, "Sea View", got.Name)
	assert.Equal(t, domain.EUR, got.Currency)
	assert.Equal(t, "quiet", got.Notes)
	assert.Equal(t, "  Sea View  ", req.Name, "original request is left untouched")
}

func TestCreateAccommodationRequest_WhitespaceNameFailsAfterNormalizing(t *testing.T) {
	req := validRequest()
	req.Name = "   "

	var verr *apperrors.ValidationError
	require.ErrorAs(t, req.Normalized().Validate(), &verr)
	assert.True(t, verr.HasField("name"))
}

func TestConvertRequest_Validate(t *testing.T) {
	tests := []struct {
		name       string
		req        dto.ConvertRequest
		wantFields []string
	}{
		{name: "valid", req: dto.ConvertRequest{TotalPrice: 67, Currency: domain.EUR, TotalDays: 9}},
		{name: "NaN price", req: dto.ConvertRequest{TotalPrice: math.NaN(), Currency: domain.EUR, TotalDays: 1}, wantFields: []string{"totalPrice"}},
		{name: "infinite price", req: dto.ConvertRequest{TotalPrice: math.Inf(1), Currency: domain.EUR, TotalDays: 1}, wantFields: []string{"totalPrice"}},
		{name: "negative infinite price", req: dto.ConvertRequest{TotalPrice: math.Inf(-1), Currency: domain.THB, TotalDays: 1}, wantFields: []string{"totalPrice"}},
		{name: "unsupported currency", req: dto.ConvertRequest{TotalPrice: 10, Currency: "USD", TotalDays: 1}, wantFields: []string{"currency"}},
		{name: "zero days", req: dto.ConvertRequest{TotalPrice: 10, Currency: domain.THB}, wantFields: []string{"totalDays"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			var verr *apperrors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Equal(t, tt.wantFields, verr.FieldNames())
		})
	}
}

func TestConvertRequest_SharesFieldMessages(t *testing.T) {
	create := validRequest()
	create.TotalPrice = math.NaN()
	conv := dto.ConvertRequest{TotalPrice: math.NaN(), Currency: domain.THB, TotalDays: 2}

	var createErr, convErr *apperrors.ValidationError
	require.ErrorAs(t, create.Validate(), &createErr)
	require.ErrorAs(t, conv.Validate(), &convErr)
	assert.Equal(t, createErr.Fields, convErr.Fields)
}
