package repositories

import (
	"context"

	"github.com/SscSPs/staycost/internal/core/domain"
)

// AccommodationReader defines read operations for accommodation data
type AccommodationReader interface {
	// ListAccommodations returns every stored record in insertion order.
	// The returned slice is owned by the caller.
	ListAccommodations(ctx context.Context) ([]domain.Accommodation, error)

	// FindAccommodationByID returns apperrors.ErrNotFound if the id is unknown.
	FindAccommodationByID(ctx context.Context, id domain.AccommodationID) (*domain.Accommodation, error)
}

// AccommodationWriter defines write operations for accommodation data
type AccommodationWriter interface {
	// SaveAccommodation appends a new record. It returns apperrors.ErrDuplicate if the id is taken.
	SaveAccommodation(ctx context.Context, acc domain.Accommodation) error

	// DeleteAccommodation removes a record and reports whether it existed.
	DeleteAccommodation(ctx context.Context, id domain.AccommodationID) (bool, error)
}

// AccommodationRepositoryFacade combines all accommodation-related repository interfaces
type AccommodationRepositoryFacade interface {
	AccommodationReader
	AccommodationWriter
}
