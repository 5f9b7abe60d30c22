package services

import (
	"context"

	"github.com/SscSPs/staycost/internal/core/domain"
	"github.com/SscSPs/staycost/internal/dto"
)

// LedgerReaderSvc defines read operations on the accommodation ledger
type LedgerReaderSvc interface {
	// Enumerate returns the current records in insertion order.
	Enumerate(ctx context.Context) []domain.Accommodation

	// Find returns the record with the given id and whether it exists.
	Find(ctx context.Context, id domain.AccommodationID) (domain.Accommodation, bool)
}

// LedgerWriterSvc defines the two mutations of the accommodation ledger
type LedgerWriterSvc interface {
	// Insert validates the request and appends a new record, returning its id.
	Insert(ctx context.Context, req dto.CreateAccommodationRequest) (domain.AccommodationID, error)

	// Delete removes the record with the given id and reports whether it existed.
	Delete(ctx context.Context, id domain.AccommodationID) bool
}

// LedgerSvcFacade combines all ledger service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}

// ComparisonSvc builds the comparison table over the ledger
type ComparisonSvc interface {
	Compare(ctx context.Context) (*dto.ComparisonReport, error)
}
