package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/staycost/internal/apperrors"
	"github.com/SscSPs/staycost/internal/core/domain"
	portsrepo "github.com/SscSPs/staycost/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/staycost/internal/core/ports/services"
	"github.com/SscSPs/staycost/internal/dto"
	"github.com/SscSPs/staycost/internal/utils/mapping"
	"github.com/google/uuid"
)

// LedgerService is the single authoritative collection of accommodations for a session.
type LedgerService struct {
	BaseService
	accommodationRepo portsrepo.AccommodationRepositoryFacade
	newID             func() (domain.AccommodationID, error)
	now               func() time.Time
}

// LedgerOption is a functional option for configuring the ledger service
type LedgerOption func(*LedgerService)

// WithIDGenerator replaces the UUIDv7 id source.
func WithIDGenerator(fn func() (domain.AccommodationID, error)) LedgerOption {
	return func(s *LedgerService) {
		s.newID = fn
	}
}

// WithClock replaces time.Now for CreatedAt stamps.
func WithClock(fn func() time.Time) LedgerOption {
	return func(s *LedgerService) {
		s.now = fn
	}
}

// NewLedgerService creates a ledger over the given repository.
func NewLedgerService(repo portsrepo.AccommodationRepositoryFacade, options ...LedgerOption) *LedgerService {
	svc := &LedgerService{
		accommodationRepo: repo,
		newID:             newAccommodationID,
		now:               time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LedgerSvcFacade = (*LedgerService)(nil)

// newAccommodationID returns a time-ordered UUIDv7; the uuid package keeps them
// monotonic within the process.
func newAccommodationID() (domain.AccommodationID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return domain.AccommodationID(id.String()), nil
}

// Insert trims and validates the request, then appends a new record.
// Validation failures are returned as *apperrors.ValidationError and leave the ledger unchanged.
func (s *LedgerService) Insert(ctx context.Context, req dto.CreateAccommodationRequest) (domain.AccommodationID, error) {
	req = req.Normalized()
	if err := req.Validate(); err != nil {
		s.LogDebug(ctx, "Accommodation rejected by validation", slog.String("error", err.Error()))
		return "", err
	}

	id, err := s.newID()
	if err != nil {
		s.LogError(ctx, err, "Failed to generate accommodation id")
		return "", fmt.Errorf("failed to generate accommodation id: %w", err)
	}

	acc := mapping.ToDomainAccommodation(id, req)
	acc.CreatedAt = s.now()

	if err := s.accommodationRepo.SaveAccommodation(ctx, acc); err != nil {
		s.LogError(ctx, err, "Failed to save accommodation", slog.String("accommodation_id", string(id)))
		return "", fmt.Errorf("failed to insert accommodation: %w", err)
	}

	s.LogInfo(ctx, "Accommodation added",
		slog.String("accommodation_id", string(id)),
		slog.String("name", acc.Name),
		slog.String("currency", string(acc.Currency)))
	return id, nil
}

// Delete removes the record with the given id. An unknown id is a normal outcome and returns false.
// A repository failure is logged and also reported as false, so callers cannot tell it apart
// from an unknown id; the in-memory repository never fails a delete.
func (s *LedgerService) Delete(ctx context.Context, id domain.AccommodationID) bool {
	removed, err := s.accommodationRepo.DeleteAccommodation(ctx, id)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete accommodation", slog.String("accommodation_id", string(id)))
		return false
	}
	if removed {
		s.LogInfo(ctx, "Accommodation deleted", slog.String("accommodation_id", string(id)))
	} else {
		s.LogDebug(ctx, "Delete of unknown accommodation ignored", slog.String("accommodation_id", string(id)))
	}
	return removed
}

// Enumerate returns a copy of the current records in insertion order.
func (s *LedgerService) Enumerate(ctx context.Context) []domain.Accommodation {
	records, err := s.accommodationRepo.ListAccommodations(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accommodations")
		return []domain.Accommodation{}
	}
	if records == nil {
		return []domain.Accommodation{}
	}
	return records
}

// Find looks up one record by id. An unknown id returns false.
func (s *LedgerService) Find(ctx context.Context, id domain.AccommodationID) (domain.Accommodation, bool) {
	acc, err := s.accommodationRepo.FindAccommodationByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find accommodation", slog.String("accommodation_id", string(id)))
		}
		return domain.Accommodation{}, false
	}
	return *acc, true
}

// Seed inserts the default comparison entries.
func (s *LedgerService) Seed(ctx context.Context) error {
	for _, req := range SeedAccommodations() {
		if _, err := s.Insert(ctx, req); err != nil {
			return fmt.Errorf("failed to seed %q: %w", req.Name, err)
		}
	}
	return nil
}

// SeedAccommodations returns the entries a new session starts with.
func SeedAccommodations() []dto.CreateAccommodationRequest {
	return []dto.CreateAccommodationRequest{
		{
			Name:       "Current Place",
			TotalPrice: 67,
			Currency:   domain.EUR,
			TotalDays:  9,
			Notes:      "Current accommodation",
		},
		{
			Name:       "Kho Tao Heights",
			TotalPrice: 1500,
			Currency:   domain.THB,
			TotalDays:  1,
			Notes:      "Daily rate option",
		},
	}
}
