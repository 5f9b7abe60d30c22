package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/SscSPs/staycost/internal/apperrors"
	"github.com/SscSPs/staycost/internal/core/domain"
	portsrepo "github.com/SscSPs/staycost/internal/core/ports/repositories"
)

// AccommodationRepository keeps accommodations in insertion order for the life of the process.
type AccommodationRepository struct {
	mu      sync.RWMutex
	records []domain.Accommodation
}

// NewAccommodationRepository creates an empty in-memory repository.
func NewAccommodationRepository() *AccommodationRepository {
	return &AccommodationRepository{}
}

var _ portsrepo.AccommodationRepositoryFacade = (*AccommodationRepository)(nil)

// SaveAccommodation appends the record to the end of the collection.
func (r *AccommodationRepository) SaveAccommodation(_ context.Context, acc domain.Accommodation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(acc.ID) >= 0 {
		return fmt.Errorf("failed to save accommodation %s: %w", acc.ID, apperrors.ErrDuplicate)
	}
	r.records = append(r.records, acc)
	return nil
}

// DeleteAccommodation removes the record with the given id, keeping the order of the rest.
func (r *AccommodationRepository) DeleteAccommodation(_ context.Context, id domain.AccommodationID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}
	r.records = slices.Delete(r.records, i, i+1)
	return true, nil
}

// ListAccommodations returns a copy of all records in insertion order.
func (r *AccommodationRepository) ListAccommodations(_ context.Context) ([]domain.Accommodation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Accommodation, len(r.records))
	copy(out, r.records)
	return out, nil
}

// FindAccommodationByID retrieves a copy of a single record.
func (r *AccommodationRepository) FindAccommodationByID(_ context.Context, id domain.AccommodationID) (*domain.Accommodation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, apperrors.ErrNotFound
	}
	acc := r.records[i]
	return &acc, nil
}

// indexOf must be called with mu held.
func (r *AccommodationRepository) indexOf(id domain.AccommodationID) int {
	return slices.IndexFunc(r.records, func(a domain.Accommodation) bool { return a.ID == id })
}
