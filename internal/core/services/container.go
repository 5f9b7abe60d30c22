package services

import (
	portsrepo "github.com/SscSPs/staycost/internal/core/ports/repositories"
)

// Container holds all the services of one session and manages their dependencies
type Container struct {
	Ledger     *LedgerService
	Comparison *ComparisonService
}

// NewContainer creates a new service container with properly initialized dependencies
func NewContainer(repos *portsrepo.RepositoryProvider, options ...LedgerOption) *Container {
	ledger := NewLedgerService(repos.AccommodationRepo, options...)
	return &Container{
		Ledger:     ledger,
		Comparison: NewComparisonService(ledger),
	}
}
