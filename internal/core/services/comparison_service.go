package services

import (
	"context"
	"log/slog"

	portssvc "github.com/SscSPs/staycost/internal/core/ports/services"
	"github.com/SscSPs/staycost/internal/dto"
	"github.com/SscSPs/staycost/internal/utils/mapping"
	"github.com/SscSPs/staycost/internal/utils/rates"
)

// ComparisonService turns the ledger into a comparison table.
type ComparisonService struct {
	BaseService
	ledger portssvc.LedgerReaderSvc
}

// NewComparisonService creates a new ComparisonService.
func NewComparisonService(ledger portssvc.LedgerReaderSvc) *ComparisonService {
	return &ComparisonService{ledger: ledger}
}

var _ portssvc.ComparisonSvc = (*ComparisonService)(nil)

// Compare recomputes every breakdown and the best value from the current ledger contents.
func (s *ComparisonService) Compare(ctx context.Context) (*dto.ComparisonReport, error) {
	records := s.ledger.Enumerate(ctx)
	bestID, hasBest := rates.SelectBest(records)

	rows := make([]dto.ComparisonRow, 0, len(records))
	for _, acc := range records {
		b, err := rates.ComputeFor(acc)
		if err != nil {
			s.LogError(ctx, err, "Failed to compute rates", slog.String("accommodation_id", string(acc.ID)))
			return nil, err
		}
		rows = append(rows, mapping.ToComparisonRow(acc, b, hasBest && acc.ID == bestID))
	}

	report := &dto.ComparisonReport{
		ExchangeRateLabel: rates.Label(),
		Rows:              rows,
		HasBestValue:      hasBest,
	}
	if hasBest {
		report.BestValueID = bestID
	}

	s.LogDebug(ctx, "Comparison built", slog.Int("rows", len(rows)), slog.Bool("has_best", hasBest))
	return report, nil
}
