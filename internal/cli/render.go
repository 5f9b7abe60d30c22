package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/SscSPs/staycost/internal/core/domain"
	"github.com/SscSPs/staycost/internal/dto"
	"github.com/SscSPs/staycost/internal/utils"
	"github.com/SscSPs/staycost/internal/utils/mapping"
	"github.com/SscSPs/staycost/internal/utils/rates"
)

const (
	bestMarker   = "★"
	emptyMessage = "No accommodations added yet. Use add to record your first option."
)

var tableHeader = []string{
	"#", "Property", "Stay", "Daily (฿)", "Daily (€)", "Total (฿)", "Total (€)", "28-Day (฿)", "28-Day (€)", "Notes",
}

// RenderTable writes the comparison table followed by the best-value line.
func RenderTable(w io.Writer, report *dto.ComparisonReport) error {
	if _, err := fmt.Fprintf(w, "Comparison results (%s)\n", report.ExchangeRateLabel); err != nil {
		return err
	}
	if len(report.Rows) == 0 {
		_, err := fmt.Fprintln(w, emptyMessage)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	cw := &cellWriter{w: tw}
	cw.row(tableHeader...)
	for i, row := range report.Rows {
		num := strconv.Itoa(i + 1)
		if row.IsBestValue {
			num += " " + bestMarker
		}
		cw.row(
			num, row.Name, row.Duration,
			row.DailyRateTHB+"/day", row.DailyRateEUR+"/day",
			row.TotalTHB, row.TotalEUR,
			row.Total28DayTHB, row.Total28DayEUR,
			row.Notes,
		)
	}
	if err := cw.flush(tw); err != nil {
		return err
	}

	if best, ok := report.BestRow(); ok {
		_, err := fmt.Fprintf(w, "%s Best value: %s at %s (%s) per %d days\n",
			bestMarker, best.Name, best.Total28DayEUR, best.Total28DayTHB, rates.StandardMonthDays)
		return err
	}
	return nil
}

// RenderBreakdown writes a single stay's figures in both currencies.
func RenderBreakdown(w io.Writer, price float64, currency domain.Currency, days int, b domain.RateBreakdown) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	cw := &cellWriter{w: tw}
	cw.row("Input:", utils.FormatCurrency(price, currency)+" for "+mapping.DurationLabel(days))
	cw.row("Exchange rate:", rates.Label())
	cw.row("", "THB", "EUR")
	cw.row("Daily rate", utils.FormatCurrency(b.DailyRateTHB, domain.THB), utils.FormatCurrency(b.DailyRateEUR, domain.EUR))
	cw.row("Total", utils.FormatCurrency(b.TotalPriceTHB, domain.THB), utils.FormatCurrency(b.TotalPriceEUR, domain.EUR))
	cw.row(
		fmt.Sprintf("%d-day total", rates.StandardMonthDays),
		utils.FormatCurrency(b.Total28DaysTHB, domain.THB),
		utils.FormatCurrency(b.Total28DaysEUR, domain.EUR),
	)
	return cw.flush(tw)
}

// cellWriter writes tab-separated rows and keeps the first write error.
// Later rows are skipped once a write has failed.
type cellWriter struct {
	w   io.Writer
	err error
}

func (cw *cellWriter) row(cells ...string) {
	if cw.err != nil {
		return
	}
	_, cw.err = io.WriteString(cw.w, strings.Join(cells, "\t")+"\n")
}

func (cw *cellWriter) flush(tw *tabwriter.Writer) error {
	if cw.err != nil {
		return cw.err
	}
	return tw.Flush()
}
