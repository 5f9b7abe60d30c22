package cli

import (
	"errors"
	"fmt"

	"github.com/SscSPs/staycost/internal/apperrors"
	"github.com/SscSPs/staycost/internal/utils/rates"
	"github.com/spf13/cobra"
)

func tableCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the comparison table",
		Long: `Print the comparison table once. Entries passed with --add are appended after the
default entries, in the order given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			noSeed, _ := cmd.Flags().GetBool("no-seed")
			entries, _ := cmd.Flags().GetStringArray("add")

			ctx := cmd.Context()
			container, err := newSession(ctx, app, !noSeed)
			if err != nil {
				return err
			}

			for _, entry := range entries {
				req, err := ParseEntry(entry)
				if err != nil {
					return fmt.Errorf("--add %q: %w", entry, err)
				}
				if _, err := container.Ledger.Insert(ctx, req); err != nil {
					return fmt.Errorf("--add %q: %w", entry, err)
				}
			}

			report, err := container.Comparison.Compare(ctx)
			if err != nil {
				return err
			}
			return RenderTable(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().Bool("no-seed", false, "start from an empty ledger")
	cmd.Flags().StringArrayP("add", "a", nil, "add an entry: "+entryFormat)
	return cmd
}

func convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "convert PRICE CURRENCY DAYS",
		Short:   "Show daily, total and 28-day cost of one stay in both currencies",
		Example: "  staycost convert 67 EUR 9\n  staycost convert 1500 thb 1",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := parseConvertArgs(args).Normalized()
			if err := req.Validate(); err != nil {
				return err
			}
			b, err := rates.Compute(req.TotalPrice, req.Currency, req.TotalDays)
			if err != nil {
				return err
			}
			return RenderBreakdown(cmd.OutOrStdout(), req.TotalPrice, req.Currency, req.TotalDays, b)
		},
	}
}

func rateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rate",
		Short: "Print the exchange rate used for conversions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), rates.Label())
			return err
		},
	}
}

func shellCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive comparison session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			noSeed, _ := cmd.Flags().GetBool("no-seed")
			ctx := cmd.Context()
			container, err := newSession(ctx, app, !noSeed)
			if err != nil {
				return err
			}
			sh := NewShell(container, cmd.InOrStdin(), cmd.OutOrStdout(), app.Config.ConfirmDeletes)
			return sh.Run(ctx)
		},
	}
	cmd.Flags().Bool("no-seed", false, "start from an empty ledger")
	return cmd
}

// IsValidationError reports whether err came from rejected user input.
func IsValidationError(err error) bool {
	return errors.Is(err, apperrors.ErrValidation)
}
