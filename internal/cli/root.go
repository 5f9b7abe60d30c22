package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/SscSPs/staycost/internal/adapters/memory"
	portsrepo "github.com/SscSPs/staycost/internal/core/ports/repositories"
	"github.com/SscSPs/staycost/internal/core/services"
	"github.com/SscSPs/staycost/internal/middleware"
	"github.com/SscSPs/staycost/internal/platform/config"
	"github.com/spf13/cobra"
)

// App is what every command needs: configuration, a logger and the terminal streams.
type App struct {
	Config *config.Config
	Logger *slog.Logger
	In     io.Reader
	Out    io.Writer
}

// NewRootCmd builds the staycost command tree.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "staycost",
		Short: "compare accommodation costs in EUR and THB",
		Long: `staycost records candidate accommodations and compares them by daily rate and
projected 28-day cost in both euros and Thai baht, highlighting the best value.`,
		SilenceUsage:      true,
		PersistentPreRun:  middleware.CommandLogging(app.Logger),
		PersistentPostRun: middleware.LogCommandCompletion,
	}
	root.SetIn(app.In)
	root.SetOut(app.Out)

	root.AddCommand(tableCmd(app))
	root.AddCommand(convertCmd())
	root.AddCommand(rateCmd())
	root.AddCommand(shellCmd(app))
	return root
}

// newSession creates a fresh ledger, seeded when configured to.
func newSession(ctx context.Context, app *App, seed bool) (*services.Container, error) {
	container := services.NewContainer(&portsrepo.RepositoryProvider{
		AccommodationRepo: memory.NewAccommodationRepository(),
	})
	if seed && app.Config.SeedLedger {
		if err := container.Ledger.Seed(ctx); err != nil {
			return nil, err
		}
	}
	return container, nil
}
