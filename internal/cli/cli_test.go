package cli_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/SscSPs/staycost/internal/adapters/memory"
	"github.com/SscSPs/staycost/internal/apperrors"
	"github.com/SscSPs/staycost/internal/cli"
	"github.com/SscSPs/staycost/internal/core/domain"
	portsrepo "github.com/SscSPs/staycost/internal/core/ports/repositories"
	"github.com/SscSPs/staycost/internal/core/services"
	"github.com/SscSPs/staycost/internal/platform/config"
	"github.com/SscSPs/staycost/internal/utils/rates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(in string) (*cli.App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &cli.App{
		Config: &config.Config{
			LogLevel:       slog.LevelWarn,
			LogFormat:      "text",
			SeedLedger:     true,
			ConfirmDeletes: true,
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		In:     strings.NewReader(in),
		Out:    out,
	}, out
}

func run(t *testing.T, app *cli.App, args ...string) error {
	t.Helper()
	root := cli.NewRootCmd(app)
	root.SetArgs(args)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func TestRateCommand(t *testing.T) {
	app, out := testApp("")
	require.NoError(t, run(t, app, "rate"))
	assert.Equal(t, "1 EUR = 37.65 THB\n", out.String())
}

func TestConvertCommand(t *testing.T) {
	app, out := testApp("")
	require.NoError(t, run(t, app, "convert", "67", "eur", "9"))

	text := out.String()
	assert.Contains(t, text, "€67.00 for 9 days")
	assert.Contains(t, text, "1 EUR = 37.65 THB")
	assert.Contains(t, text, "฿280")
	assert.Contains(t, text, "€7.44")
	assert.Contains(t, text, "฿2,523")
	assert.Contains(t, text, "28-day total")
	assert.Contains(t, text, "฿7,848")
	assert.Contains(t, text, "€208.44")
}

func TestConvertCommand_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "zero price", args: []string{"convert", "0", "EUR", "9"}},
		{name: "bad price", args: []string{"convert", "abc", "EUR", "9"}},
		{name: "bad currency", args: []string{"convert", "10", "USD", "9"}},
		{name: "zero days", args: []string{"convert", "10", "THB", "0"}},
		{name: "fractional days", args: []string{"convert", "10", "THB", "1.5"}},
		{name: "NaN price", args: []string{"convert", "NaN", "EUR", "1"}},
		{name: "infinite price", args: []string{"convert", "Inf", "EUR", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := testApp("")
			err := run(t, app, tt.args...)
			require.Error(t, err)
			assert.True(t, cli.IsValidationError(err))
		})
	}
}

func TestConvertCommand_NonFinitePriceReportsField(t *testing.T) {
	app, out := testApp("")
	err := run(t, app, "convert", "NaN", "EUR", "1")

	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"totalPrice"}, verr.FieldNames())
	assert.Contains(t, err.Error(), "Please enter a valid price")
	assert.Empty(t, out.String(), "nothing is computed for a rejected price")
}

func TestTableCommand_Seeded(t *testing.T) {
	app, out := testApp("")
	require.NoError(t, run(t, app, "table"))

	text := out.String()
	assert.Contains(t, text, "Comparison results (1 EUR = 37.65 THB)")
	assert.Contains(t, text, "Current Place")
	assert.Contains(t, text, "Kho Tao Heights")
	assert.Contains(t, text, "1 ★")
	assert.Contains(t, text, "€1,115.54")
	assert.Contains(t, text, "★ Best value: Current Place at €208.44 (฿7,848) per 28 days")
}

func TestTableCommand_NoSeed(t *testing.T) {
	app, out := testApp("")
	require.NoError(t, run(t, app, "table", "--no-seed"))
	assert.Contains(t, out.String(), "No accommodations added yet.")
	assert.NotContains(t, out.String(), "Best value")
}

func TestTableCommand_SeedDisabledByConfig(t *testing.T) {
	app, out := testApp("")
	app.Config.SeedLedger = false
	require.NoError(t, run(t, app, "table"))
	assert.Contains(t, out.String(), "No accommodations added yet.")
}

func TestTableCommand_Add(t *testing.T) {
	app, out := testApp("")
	require.NoError(t, run(t, app, "table", "--add", "Beach Hut|500|thb|2|near the pier"))

	text := out.String()
	assert.Contains(t, text, "Beach Hut")
	assert.Contains(t, text, "near the pier")
	assert.Contains(t, text, "★ Best value: Beach Hut at €185.92")
}

func TestTableCommand_AddInvalid(t *testing.T) {
	app, _ := testApp("")
	err := run(t, app, "table", "--add", "|100|EUR|5")
	require.Error(t, err)
	assert.True(t, cli.IsValidationError(err))
	assert.Contains(t, err.Error(), "name")

	app, _ = testApp("")
	err = run(t, app, "table", "--add", "only-a-name")
	require.Error(t, err)
	assert.False(t, cli.IsValidationError(err))
}

func TestParseEntry(t *testing.T) {
	req, err := cli.ParseEntry(" Sea View |1,000|eur| 3 |quiet")
	require.NoError(t, err)
	assert.Equal(t, " Sea View ", req.Name)
	assert.Zero(t, req.TotalPrice, "grouped numbers are rejected by validation, not guessed")
	assert.Equal(t, domain.EUR, req.Currency)
	assert.Equal(t, 3, req.TotalDays)
	assert.Equal(t, "quiet", req.Notes)

	req, err = cli.ParseEntry("Hut|12.5|THB|x")
	require.NoError(t, err)
	assert.Equal(t, 12.5, req.TotalPrice)
	assert.Zero(t, req.TotalDays)
	assert.Empty(t, req.Notes)

	_, err = cli.ParseEntry("a|b|c")
	assert.Error(t, err)
	_, err = cli.ParseEntry("a|1|EUR|1|n|extra")
	assert.Error(t, err)
}

func newShell(in string, confirm bool) (*cli.Shell, *services.Container, *bytes.Buffer) {
	container := services.NewContainer(&portsrepo.RepositoryProvider{
		AccommodationRepo: memory.NewAccommodationRepository(),
	})
	_ = container.Ledger.Seed(context.Background())
	out := &bytes.Buffer{}
	return cli.NewShell(container, strings.NewReader(in), out, confirm), container, out
}

func TestShell_AddListBestQuit(t *testing.T) {
	sh, container, out := newShell("add Hostel|3000|THB|30|dorm bed\nbest\nquit\nlist\n", true)
	require.NoError(t, sh.Run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "staycost interactive session")
	assert.Contains(t, text, `Added "Hostel"`)
	assert.Contains(t, text, "★ Hostel: €74.37 (฿2,800) per 28 days")
	assert.Len(t, container.Ledger.Enumerate(context.Background()), 3)
	// Input after quit is never read: the table is printed at start and after the add only.
	assert.Equal(t, 2, strings.Count(text, "Comparison results"))
}

func TestShell_AddInvalidShowsFieldMessages(t *testing.T) {
	sh, container, out := newShell("add |0|USD|0\n", true)
	require.NoError(t, sh.Run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "name: Property name is required")
	assert.Contains(t, text, "totalPrice: Please enter a valid price")
	assert.Contains(t, text, "currency: Currency must be EUR or THB")
	assert.Contains(t, text, "totalDays: Please enter valid number of days")
	assert.Len(t, container.Ledger.Enumerate(context.Background()), 2)
}

func TestShell_AddMalformed(t *testing.T) {
	sh, _, out := newShell("add just a name\n", true)
	require.NoError(t, sh.Run(context.Background()))
	assert.Contains(t, out.String(), "Usage: add name|price|EUR or THB|days[|notes]")
}

func TestShell_DeleteWithConfirmation(t *testing.T) {
	sh, container, out := newShell("delete 2\ny\n", true)
	require.NoError(t, sh.Run(context.Background()))

	text := out.String()
	assert.Contains(t, text, `Delete "Kho Tao Heights"? This action cannot be undone. [y/N]: `)
	assert.Contains(t, text, `Deleted "Kho Tao Heights".`)
	records := container.Ledger.Enumerate(context.Background())
	require.Len(t, records, 1)
	assert.Equal(t, "Current Place", records[0].Name)
}

func TestShell_DeleteDeclined(t *testing.T) {
	sh, container, out := newShell("delete 1\nn\n", true)
	require.NoError(t, sh.Run(context.Background()))

	assert.Contains(t, out.String(), "Kept.")
	assert.Len(t, container.Ledger.Enumerate(context.Background()), 2)
}

func TestShell_DeleteByIDWithoutConfirmation(t *testing.T) {
	sh, container, out := newShell("", false)
	id := container.Ledger.Enumerate(context.Background())[0].ID
	sh = cli.NewShell(container, strings.NewReader("rm "+string(id)+"\n"), out, false)

	require.NoError(t, sh.Run(context.Background()))

	assert.Contains(t, out.String(), `Deleted "Current Place".`)
	assert.Len(t, container.Ledger.Enumerate(context.Background()), 1)
}

func TestShell_DeleteUnknown(t *testing.T) {
	sh, container, out := newShell("delete 9\ndelete nope\ndelete\n", false)
	require.NoError(t, sh.Run(context.Background()))

	text := out.String()
	assert.Contains(t, text, `No accommodation matches "9".`)
	assert.Contains(t, text, `No accommodation matches "nope".`)
	assert.Contains(t, text, "Usage: delete <row number or id>")
	assert.Len(t, container.Ledger.Enumerate(context.Background()), 2)
}

func TestShell_EmptyLedgerAndMisc(t *testing.T) {
	sh, _, out := newShell("delete 1\ndelete 1\nbest\nrate\nhelp\nfrobnicate\n\n", false)
	require.NoError(t, sh.Run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "No accommodations added yet.")
	assert.Contains(t, text, "No best value: the ledger is empty.")
	assert.Contains(t, text, "1 EUR = 37.65 THB")
	assert.Contains(t, text, "Commands:")
	assert.Contains(t, text, `Unknown command "frobnicate".`)
}

func TestShellCommand(t *testing.T) {
	app, out := testApp("list\nquit\n")
	require.NoError(t, run(t, app, "shell", "--no-seed"))
	assert.Contains(t, out.String(), "No accommodations added yet.")
}

// limitedWriter accepts the first n writes and fails every write after that.
type limitedWriter struct {
	n int
}

func (w *limitedWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, assert.AnError
	}
	w.n--
	return len(p), nil
}

func TestRender_WriteErrorsAreReturned(t *testing.T) {
	container := services.NewContainer(&portsrepo.RepositoryProvider{
		AccommodationRepo: memory.NewAccommodationRepository(),
	})
	ctx := context.Background()
	require.NoError(t, container.Ledger.Seed(ctx))
	report, err := container.Comparison.Compare(ctx)
	require.NoError(t, err)

	assert.ErrorIs(t, cli.RenderTable(&limitedWriter{n: 0}, report), assert.AnError)
	assert.ErrorIs(t, cli.RenderTable(&limitedWriter{n: 1}, report), assert.AnError, "table body after the title")

	b, err := rates.Compute(67, domain.EUR, 9)
	require.NoError(t, err)
	assert.ErrorIs(t, cli.RenderBreakdown(&limitedWriter{n: 0}, 67, domain.EUR, 9, b), assert.AnError)
	assert.NoError(t, cli.RenderBreakdown(&bytes.Buffer{}, 67, domain.EUR, 9, b))
}
