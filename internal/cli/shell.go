package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/SscSPs/staycost/internal/apperrors"
	"github.com/SscSPs/staycost/internal/core/domain"
	"github.com/SscSPs/staycost/internal/core/services"
	"github.com/SscSPs/staycost/internal/utils/rates"
)

const shellHelp = `Commands:
  add <` + entryFormat + `>   record an accommodation
  list                                      show the comparison table
  best                                      show the best value for 28 days
  delete <row number or id>                 remove an accommodation
  rate                                      show the exchange rate
  help                                      show this help
  quit                                      end the session`

// Shell is an interactive session over one ledger. Every mutation is followed by a fresh table.
type Shell struct {
	container      *services.Container
	in             *bufio.Scanner
	out            io.Writer
	confirmDeletes bool
}

// NewShell creates a session reading commands from in and writing to out.
func NewShell(container *services.Container, in io.Reader, out io.Writer, confirmDeletes bool) *Shell {
	return &Shell{
		container:      container,
		in:             bufio.NewScanner(in),
		out:            out,
		confirmDeletes: confirmDeletes,
	}
}

// Run processes commands until quit or end of input.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "staycost interactive session. Type help for a list of commands.")
	if err := s.list(ctx); err != nil {
		return err
	}

	for {
		fmt.Fprint(s.out, "> ")
		line, ok := s.readLine()
		if !ok {
			fmt.Fprintln(s.out)
			return s.in.Err()
		}

		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		var err error
		switch strings.ToLower(cmd) {
		case "":
			continue
		case "add":
			err = s.add(ctx, arg)
		case "list", "ls":
			err = s.list(ctx)
		case "best":
			err = s.best(ctx)
		case "delete", "rm":
			err = s.delete(ctx, arg)
		case "rate":
			fmt.Fprintln(s.out, rates.Label())
		case "help", "?":
			fmt.Fprintln(s.out, shellHelp)
		case "quit", "exit", "q":
			return nil
		default:
			fmt.Fprintf(s.out, "Unknown command %q. Type help for a list of commands.\n", cmd)
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Shell) add(ctx context.Context, arg string) error {
	req, err := ParseEntry(arg)
	if err != nil {
		fmt.Fprintf(s.out, "Usage: add %s (%v)\n", entryFormat, err)
		return nil
	}

	id, err := s.container.Ledger.Insert(ctx, req)
	if err != nil {
		var verr *apperrors.ValidationError
		if errors.As(err, &verr) {
			for _, f := range verr.Fields {
				fmt.Fprintf(s.out, "  %s: %s\n", f.Field, f.Message)
			}
			return nil
		}
		return err
	}

	fmt.Fprintf(s.out, "Added %q (%s).\n", strings.TrimSpace(req.Name), id)
	return s.list(ctx)
}

func (s *Shell) list(ctx context.Context) error {
	report, err := s.container.Comparison.Compare(ctx)
	if err != nil {
		return err
	}
	return RenderTable(s.out, report)
}

func (s *Shell) best(ctx context.Context) error {
	report, err := s.container.Comparison.Compare(ctx)
	if err != nil {
		return err
	}
	row, ok := report.BestRow()
	if !ok {
		fmt.Fprintln(s.out, "No best value: the ledger is empty.")
		return nil
	}
	fmt.Fprintf(s.out, "%s %s: %s (%s) per %d days\n", bestMarker, row.Name, row.Total28DayEUR, row.Total28DayTHB, rates.StandardMonthDays)
	return nil
}

func (s *Shell) delete(ctx context.Context, arg string) error {
	if arg == "" {
		fmt.Fprintln(s.out, "Usage: delete <row number or id>")
		return nil
	}

	target, ok := s.resolve(ctx, arg)
	if !ok {
		fmt.Fprintf(s.out, "No accommodation matches %q.\n", arg)
		return nil
	}

	if s.confirmDeletes {
		fmt.Fprintf(s.out, "Delete %q? This action cannot be undone. [y/N]: ", target.Name)
		answer, _ := s.readLine()
		if a := strings.ToLower(answer); a != "y" && a != "yes" {
			fmt.Fprintln(s.out, "Kept.")
			return nil
		}
	}

	if !s.container.Ledger.Delete(ctx, target.ID) {
		fmt.Fprintf(s.out, "No accommodation matches %q.\n", arg)
		return nil
	}
	fmt.Fprintf(s.out, "Deleted %q.\n", target.Name)
	return s.list(ctx)
}

// resolve accepts a 1-based row number as shown by list, or a full id.
func (s *Shell) resolve(ctx context.Context, arg string) (domain.Accommodation, bool) {
	if n, err := strconv.Atoi(arg); err == nil {
		records := s.container.Ledger.Enumerate(ctx)
		if n >= 1 && n <= len(records) {
			return records[n-1], true
		}
		return domain.Accommodation{}, false
	}
	return s.container.Ledger.Find(ctx, domain.AccommodationID(arg))
}
