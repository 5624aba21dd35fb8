// Package repl is the interactive mode of tabview: every input line is a
// query, and lines starting with ':' are commands.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/vegasq/tabview/output"
	"github.com/vegasq/tabview/table"
)

const help = `Type a query to filter rows, an empty line to show all rows.
Commands:
  :sort <column>   sort by column, again to reverse
  :show <column>   show a hidden column
  :hide <column>   hide a column
  :columns         list columns
  :clear           clear the query and the sort
  :help            show this help
  :q, :quit        exit`

// REPL reads queries and commands from in and writes rendered tables to out.
type REPL struct {
	view      *table.View
	formatter output.Formatter
	in        io.Reader
	out       io.Writer
	limit     int
	logger    zerolog.Logger
}

// New returns a REPL over view. limit caps the rows printed per render;
// zero means no cap.
func New(view *table.View, formatter output.Formatter, in io.Reader, out io.Writer, limit int, logger zerolog.Logger) *REPL {
	formatter.SetOutput(out)
	return &REPL{
		view:      view,
		formatter: formatter,
		in:        in,
		out:       out,
		limit:     limit,
		logger:    logger,
	}
}

// Run renders the view once, then processes input lines until :quit, end
// of input or cancellation of ctx. Cancellation returns at once, even while
// waiting for input.
func (r *REPL) Run(ctx context.Context) error {
	if err := r.render(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines, scanErr := r.readLines(ctx)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(r.out, "> ")

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(r.out)
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(r.out)
				if err := ctx.Err(); err != nil {
					return err
				}
				return <-scanErr
			}
			line = l
		}

		quit, err := r.Execute(line)
		if err != nil {
			fmt.Fprintf(r.out, "Error: %v\n", err)
			continue
		}
		if quit {
			return nil
		}
	}
}

// readLines scans input on its own goroutine so that a blocked read does
// not hold up cancellation. lines is closed at end of input or once ctx is
// done; the scanner error is sent on the second channel at end of input.
func (r *REPL) readLines(ctx context.Context) (<-chan string, <-chan error) {
	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	return lines, scanErr
}

// Execute runs one input line. quit is true for :q and :quit.
func (r *REPL) Execute(line string) (quit bool, err error) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, ":") {
		r.view.SetQuery(trimmed)
		return false, r.render()
	}

	name, arg, _ := strings.Cut(trimmed[1:], " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "q", "quit":
		return true, nil
	case "help":
		fmt.Fprintln(r.out, help)
		return false, nil
	case "columns":
		r.printColumns()
		return false, nil
	case "clear":
		r.view.SetQuery("")
		r.view.ClearSort()
		return false, r.render()
	case "sort", "show", "hide":
		col, err := r.column(arg)
		if err != nil {
			return false, err
		}
		switch name {
		case "sort":
			r.view.ToggleSort(col)
		case "show":
			r.view.ShowColumn(col)
		case "hide":
			r.view.HideColumn(col)
		}
		return false, r.render()
	default:
		return false, fmt.Errorf("unknown command :%s (try :help)", name)
	}
}

func (r *REPL) column(name string) (int, error) {
	if name == "" {
		return 0, fmt.Errorf("missing column name")
	}
	i, ok := r.view.ColumnIndex(name)
	if !ok {
		return 0, fmt.Errorf("no column named %q", name)
	}
	return i, nil
}

func (r *REPL) printColumns() {
	visible := make(map[int]bool)
	for _, i := range r.view.Visible() {
		visible[i] = true
	}
	sort := r.view.SortState()

	for i, h := range r.view.Headers() {
		marks := ""
		if !visible[i] {
			marks += " hidden"
		}
		if sort.Column == i {
			if sort.Ascending {
				marks += " sorted ascending"
			} else {
				marks += " sorted descending"
			}
		}
		fmt.Fprintf(r.out, "%3d  %s (%s)%s\n", i, h, r.view.Columns().At(i).Type, marks)
	}
}

func (r *REPL) render() error {
	rows := r.view.Render()
	stats := r.view.Stats()
	if r.limit > 0 && len(rows) > r.limit {
		rows = rows[:r.limit]
	}

	headers, cells := r.view.Display(rows)
	if err := r.formatter.Format(headers, cells); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	fmt.Fprintf(r.out, "%d of %d rows\n", stats.Matched, stats.Total)
	r.logger.Debug().Str("query", r.view.Query()).Int("shown", len(rows)).Msg("render")
	return nil
}
