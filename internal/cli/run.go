package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/vegasq/tabview/config"
	"github.com/vegasq/tabview/internal/repl"
	"github.com/vegasq/tabview/output"
	"github.com/vegasq/tabview/reader"
	"github.com/vegasq/tabview/schema"
	"github.com/vegasq/tabview/table"
)

var schemaHeaders = []string{"name", "type", "physical_type", "logical_type", "column", "required", "optional", "repeated"}

type runner struct {
	v      *viper.Viper
	inv    *invocation
	std    streams
	logger zerolog.Logger
}

func (r *runner) run(ctx context.Context, pattern string) error {
	limit := r.v.GetInt("limit")
	if limit < 0 {
		return fmt.Errorf("--limit must be non-negative, got %d", limit)
	}
	if r.inv.schema && r.inv.query != "" {
		return errors.New("--schema and --query cannot be used together")
	}
	if r.inv.schema && r.inv.interactive {
		return errors.New("--schema and --interactive cannot be used together")
	}

	formatter, err := output.New(r.v.GetString("format"), r.std.out)
	if err != nil {
		return err
	}

	if r.inv.schema {
		return r.printSchema(pattern, formatter)
	}

	view, err := r.load(pattern)
	if err != nil {
		return err
	}

	if r.inv.interactive {
		return repl.New(view, formatter, r.std.in, r.std.out, limit, r.logger).Run(ctx)
	}

	view.SetQuery(r.inv.query)
	rows := view.Render()
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	headers, cells := view.Display(rows)
	if err := formatter.Format(headers, cells); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	stats := view.Stats()
	r.logger.Info().Int("total", stats.Total).Int("matched", stats.Matched).Int("written", len(cells)).Msg("done")
	return nil
}

// load reads the files matching pattern into a view configured by the
// config file and the flags.
func (r *runner) load(pattern string) (*table.View, error) {
	opts, err := r.readerOptions()
	if err != nil {
		return nil, err
	}
	ds, err := reader.LoadMultiple(pattern, opts)
	if err != nil {
		return nil, err
	}
	r.logger.Debug().Str("pattern", pattern).Int("rows", len(ds.Rows)).Int("columns", len(ds.Headers)).Msg("loaded")

	cfg, err := r.config()
	if err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	resolved, err := cfg.Resolve(ds.Headers)
	if err != nil {
		return nil, err
	}

	view := table.NewView(ds.Headers, ds.Rows, mergeColumns(ds.Columns, resolved.Columns),
		table.WithLocale(cfg.Locale),
		table.WithLocation(loc),
		table.WithLogger(r.logger),
	)

	for _, i := range resolved.Hidden {
		view.HideColumn(i)
	}
	if err := r.applyVisibility(view); err != nil {
		return nil, err
	}

	state := resolved.Sort
	if r.inv.sort != "" {
		i, ok := view.ColumnIndex(r.inv.sort)
		if !ok {
			return nil, fmt.Errorf("%w: %q", config.ErrUnknownColumn, r.inv.sort)
		}
		state = table.SortState{Column: i, Ascending: true}
	}
	if r.inv.descending {
		state.Ascending = false
	}
	view.SortBy(state.Column, state.Ascending)

	return view, nil
}

// config loads the config file viper found, if any, with the locale and
// timezone settings applied on top.
func (r *runner) config() (*config.Config, error) {
	cfg := &config.Config{}
	if path := r.v.ConfigFileUsed(); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		r.logger.Debug().Str("path", path).Int("columns", len(cfg.Columns)).Msg("config loaded")
	}
	if locale := r.v.GetString("locale"); locale != "" {
		cfg.Locale = locale
	}
	if tz := r.v.GetString("timezone"); tz != "" {
		cfg.Timezone = tz
	}
	return cfg, nil
}

func (r *runner) readerOptions() (reader.Options, error) {
	opts := reader.Options{
		NoHeaderRow: r.v.GetBool("no-header"),
		Sheet:       r.v.GetString("sheet"),
	}
	if d := r.v.GetString("delimiter"); d != "" {
		if d == `\t` {
			d = "\t"
		}
		if utf8.RuneCountInString(d) != 1 {
			return opts, fmt.Errorf("--delimiter must be a single character, got %q", d)
		}
		opts.Delimiter, _ = utf8.DecodeRuneInString(d)
	}
	return opts, nil
}

func (r *runner) applyVisibility(view *table.View) error {
	if len(r.inv.show) > 0 {
		shown := make(map[int]bool)
		for _, name := range r.inv.show {
			i, ok := view.ColumnIndex(name)
			if !ok {
				return fmt.Errorf("%w: %q", config.ErrUnknownColumn, name)
			}
			shown[i] = true
		}
		for i := range view.Headers() {
			if shown[i] {
				view.ShowColumn(i)
			} else {
				view.HideColumn(i)
			}
		}
	}

	for _, name := range r.inv.hide {
		i, ok := view.ColumnIndex(name)
		if !ok {
			return fmt.Errorf("%w: %q", config.ErrUnknownColumn, name)
		}
		view.HideColumn(i)
	}
	return nil
}

// printSchema writes the schema of the first file matching pattern.
func (r *runner) printSchema(pattern string, formatter output.Formatter) error {
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return fmt.Errorf("invalid glob pattern: %w", err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("%w: %s", reader.ErrNoFiles, pattern)
	}
	path := matches[0]
	if len(matches) > 1 {
		fmt.Fprintf(r.std.err, "# Showing schema from: %s (%d files matched)\n", path, len(matches))
	}

	infos, err := reader.ExtractSchemaInfo(path)
	if err != nil {
		return err
	}

	rows := make([][]string, len(infos))
	for i, info := range infos {
		rows[i] = []string{
			info.Name,
			info.Type,
			info.PhysicalType,
			info.LogicalType,
			info.Column,
			strconv.FormatBool(info.Required),
			strconv.FormatBool(info.Optional),
			strconv.FormatBool(info.Repeated),
		}
	}
	return formatter.Format(schemaHeaders, rows)
}

// mergeColumns overlays configured columns on the types a file declares.
func mergeColumns(declared, configured schema.Columns) schema.Columns {
	merged := make(schema.Columns, len(declared)+len(configured))
	for i, c := range declared {
		merged[i] = c
	}
	for i, c := range configured {
		merged[i] = c
	}
	return merged
}
