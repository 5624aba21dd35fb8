// Package cli is the tabview command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vegasq/tabview/internal/logging"
)

const envPrefix = "TABVIEW"

// settings are the flags that may also come from the environment
// (TABVIEW_FORMAT, TABVIEW_LOG_LEVEL, ...) or the config file.
var settings = []string{
	"format",
	"limit",
	"delimiter",
	"no-header",
	"sheet",
	"locale",
	"timezone",
	"log-level",
	"log-format",
}

type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

// flags that apply to one invocation only.
type invocation struct {
	query       string
	sort        string
	descending  bool
	show        []string
	hide        []string
	interactive bool
	schema      bool
	configFile  string
}

// NewRootCommand returns the tabview command reading from in and writing
// to out and errOut.
func NewRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	v := viper.New()
	inv := &invocation{}
	std := streams{in: in, out: out, err: errOut}

	cmd := &cobra.Command{
		Use:   "tabview [flags] <file|glob>",
		Short: "Filter, sort and print tabular files",
		Long: `tabview loads CSV, TSV, XLSX and Parquet files (optionally compressed)
and prints the rows matching a query, sorted by column type.

Query syntax:
  alice            rows where any visible cell contains "alice"
  name:^al         rows whose name starts with "al"
  age:>=30         numeric or date comparison
  "new york"       quoted phrase
  a OR b c         a, or both b and c; parentheses group`,
		Example: `  tabview people.csv
  tabview -q 'age:>30' -s age --desc people.csv.gz
  tabview -f csv 'logs/**/*.parquet'
  tabview --schema data.parquet
  tabview -i people.xlsx`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindFlagsLoadViper(v, cmd, inv.configFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(v.GetString("log-format"), v.GetString("log-level"), std.err)
			if err != nil {
				return err
			}
			r := &runner{v: v, inv: inv, std: std, logger: logger}
			return r.run(cmd.Context(), args[0])
		},
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	flags := cmd.Flags()
	flags.StringVarP(&inv.query, "query", "q", "", "query to filter rows with")
	flags.StringVarP(&inv.sort, "sort", "s", "", "column to sort by")
	flags.BoolVar(&inv.descending, "desc", false, "sort descending")
	flags.StringSliceVarP(&inv.show, "show", "c", nil, "columns to show, all others are hidden")
	flags.StringSliceVar(&inv.hide, "hide", nil, "columns to hide")
	flags.BoolVarP(&inv.interactive, "interactive", "i", false, "read queries from stdin")
	flags.BoolVar(&inv.schema, "schema", false, "print the Parquet schema instead of data")
	flags.StringVar(&inv.configFile, "config", "", "config file (default ./tabview.yaml or ~/.config/tabview/tabview.yaml)")

	flags.StringP("format", "f", "table", "output format: table, csv, json")
	flags.Int("limit", 0, "limit number of rows (0 = unlimited)")
	flags.String("delimiter", "", "field delimiter of delimited files (default by extension)")
	flags.Bool("no-header", false, "treat the first record as data")
	flags.String("sheet", "", "XLSX sheet to load (default first sheet)")
	flags.String("locale", "", "locale for number and month formatting, e.g. de-DE")
	flags.String("timezone", "", "time zone of dates without an offset (default local)")
	flags.String("log-level", logging.LevelWarn, "log level: debug, info, warn, error")
	flags.String("log-format", logging.FormatPlain, "log format: plain, json")

	return cmd
}

// bindFlagsLoadViper binds the setting flags, the environment and the
// config file into v. Flags win over the environment, which wins over the
// file.
func bindFlagsLoadViper(v *viper.Viper, cmd *cobra.Command, configFile string) error {
	for _, name := range settings {
		if err := v.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			return err
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("tabview")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "tabview"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

// Execute runs the tabview command with the process arguments and exits
// non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := NewRootCommand(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
