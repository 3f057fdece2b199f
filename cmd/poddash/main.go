// Package main provides the CLI entry point for poddash.
package main

import (
	"fmt"
	"os"

	"github.com/benji822/pod-dash-app/internal/config"
	"github.com/benji822/pod-dash-app/internal/logging"
	"github.com/benji822/pod-dash-app/pkg/poddash"
	"github.com/benji822/pod-dash-app/pkg/poddash/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// cli carries global flag values and the state built from them before any
// subcommand runs.
type cli struct {
	configPath string
	dataRoot   string
	formatName string
	pretty     bool
	verbose    bool
	onError    string

	cfg    *config.Config
	format render.Format
	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	rootCmd := &cobra.Command{
		Use:   "poddash",
		Short: "Query line output and downtime workbooks",
		Long: `poddash loads per-line output and downtime workbooks from a data directory
and answers the queries behind the production dashboards: output rows for a
workcell and day, downtime per reason code, and hourly downtime.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "poddash.yaml", "Config file path")
	flags.StringVar(&c.dataRoot, "data", "", "Data directory (overrides data.root)")
	flags.StringVar(&c.formatName, "format", "", "Output format: json, csv, table (default: table on a terminal, json otherwise)")
	flags.BoolVar(&c.pretty, "pretty", false, "Pretty-print JSON output")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVar(&c.onError, "on-error", "", "Workbook failure policy: abort, skip (overrides load.on_error)")

	rootCmd.AddCommand(
		newFiltersCmd(c),
		newOutputCmd(c),
		newBreakdownCmd(c),
		newHourlyCmd(c),
		newRawCmd(c),
		newServeCmd(c),
	)
	return rootCmd
}

func (c *cli) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.dataRoot != "" {
		cfg.Data.Root = c.dataRoot
	}
	if c.onError != "" {
		cfg.Load.OnError = c.onError
	}
	if c.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	c.cfg = cfg

	switch {
	case c.formatName != "":
		if c.format, err = render.ParseFormat(c.formatName); err != nil {
			return err
		}
	case isTerminal(cmd):
		c.format = render.FormatTable
	default:
		c.format = render.FormatJSON
	}

	c.logger, err = logging.New(cfg.Logging.Level, cfg.Logging.Format)
	return err
}

func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// load reads the whole data directory.
func (c *cli) load() (*poddash.Dataset, error) {
	opts := poddash.Options{
		Root:        c.cfg.Data.Root,
		OutputDir:   c.cfg.Data.OutputDir,
		DowntimeDir: c.cfg.Data.DowntimeDir,
		Extensions:  c.cfg.Data.Extensions,
		OnError:     poddash.ErrorPolicy(c.cfg.Load.OnError),
		Logger:      c.logger,
	}
	ds, err := poddash.Load(opts)
	if err != nil {
		return nil, fmt.Errorf("load failed: %w", err)
	}
	return ds, nil
}

func (c *cli) write(cmd *cobra.Command, v any, t render.Table) error {
	return render.Write(cmd.OutOrStdout(), c.format, v, t, c.pretty)
}
