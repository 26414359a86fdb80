// Package cli wires the fsprime engine to the command line: flag parsing,
// environment overrides, progress rendering and the final report.
package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/fsprime/fsprime/internal/fsprime"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// EnvPrefix is the prefix for environment variable overrides,
// e.g. FSPRIME_WORKERS=8.
const EnvPrefix = "fsprime"

func help() {
	//nolint:forbidigo // Help output to console
	fmt.Println(heredoc.Doc(`
		fsprime warms the OS page cache by reading every regular file under a directory.

		Usage:

			fsprime [flags] [path]

		Positional Arguments:
		  path                   Directory to warm. Defaults to current directory if not specified.

		Modes:
		  Default mode reads each file as it is discovered, minimizing memory.
		  Use --staged to collect the full file list first; the total size is then
		  known upfront and the progress bar becomes byte-accurate.

		Symlinks, junctions and other reparse points are never followed. Unreadable
		files and directories are skipped and reported only as an error count.

		Every flag can also be set via environment variables with the FSPRIME_
		prefix (e.g. FSPRIME_WORKERS=8).

		Flags:
	`))
	pflag.PrintDefaults()
}

// bindEnv layers FSPRIME_* environment variables over the flag set.
// Precedence, highest first: explicitly set flags, environment variables
// (hyphens in flag names map to underscores), flag defaults.
func bindEnv(flags *pflag.FlagSet) (*viper.Viper, error) {
	vpr := viper.New()
	vpr.SetEnvPrefix(EnvPrefix)
	vpr.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vpr.AutomaticEnv()

	if err := vpr.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}

	return vpr, nil
}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute() error {
	var options fsprime.Options

	allowedOutputs := []string{"table", "json"}

	pflag.IntVarP(&options.Workers, "workers", "w", 0,
		"Number of parallel file readers (0 = one per CPU, 1 = sequential)")
	pflag.BoolVarP(&options.Staged, "staged", "s", false,
		"Collect the file list first, then read (byte-accurate progress bar)")
	pflag.DurationVar(&options.ProgressInterval, "progress-interval",
		fsprime.DefaultProgressInterval, "Progress update cadence")
	pflag.StringVarP(&options.Output, "output", "o", "table", "Report format: json or table")
	pflag.BoolVar(&options.Debug, "debug", false, "Enable debug output")
	pflag.BoolVarP(&options.Version, "version", "v", false, "Show version and exit")

	pflag.CommandLine.SortFlags = false
	pflag.Usage = help
	pflag.Parse()

	if options.Version {
		//nolint:forbidigo // Version output to console
		fmt.Println(c.version)

		return nil
	}

	vpr, err := bindEnv(pflag.CommandLine)
	if err != nil {
		return err
	}

	options.Workers = vpr.GetInt("workers")
	options.Staged = vpr.GetBool("staged")
	options.ProgressInterval = vpr.GetDuration("progress-interval")
	options.Output = vpr.GetString("output")
	options.Debug = vpr.GetBool("debug")

	if !slices.Contains(allowedOutputs, strings.ToLower(options.Output)) {
		return fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs)
	}

	if pflag.NArg() == 0 {
		options.Path = "."
	} else {
		options.Path = pflag.Args()[0]
	}

	return logic(options)
}
