package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/petrosquatr/vlan-replacer/internal/config"
	"github.com/petrosquatr/vlan-replacer/internal/errors"
	"github.com/petrosquatr/vlan-replacer/internal/parser"
)

var cfg = &config.Config{}

var rootCmd = &cobra.Command{
	Use:   "vlan-replacer [flags] <input_file>",
	Short: "Rewrite VLAN IDs in Fortigate configuration files",
	Long: `vlan-replacer rewrites the numeric argument of "set vlanid" directives in
a Fortigate configuration file. VLAN IDs are translated through an explicit
mapping file (JSON, CSV or YAML), through a contiguous range remap, or both;
individual mappings take precedence over the range. The rewritten
configuration goes to a new output file and a summary of every change and
every requested VLAN that never appeared is printed.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplace,
}

// Execute runs the root command and handles top-level error reporting.
// All failures print a single Error line to stderr and exit non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if te, ok := err.(*errors.ReplacerError); ok {
			fmt.Fprintf(os.Stderr, "Error: %s\n", te.Error())
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&cfg.OutputFile, "output", "o", "", "Output file (default: <input>-modified.<ext>)")
	rootCmd.Flags().StringVar(&cfg.MappingFile, "mapping-file", "", "Mapping file with individual VLAN replacements (JSON, CSV or YAML)")
	rootCmd.Flags().Var((*mappingFormatFlag)(&cfg.MappingFormat), "mapping-format", "Mapping file format: json, csv or yaml (default: by extension)")
	rootCmd.Flags().IntSliceVar(&cfg.OldRange, "old-range", nil, "Old VLAN range as START,END (e.g. 100,200)")
	rootCmd.Flags().IntSliceVar(&cfg.NewRange, "new-range", nil, "New VLAN range as START,END (e.g. 500,600)")
	rootCmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose mode")
	rootCmd.Flags().BoolVar(&cfg.Debug, "debug", false, "Debug mode")
	rootCmd.Flags().BoolVarP(&cfg.Quiet, "quiet", "q", false, "Quiet mode (suppress banner and report)")
	rootCmd.Flags().BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output")

	rootCmd.MarkFlagsRequiredTogether("old-range", "new-range")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	rootCmd.MarkFlagsMutuallyExclusive("debug", "quiet")
}

func runReplace(cmd *cobra.Command, args []string) error {
	cfg.InputFile = args[0]

	cfg.ApplyEnvironment()

	if err := cfg.Validate(); err != nil {
		return err
	}

	setupLogging(cfg)
	setupStyling(cfg)

	return executeReplace(cfg)
}

func setupLogging(cfg *config.Config) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: cfg.NoColor})

	switch {
	case cfg.Quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case cfg.IsDebug() || cfg.IsVerbose():
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

type mappingFormatFlag string

func (f *mappingFormatFlag) String() string {
	return string(*f)
}

func (f *mappingFormatFlag) Set(v string) error {
	if !parser.KnownFormat(v) {
		return fmt.Errorf("must be 'json', 'csv' or 'yaml'")
	}
	*f = mappingFormatFlag(v)
	return nil
}

func (f *mappingFormatFlag) Type() string {
	return "string"
}
