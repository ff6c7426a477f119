// Package config provides configuration management and validation for the
// replacer. It centralizes all command-line options and environment defaults,
// providing validation logic to catch configuration errors before any file
// is read.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/petrosquatr/vlan-replacer/internal/errors"
)

// Environment variables honored as defaults. A .env file in the working
// directory is loaded first; real environment variables win over it, and
// command-line flags win over both.
const (
	EnvOutputSuffix = "VLAN_REPLACER_OUTPUT_SUFFIX"
	EnvNoColor      = "VLAN_REPLACER_NO_COLOR"
	EnvQuiet        = "VLAN_REPLACER_QUIET"
)

const (
	defaultOutputSuffix = "-modified"
	defaultOutputExt    = "conf"
)

// Config holds all runtime options for one replacement run. It is the single
// source of truth for all settings across the command layer and the engine.
type Config struct {
	InputFile     string
	OutputFile    string
	OutputSuffix  string
	MappingFile   string
	MappingFormat string
	OldRange      []int
	NewRange      []int
	Quiet         bool
	Verbose       bool
	Debug         bool
	NoColor       bool
}

// ApplyEnvironment layers environment defaults under the flag values.
// Missing .env files are ignored; only options the flags left unset are
// filled in.
func (c *Config) ApplyEnvironment() {
	_ = godotenv.Load()

	if c.OutputSuffix == "" {
		if suffix := os.Getenv(EnvOutputSuffix); suffix != "" {
			c.OutputSuffix = suffix
		} else {
			c.OutputSuffix = defaultOutputSuffix
		}
	}
	if !c.NoColor {
		c.NoColor = envBool(EnvNoColor)
	}
	if !c.Quiet {
		c.Quiet = envBool(EnvQuiet)
	}
}

func envBool(key string) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && value
}

// Validate checks the configuration before processing begins. It verifies
// that an input file is set, that at least one replacement source is
// configured, and that range flags come as complete start,end pairs.
func (c *Config) Validate() error {
	if err := c.validateInputFile(); err != nil {
		return err
	}

	if err := c.validateRuleSources(); err != nil {
		return err
	}

	if err := c.validateRanges(); err != nil {
		return err
	}

	return c.validateMappingFormat()
}

func (c *Config) validateInputFile() error {
	if c.InputFile == "" {
		return errors.NewConfigError("input file is required", nil)
	}
	return nil
}

func (c *Config) validateRuleSources() error {
	if !c.HasMapping() && !c.HasRange() {
		return errors.NewConfigError("must provide --mapping-file or --old-range/--new-range", nil)
	}
	return nil
}

func (c *Config) validateRanges() error {
	if len(c.OldRange) == 0 && len(c.NewRange) == 0 {
		return nil
	}

	if len(c.OldRange) == 0 || len(c.NewRange) == 0 {
		return errors.NewConfigError("--old-range and --new-range must be used together", nil)
	}
	if len(c.OldRange) != 2 {
		return errors.NewConfigError("--old-range must be START,END", nil)
	}
	if len(c.NewRange) != 2 {
		return errors.NewConfigError("--new-range must be START,END", nil)
	}
	return nil
}

func (c *Config) validateMappingFormat() error {
	switch c.MappingFormat {
	case "", "json", "csv", "yaml":
		return nil
	}
	return errors.NewConfigError("mapping format must be 'json', 'csv' or 'yaml'", nil)
}

// HasMapping reports whether an explicit mapping file was configured.
func (c *Config) HasMapping() bool {
	return c.MappingFile != ""
}

// HasRange reports whether range flags were given.
func (c *Config) HasRange() bool {
	return len(c.OldRange) > 0 || len(c.NewRange) > 0
}

// ResolveOutputPath returns the output destination: the explicit --output
// value when set, otherwise the input path with the output suffix inserted
// before the extension. Inputs without an extension get ".conf" appended,
// matching the configuration files this tool is written for.
func (c *Config) ResolveOutputPath() string {
	if c.OutputFile != "" {
		return c.OutputFile
	}

	suffix := c.OutputSuffix
	if suffix == "" {
		suffix = defaultOutputSuffix
	}

	ext := filepath.Ext(c.InputFile)
	if ext == "" {
		return c.InputFile + suffix + "." + defaultOutputExt
	}
	return strings.TrimSuffix(c.InputFile, ext) + suffix + ext
}

// IsVerbose determines if verbose diagnostics are enabled. Quiet mode
// overrides Verbose.
func (c *Config) IsVerbose() bool {
	return c.Verbose && !c.Quiet
}

// IsDebug determines if debug diagnostics are enabled. Quiet mode overrides
// Debug.
func (c *Config) IsDebug() bool {
	return c.Debug && !c.Quiet
}

// ShouldReport determines if the banner and summary report are printed.
func (c *Config) ShouldReport() bool {
	return !c.Quiet
}
