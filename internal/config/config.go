// =============================================================================
// Statement Parser - Configuration Module
// =============================================================================
//
// This module loads the application configuration. Values are resolved in
// three layers, each overriding the one before it:
//
//   1. config.yaml (or the file named by --config)
//   2. environment variables, optionally seeded from a .env file
//   3. command-line flags (applied by the cmd package)
//
// ENVIRONMENT VARIABLES:
//   STATEMENT_POSTED_YEAR   - year stamped on posted dates
//   STATEMENT_DELIMITER     - field delimiter for the rendered table
//   STATEMENT_LOG_LEVEL     - debug, info, warn, error
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// Vendor selects the statement format. Default: "mbna"
	Vendor string `yaml:"vendor"`

	// PostedYear is stamped on every normalized posted date. Statement
	// lines carry only month and day. Default: "2011"
	PostedYear string `yaml:"posted_year"`

	// Delimiter separates fields in the rendered table. Default: "; "
	Delimiter string `yaml:"delimiter"`

	// LogLevel is one of debug, info, warn, error. Default: "info"
	LogLevel string `yaml:"log_level"`

	// OutputDir receives exported files. Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// OutputFileFormat names exported files.
	// Placeholders: {uuid}, {timestamp}, {date}, {time}, {vendor}, {original}
	// Default: "{vendor}_{uuid}"
	OutputFileFormat string `yaml:"output_file_format"`

	// ExportFormats lists extra outputs to write (xlsx, csv). Default: none
	ExportFormats []string `yaml:"export_formats"`
}

// Environment variable names read by ApplyEnv.
const (
	EnvPostedYear = "STATEMENT_POSTED_YEAR"
	EnvDelimiter  = "STATEMENT_DELIMITER"
	EnvLogLevel   = "STATEMENT_LOG_LEVEL"
)

// Defaults.
const (
	DefaultVendor           = "mbna"
	DefaultPostedYear       = "2011"
	DefaultDelimiter        = "; "
	DefaultLogLevel         = "info"
	DefaultOutputDir        = "./output"
	DefaultOutputFileFormat = "{vendor}_{uuid}"
)

var yearPattern = regexp.MustCompile(`^\d{4}$`)

var knownExportFormats = map[string]bool{"xlsx": true, "csv": true}

// =============================================================================
// LOADING
// =============================================================================

// Default returns a configuration with every default applied.
func Default() *Config {
	var config Config
	applyDefaults(&config)
	return &config
}

// Load reads the configuration file at configPath.
//
// A missing file is an error only when required is true; otherwise the
// defaults are returned. The result is not yet validated, so callers can
// layer environment and flag overrides before calling Validate.
func Load(configPath string, required bool) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&config)
	return &config, nil
}

// ApplyEnv overrides configuration values from the environment. When envFile
// exists its variables are used as a fallback for anything not set in the
// process environment.
func (c *Config) ApplyEnv(envFile string) error {
	fileEnv := map[string]string{}
	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			fileEnv = vars
		case errors.Is(err, os.ErrNotExist):
		default:
			return fmt.Errorf("failed to read env file %s: %w", envFile, err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	}

	if v, ok := lookup(EnvPostedYear); ok && v != "" {
		c.PostedYear = v
	}
	if v, ok := lookup(EnvDelimiter); ok && v != "" {
		c.Delimiter = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	return nil
}

// applyDefaults fills in default values for unset fields.
func applyDefaults(config *Config) {
	if config.Vendor == "" {
		config.Vendor = DefaultVendor
	}
	if config.PostedYear == "" {
		config.PostedYear = DefaultPostedYear
	}
	if config.Delimiter == "" {
		config.Delimiter = DefaultDelimiter
	}
	if config.LogLevel == "" {
		config.LogLevel = DefaultLogLevel
	}
	if config.OutputDir == "" {
		config.OutputDir = DefaultOutputDir
	}
	if config.OutputFileFormat == "" {
		config.OutputFileFormat = DefaultOutputFileFormat
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the final configuration after all overrides.
func (c *Config) Validate() error {
	if !yearPattern.MatchString(c.PostedYear) {
		return fmt.Errorf("invalid posted_year %q: expected four digits", c.PostedYear)
	}
	if c.Delimiter == "" {
		return fmt.Errorf("delimiter must not be empty")
	}
	if c.Vendor == "" {
		return fmt.Errorf("vendor must not be empty")
	}
	for _, format := range c.ExportFormats {
		if !knownExportFormats[format] {
			return fmt.Errorf("unknown export format %q", format)
		}
	}
	return nil
}
