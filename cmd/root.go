// =============================================================================
// Statement Parser - Root Command
// =============================================================================
//
// COBRA CLI STRUCTURE:
//   rootCmd (statement-parser)
//   ├── parseCmd (statement-parser parse)
//   ├── vendorsCmd (statement-parser vendors)
//   └── versionCmd (statement-parser version)
//
// The root command owns the global flags (--config, --env-file, --verbose)
// and the configuration/logging setup shared by the subcommands.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/statement-parser/internal/config"
	"github.com/ginjaninja78/statement-parser/internal/logger"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
var cfgFile string

// envFile holds the path to an optional .env file.
var envFile string

// verbose enables debug logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "statement-parser",
	Short: "Statement Parser - Extract transactions from text bank statements",
	Long: `Statement Parser reads the text export of a bank statement, extracts the
transaction lines into structured records and prints them as a delimited
table, together with the transaction count and total value.

Example Usage:
  statement-parser parse statement.txt                 # Print the table
  statement-parser parse statement.txt --year 2012     # Stamp posted dates with 2012
  statement-parser parse statement.txt --export xlsx   # Also write an Excel file`,

	SilenceUsage:  true,
	SilenceErrors: true,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (optional unless set explicitly)",
	)

	rootCmd.PersistentFlags().StringVar(
		&envFile,
		"env-file",
		".env",
		"Path to a .env file with STATEMENT_* overrides",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// =============================================================================
// SHARED SETUP
// =============================================================================

// loadConfig resolves the configuration file and environment overrides.
// The file is required only when --config was given explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile, cmd.Flags().Changed("config"))
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(envFile); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the run logger; --verbose forces debug level.
func newLogger(cfg *config.Config) zerolog.Logger {
	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	return logger.New(level)
}
