// =============================================================================
// Statement Parser - Parse Command
// =============================================================================
//
// COMMAND USAGE:
//   statement-parser parse <statement.txt> [flags]
//
// The rendered table goes to standard output. Progress and the summary line
// (transaction count and total) go to the log on standard error. Optional
// exports are written to the output directory.
//
// =============================================================================

package cmd

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/statement-parser/internal/config"
	"github.com/ginjaninja78/statement-parser/internal/logger"
	"github.com/ginjaninja78/statement-parser/internal/report"
	"github.com/ginjaninja78/statement-parser/internal/statement"
	"github.com/ginjaninja78/statement-parser/internal/writer"
	"github.com/ginjaninja78/statement-parser/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	vendorFlag    string
	yearFlag      string
	delimiterFlag string
	exportFlag    []string
	outputDirFlag string
)

// =============================================================================
// PARSE COMMAND DEFINITION
// =============================================================================

var parseCmd = &cobra.Command{
	Use:   "parse <statement.txt>",
	Short: "Extract transactions from a statement and print them as a table",
	Long: `The parse command reads one statement text file, extracts every line that
matches the vendor's transaction layout and prints a delimited table: a
header row with the field names, then one row per transaction in file order.

Lines that do not look like transactions (headers, footers, blank lines) are
skipped. A transaction line whose posted date is malformed stops the run.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runParse(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVar(&vendorFlag, "vendor", "", "Statement format (see 'vendors')")
	parseCmd.Flags().StringVar(&yearFlag, "year", "", "Year stamped on posted dates")
	parseCmd.Flags().StringVar(&delimiterFlag, "delimiter", "", "Field delimiter for the table")
	parseCmd.Flags().StringSliceVar(&exportFlag, "export", nil, "Extra outputs to write: xlsx, csv")
	parseCmd.Flags().StringVar(&outputDirFlag, "output-dir", "", "Directory for exported files")
}

// applyFlags layers explicitly set command-line flags over cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("vendor") {
		cfg.Vendor = vendorFlag
	}
	if flags.Changed("year") {
		cfg.PostedYear = yearFlag
	}
	if flags.Changed("delimiter") {
		cfg.Delimiter = delimiterFlag
	}
	if flags.Changed("export") {
		cfg.ExportFormats = exportFlag
	}
	if flags.Changed("output-dir") {
		cfg.OutputDir = outputDirFlag
	}
}

// =============================================================================
// PARSE LOGIC
// =============================================================================

func runParse(cmd *cobra.Command, path string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	runID := uuid.New().String()
	log := logger.WithFields(newLogger(cfg), map[string]interface{}{
		"run_id": runID,
		"vendor": cfg.Vendor,
	})

	log.Info().Str("path", path).Msg("Starting the program")

	text, err := utils.ReadStatementFile(path)
	if err != nil {
		return err
	}

	stmt, err := statement.New(cfg.Vendor, text, statement.Options{PostedYear: cfg.PostedYear})
	if err != nil {
		return fmt.Errorf("failed to load statement %s: %w", path, err)
	}
	log.Debug().Str("posted_year", cfg.PostedYear).Int("lines", len(strings.Split(text, "\n"))).Msg("Statement loaded")

	table, err := stmt.Render(cfg.Delimiter)
	if err != nil {
		return fmt.Errorf("failed to parse statement %s: %w", path, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), table)

	if err := runExports(log, cfg, stmt, path, runID); err != nil {
		return err
	}

	summary, err := report.FromStatement(stmt)
	if err != nil {
		return err
	}
	log.Info().
		Int("transactions", summary.Count).
		Int64("total_cents", summary.TotalCents()).
		Msg(summary.String())
	log.Info().Msg("Completed successfully.")

	return nil
}

// runExports writes each configured export format to the output directory.
func runExports(log zerolog.Logger, cfg *config.Config, stmt statement.Statement, inputPath, runID string) error {
	if len(cfg.ExportFormats) == 0 {
		return nil
	}

	transactions, err := stmt.Transactions()
	if err != nil {
		return err
	}

	fm := utils.NewFileManager(cfg.OutputDir)
	if err := fm.EnsureOutputDir(); err != nil {
		return err
	}

	params := map[string]string{
		"uuid":     runID,
		"vendor":   stmt.Vendor(),
		"original": utils.BaseName(inputPath),
	}

	for _, format := range cfg.ExportFormats {
		exp, err := writer.ForFormat(format)
		if err != nil {
			return err
		}

		outPath := fm.OutputPath(utils.GenerateOutputFileName(cfg.OutputFileFormat, params, exp.Extension()))
		if err := exp.WriteToFile(outPath, transactions); err != nil {
			return fmt.Errorf("%s export failed: %w", format, err)
		}
		log.Info().Str("format", format).Str("output", outPath).Msg("Wrote export")
	}

	return nil
}
