// =============================================================================
// Statement Parser - Main Entry Point
// =============================================================================
//
// This is the main entry point for the statement parser CLI. It initializes
// the Cobra CLI framework and delegates command execution to the cmd package.
//
// USAGE:
//   statement-parser parse <statement.txt>   - Print the transaction table
//   statement-parser vendors                 - List supported statement formats
//   statement-parser version                 - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Parsing core, exports, config, logging
//   - pkg/           : File-system utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/statement-parser/cmd"
)

func main() {
	cmd.Execute()
}
