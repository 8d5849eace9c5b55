// =============================================================================
// Statement Parser - File Manager Utility
// =============================================================================
//
// This module holds the file-system side of the tool, kept out of the parsing
// core, which only ever sees statement text:
//   - Reading statement files
//   - Output directory management
//   - Output file naming
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles file operations for the parser.
type FileManager struct {
	// OutputDir is the directory where exported files are placed.
	OutputDir string
}

// NewFileManager creates a new FileManager for the given output directory.
func NewFileManager(outputDir string) *FileManager {
	return &FileManager{OutputDir: outputDir}
}

// EnsureOutputDir creates the output directory if it doesn't exist.
func (fm *FileManager) EnsureOutputDir() error {
	if err := os.MkdirAll(fm.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", fm.OutputDir, err)
	}
	return nil
}

// OutputPath returns the full path of a file name inside OutputDir.
func (fm *FileManager) OutputPath(fileName string) string {
	return filepath.Join(fm.OutputDir, fileName)
}

// =============================================================================
// INPUT
// =============================================================================

// ReadStatementFile returns the full text of a statement file.
//
// RETURNS:
//   - The file contents.
//   - An error if the path is a directory or cannot be read.
func ReadStatementFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to open statement: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("statement path %s is a directory", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read statement: %w", err)
	}
	return string(data), nil
}

// =============================================================================
// OUTPUT FILE NAMING
// =============================================================================

// GenerateOutputFileName generates a unique output file name.
//
// PARAMETERS:
//   - format: The format string for the file name.
//             Placeholders:
//               {uuid}      - A random UUID (overridable through params)
//               {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
//               {date}      - Current date (YYYYMMDD)
//               {time}      - Current time (HHMMSS)
//               any key in params, e.g. {vendor} or {original}
//   - params: A map of placeholder values.
//   - extension: Appended when the result does not already end with it.
//
// EXAMPLE:
//   format:    "{vendor}_{timestamp}"
//   params:    {"vendor": "mbna"}
//   extension: ".xlsx"
//   output:    "mbna_20240115_143022.xlsx"
func GenerateOutputFileName(format string, params map[string]string, extension string) string {
	now := time.Now()

	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	// Custom params come first so they win over the built-ins. A single
	// replacer pass never re-expands placeholders found in substituted values.
	pairs := make([]string, 0, 2*len(keys)+8)
	for _, key := range keys {
		pairs = append(pairs, "{"+key+"}", params[key])
	}
	pairs = append(pairs,
		"{uuid}", uuid.New().String(),
		"{timestamp}", now.Format("20060102_150405"),
		"{date}", now.Format("20060102"),
		"{time}", now.Format("150405"),
	)

	result := strings.NewReplacer(pairs...).Replace(format)

	if extension != "" && !strings.HasSuffix(strings.ToLower(result), strings.ToLower(extension)) {
		result += extension
	}

	return result
}

// BaseName returns a file name without directory or extension.
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
