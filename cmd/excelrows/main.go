// Package main provides the CLI entry point for excelrows.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/opustecnica/excelrows/pkg/excelrows"
	"github.com/opustecnica/excelrows/pkg/excelrows/xlsxio"
)

var (
	sheetRef       string
	headers        []string
	firstRowIsData bool
	useText        bool
	dateFormat     string
	startRow       int
	endRow         int
	startColumn    int
	endColumn      int
	headerRow      int
	shared         bool
	outputPath     string
	pretty         bool
	debugLogging   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "excelrows [input.xlsx ...]",
		Short: "Convert worksheet regions to JSON records",
		Long: `excelrows reads a rectangular region of a worksheet from one or more
xlsx files and emits one JSON record per data row, keyed by the resolved
column headers.`,
		Args:         cobra.MinimumNArgs(1),
		RunE:         run,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debugLogging {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
		},
	}

	rootCmd.Flags().StringVarP(&sheetRef, "sheet", "s", "", "Sheet name or 1-based index (default: first sheet)")
	rootCmd.Flags().StringSliceVar(&headers, "header", nil, "Explicit header names, overriding the header row")
	rootCmd.Flags().BoolVar(&firstRowIsData, "first-row-is-data", false, "Treat every row as data; headers become column labels")
	rootCmd.Flags().BoolVar(&useText, "text", false, "Use displayed text instead of typed cell values")
	rootCmd.Flags().StringVar(&dateFormat, "date-format", "", "Extra number format to treat as a date")
	rootCmd.Flags().IntVar(&startRow, "start-row", 0, "First row to process (1-based)")
	rootCmd.Flags().IntVar(&endRow, "end-row", 0, "Last row to process (1-based)")
	rootCmd.Flags().IntVar(&startColumn, "start-column", 0, "First column to process (1-based)")
	rootCmd.Flags().IntVar(&endColumn, "end-column", 0, "Last column to process (1-based)")
	rootCmd.Flags().IntVar(&headerRow, "header-row", 0, "Row to read headers from (1-based)")
	rootCmd.Flags().BoolVar(&shared, "shared", false, "Open files read-tolerant (copy into memory first)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().BoolVar(&debugLogging, "debug", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	opts := excelrows.Options{
		Headers:        headers,
		FirstRowIsData: firstRowIsData,
		HeaderRow:      headerRow,
		UseText:        useText,
		DateFormat:     dateFormat,
		RowStart:       startRow,
		RowEnd:         endRow,
		ColumnStart:    startColumn,
		ColumnEnd:      endColumn,
	}

	var records []*excelrows.Record
	failed := 0
	for _, path := range args {
		recs, err := convertFile(path, opts)
		if err != nil {
			slog.Error("skipping file", "path", path, "error", err)
			failed++
			continue
		}
		records = append(records, recs...)
	}
	if failed == len(args) {
		return fmt.Errorf("no input file could be processed")
	}

	jsonData, err := encodeRecords(records)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(jsonData))
	return nil
}

// convertFile opens one workbook, drains the selected worksheet region and
// releases the handle on every exit path.
func convertFile(path string, opts excelrows.Options) ([]*excelrows.Record, error) {
	wb, err := xlsxio.Open(path, shared)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	ws, err := wb.Sheet(sheetRef)
	if err != nil {
		return nil, err
	}

	records, warnings, err := excelrows.ReadAll(ws, opts)
	for _, w := range warnings {
		slog.Warn("conversion warning", "path", path, "sheet", ws.Name(), "warning", w)
	}
	if err != nil {
		return nil, err
	}

	slog.Debug("converted worksheet", "path", path, "sheet", ws.Name(), "records", len(records))
	return records, nil
}

func encodeRecords(records []*excelrows.Record) ([]byte, error) {
	if records == nil {
		records = []*excelrows.Record{}
	}
	if pretty {
		return json.MarshalIndent(records, "", "  ")
	}
	return json.Marshal(records)
}
