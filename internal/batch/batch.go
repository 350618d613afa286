// Package batch quotes every trip in a workbook and writes the results to a new one.
package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"freight-cost/internal/calculator"
	"freight-cost/internal/excel"
	"freight-cost/internal/format"
)

type Options struct {
	TripSheet   string
	ResultSheet string
}

type Summary struct {
	Rows   int
	Quoted int
	Output string
}

// OutputPath names the result workbook for inputPath inside dir.
func OutputPath(dir, inputPath string) string {
	base := filepath.Base(inputPath)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, name+"_quotes.xlsx")
}

// Process reads opts.TripSheet from inputPath, quotes each row with quote and
// writes opts.ResultSheet to outputPath.
func Process(ctx context.Context, inputPath, outputPath string, opts Options, quote calculator.RowFunc, onProgress calculator.ProgressCallback, logger calculator.LoggerCallback) (*Summary, error) {
	if logger == nil {
		logger = func(string) {}
	}

	logger(fmt.Sprintf("Processing file: %s", filepath.Base(inputPath)))
	f, err := excel.OpenFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("could not open workbook: %w", err)
	}
	defer f.Close()

	logger(fmt.Sprintf("Reading sheet %s...", opts.TripSheet))
	trips, err := excel.ReadTrips(f, opts.TripSheet)
	if err != nil {
		return nil, fmt.Errorf("could not read sheet %s: %w", opts.TripSheet, err)
	}
	logger(fmt.Sprintf("%d trips read.", len(trips)))

	results, err := calculator.ComputeBatch(ctx, trips, quote, onProgress, logger)
	if err != nil {
		return nil, fmt.Errorf("quoting failed: %w", err)
	}

	totals := calculator.Totals(results)
	quoted := 0
	for _, r := range results {
		if r.Error == "" {
			quoted++
		}
	}
	logger(fmt.Sprintf("%d of %d trips quoted, %s miles, total savings %s.",
		quoted, len(results), format.Miles(totals.Miles), format.Money(totals.Savings)))

	logger("Writing result file...")
	if err := excel.WriteResult(outputPath, results, totals, opts.ResultSheet); err != nil {
		return nil, fmt.Errorf("could not write result file: %w", err)
	}

	return &Summary{Rows: len(results), Quoted: quoted, Output: outputPath}, nil
}
