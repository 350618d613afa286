package batch

import (
	"context"
	"path/filepath"
	"testing"

	"freight-cost/internal/extractor"
	"freight-cost/internal/nlp"
	"freight-cost/internal/quote"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, path, sheet string, queries ...string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	_, err := f.NewSheet(sheet)
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue(sheet, "A1", "Query"))
	for i, q := range queries {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, f.SetCellValue(sheet, cell, q))
	}
	require.NoError(t, f.SaveAs(path))
}

func TestProcess(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "trips.xlsx")
	writeWorkbook(t, input, "Trips", "How much for a 1,200 mile trip?", "Hello there", "300")

	svc := quote.NewService(extractor.New(nlp.Default()))
	output := OutputPath(dir, input)
	var logs []string

	summary, err := Process(context.Background(), input, output,
		Options{TripSheet: "Trips", ResultSheet: "Results"},
		svc.QuoteRow, nil, func(msg string) { logs = append(logs, msg) })
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Rows)
	assert.Equal(t, 2, summary.Quoted)
	assert.Equal(t, output, summary.Output)
	assert.NotEmpty(t, logs)

	f, err := excelize.OpenFile(output)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Results")
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, "1200", rows[1][2])
	assert.Equal(t, quote.InvalidDistanceMessage, rows[2][6])
	assert.Equal(t, "300", rows[3][2])
	assert.Equal(t, "1500", rows[4][2])
}

func TestProcess_MissingFile(t *testing.T) {
	svc := quote.NewService(extractor.New(nlp.Default()))
	_, err := Process(context.Background(), filepath.Join(t.TempDir(), "nope.xlsx"), "out.xlsx",
		Options{TripSheet: "Trips", ResultSheet: "Results"}, svc.QuoteRow, nil, nil)
	assert.Error(t, err)
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("output", "abc_trips_quotes.xlsx"), OutputPath("output", "uploads/abc_trips.xlsx"))
}
