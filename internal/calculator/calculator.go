package calculator

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"freight-cost/internal/models"
)

type ProgressCallback func(current, total int, msg string)
type LoggerCallback func(msg string)

// RowFunc quotes a single trip row.
type RowFunc func(row models.TripRow) models.ResultRow

// progressEvery is how many rows are processed between progress reports.
const progressEvery = 500

// ComputeBatch quotes every trip row, spreading the rows over one goroutine
// per CPU. Results keep the input order. quote must be safe for concurrent use.
func ComputeBatch(ctx context.Context, trips []models.TripRow, quote RowFunc, onProgress ProgressCallback, logger LoggerCallback) ([]models.ResultRow, error) {
	if len(trips) == 0 {
		return nil, fmt.Errorf("empty trip list")
	}
	if logger == nil {
		logger = func(string) {}
	}

	total := len(trips)
	results := make([]models.ResultRow, total)

	numCPU := runtime.NumCPU()
	if numCPU < 1 {
		numCPU = 1
	}
	chunkSize := (total + numCPU - 1) / numCPU

	var wg sync.WaitGroup
	var processedCount int64

	logger(fmt.Sprintf("Starting parallel quoting with %d CPUs, %d trips", numCPU, total))

	for i := 0; i < numCPU; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if start >= total {
			break
		}
		if end > total {
			end = total
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()

			for idx := s; idx < e; idx++ {
				if ctx.Err() != nil {
					return
				}
				results[idx] = quote(trips[idx])

				count := atomic.AddInt64(&processedCount, 1)
				if count%progressEvery == 0 && onProgress != nil {
					onProgress(int(count), total, "")
				}
			}
		}(start, end)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		logger(fmt.Sprintf("Quoting stopped after %d of %d trips.", atomic.LoadInt64(&processedCount), total))
		return nil, err
	}

	if onProgress != nil {
		onProgress(total, total, "")
	}

	logger("Quoting completed.")
	return results, nil
}

// Totals sums the cost columns of rows that were quoted without error.
func Totals(rows []models.ResultRow) models.CostComparison {
	var sum models.CostComparison
	for _, r := range rows {
		if r.Error != "" {
			continue
		}
		sum.Miles += r.Miles
		sum.DieselTotal += r.DieselTotal
		sum.ElectricTotal += r.ElectricTotal
		sum.Savings += r.Savings
	}
	return sum
}
