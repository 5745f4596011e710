// Package processor runs the per-record pipeline stage across a worker
// pool. Results are written by input index, so the output slice keeps
// the input order regardless of worker scheduling. Order matters
// downstream: the curation sort is stable and ties resolve by input
// position.
package processor

import (
	"context"
	"sync"
	"time"

	"github.com/jonesrussell/digest-curator/internal/domain"
	"github.com/jonesrussell/digest-curator/internal/logger"
)

const defaultConcurrency = 10

// Outcome is the result of pushing one record through the stage. Either
// Item is set (the record survived) or Bucket and Filtered describe why
// it was dropped.
type Outcome struct {
	Item     *domain.CuratedItem
	Bucket   string
	Filtered domain.FilteredRecord
}

// StageFunc evaluates a single record.
type StageFunc func(ctx context.Context, record *domain.ContentRecord) Outcome

// Pool fans records out to a fixed number of workers.
type Pool struct {
	concurrency int
	logger      logger.Logger
}

// New returns a pool with the given worker count.
func New(concurrency int, log logger.Logger) *Pool {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &Pool{concurrency: concurrency, logger: log}
}

// Run applies stage to every record and returns one outcome per input,
// index-aligned with records. Returns ctx.Err() when the context is
// cancelled before the batch completes.
func (p *Pool) Run(ctx context.Context, records []*domain.ContentRecord, stage StageFunc) ([]Outcome, error) {
	if len(records) == 0 {
		return []Outcome{}, nil
	}

	start := time.Now()

	jobs := make(chan int, len(records))
	results := make([]Outcome, len(records))

	workers := p.concurrency
	if workers > len(records) {
		workers = len(records)
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}
				// Each worker owns distinct indices, so no lock is
				// needed around the results slice.
				results[i] = stage(ctx, records[i])
			}
		}()
	}

	for i := range records {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if p.logger != nil {
		duration := time.Since(start)
		p.logger.Debug("stage batch complete",
			logger.Int("records", len(records)),
			logger.Int("workers", workers),
			logger.Int64("duration_ms", duration.Milliseconds()))
	}

	return results, nil
}
