package workers

import (
	"context"
	"errors"
	"fmt"
	"hirelens/internal/lib/logger/sl"
	"hirelens/internal/utils/metrics"
	"log/slog"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
)

// ErrJobPanicked wraps a panic recovered from a job.
var ErrJobPanicked = errors.New("job panicked")

// WorkerPool runs jobs on a bounded ants pool and records per-job metrics.
type WorkerPool struct {
	pool    *ants.Pool
	log     *slog.Logger
	metrics *metrics.Metrics
}

func New(log *slog.Logger, numWorkers int) (*WorkerPool, error) {
	const op = "workers.New"

	if numWorkers < 1 {
		numWorkers = 1
	}
	pool, err := ants.NewPool(numWorkers)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &WorkerPool{
		pool:    pool,
		log:     log,
		metrics: &metrics.Metrics{},
	}, nil
}

func (wp *WorkerPool) Metrics() *metrics.Metrics {
	return wp.metrics
}

func (wp *WorkerPool) Cap() int {
	return wp.pool.Cap()
}

func (wp *WorkerPool) Release() {
	wp.pool.Release()
}

// Run submits every job and waits for all of them. Results are returned in
// job order regardless of completion order. Jobs not yet submitted when ctx
// is cancelled fail with the context error.
func Run[A, R any](ctx context.Context, wp *WorkerPool, jobs []Job[A, R]) []Result[R] {
	results := make([]Result[R], len(jobs))
	var wg sync.WaitGroup

	for i, job := range jobs {
		if err := ctx.Err(); err != nil {
			results[i] = Result[R]{Err: err, Description: job.Description}
			continue
		}

		wg.Add(1)
		err := wp.pool.Submit(func() {
			defer wg.Done()

			start := time.Now()
			defer func() {
				if r := recover(); r != nil {
					results[i] = Result[R]{
						Err:         fmt.Errorf("%w: %v", ErrJobPanicked, r),
						Description: job.Description,
					}
					wp.metrics.RecordFailure(time.Since(start))
					wp.log.Error("Job panicked",
						"id", job.Description.ID,
						"type", job.Description.JobType,
						"panic", r,
					)
				}
			}()

			result := job.execute(ctx)
			if result.Err != nil {
				wp.metrics.RecordFailure(time.Since(start))
				wp.log.Error("Job failed",
					"id", job.Description.ID,
					"type", job.Description.JobType,
					sl.Err(result.Err),
				)
			} else {
				wp.metrics.RecordSuccess(time.Since(start))
			}
			results[i] = result
		})
		if err != nil {
			wg.Done()
			results[i] = Result[R]{Err: err, Description: job.Description}
		}
	}

	wg.Wait()
	return results
}
