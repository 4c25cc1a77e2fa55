package workers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunKeepsJobOrder(t *testing.T) {
	log := slog.New(slog.NewTextHandler(os.Stdout, nil))
	pool, err := New(log, 4)
	require.NoError(t, err)
	defer pool.Release()

	errOdd := errors.New("odd")
	jobs := make([]Job[int, string], 0, 10)
	for i := 0; i < 10; i++ {
		jobs = append(jobs, Job[int, string]{
			Description: JobDescriptor{ID: JobID(fmt.Sprint(i)), JobType: "test"},
			Args:        i,
			ExecFn: func(ctx context.Context, n int) (string, error) {
				time.Sleep(time.Duration(10-n) * time.Millisecond)
				if n%2 == 1 {
					return "", errOdd
				}
				return fmt.Sprintf("job-%d", n), nil
			},
		})
	}

	results := Run(context.Background(), pool, jobs)
	require.Len(t, results, 10)
	for i, res := range results {
		assert.Equal(t, JobID(fmt.Sprint(i)), res.Description.ID)
		if i%2 == 1 {
			assert.ErrorIs(t, res.Err, errOdd)
			continue
		}
		require.NoError(t, res.Err)
		assert.Equal(t, fmt.Sprintf("job-%d", i), res.Value)
	}

	snap := pool.Metrics().Snapshot()
	assert.Equal(t, 10, snap.TotalJobs)
	assert.Equal(t, 5, snap.SuccessfulJobs)
	assert.Equal(t, 5, snap.FailedJobs)
	assert.Positive(t, snap.AvgExecTime)
}

func TestRunCancelled(t *testing.T) {
	log := slog.New(slog.NewTextHandler(os.Stdout, nil))
	pool, err := New(log, 0)
	require.NoError(t, err)
	defer pool.Release()
	assert.Equal(t, 1, pool.Cap())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := Run(ctx, pool, []Job[int, int]{{
		ExecFn: func(ctx context.Context, n int) (int, error) { return n, nil },
		Args:   1,
	}})
	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, context.Canceled)
}

func TestRunRecoversPanickingJob(t *testing.T) {
	log := slog.New(slog.NewTextHandler(os.Stdout, nil))
	pool, err := New(log, 2)
	require.NoError(t, err)
	defer pool.Release()

	results := Run(context.Background(), pool, []Job[int, string]{
		{
			Description: JobDescriptor{ID: "good", JobType: "test"},
			Args:        1,
			ExecFn:      func(ctx context.Context, n int) (string, error) { return "ok", nil },
		},
		{
			Description: JobDescriptor{ID: "bad", JobType: "test"},
			Args:        2,
			ExecFn: func(ctx context.Context, n int) (string, error) {
				panic("broken object reference")
			},
		},
	})
	require.Len(t, results, 2)

	require.NoError(t, results[0].Err)
	assert.Equal(t, "ok", results[0].Value)

	assert.ErrorIs(t, results[1].Err, ErrJobPanicked)
	assert.Contains(t, results[1].Err.Error(), "broken object reference")
	assert.Equal(t, JobID("bad"), results[1].Description.ID)
	assert.Empty(t, results[1].Value)

	snap := pool.Metrics().Snapshot()
	assert.Equal(t, 2, snap.TotalJobs)
	assert.Equal(t, 1, snap.SuccessfulJobs)
	assert.Equal(t, 1, snap.FailedJobs)
}
