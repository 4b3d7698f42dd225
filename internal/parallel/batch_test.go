package parallel

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBatchCollectsResultsInOrder(t *testing.T) {
	jobs := make([]Job[int], 5)
	for i := 0; i < 5; i++ {
		i := i
		jobs[i] = func(ctx context.Context) (int, error) { return i * i, nil }
	}

	results, err := RunBatch(context.Background(), 2, jobs)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 4, 9, 16}, results)
}

func TestRunBatchPropagatesFirstError(t *testing.T) {
	boom := errors.New("boom")
	jobs := []Job[int]{
		func(ctx context.Context) (int, error) { return 1, nil },
		func(ctx context.Context) (int, error) { return 0, boom },
	}

	_, err := RunBatch(context.Background(), 0, jobs)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestRunBatchRespectsConcurrencyLimit(t *testing.T) {
	var current, maxSeen int32
	jobs := make([]Job[struct{}], 8)
	for i := range jobs {
		jobs[i] = func(ctx context.Context) (struct{}, error) {
			n := atomic.AddInt32(&current, 1)
			for {
				old := atomic.LoadInt32(&maxSeen)
				if n <= old || atomic.CompareAndSwapInt32(&maxSeen, old, n) {
					break
				}
			}
			atomic.AddInt32(&current, -1)
			return struct{}{}, nil
		}
	}

	_, err := RunBatch(context.Background(), 3, jobs)
	require.NoError(t, err)
	assert.LessOrEqual(t, int(maxSeen), 3)
}
