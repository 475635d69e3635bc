package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeStats подменяет WordStatsService, остальные методы не используются джобой
type fakeStats struct {
	WordStatsService
	calls atomic.Int64
	count atomic.Int64
	fail  atomic.Bool
}

func (f *fakeStats) CountWordsLearnedToday(ctx context.Context) (int, error) {
	f.calls.Add(1)
	if f.fail.Load() {
		return 0, context.DeadlineExceeded
	}
	return int(f.count.Load()), nil
}

func TestStatsRefreshJob_RefreshesImmediatelyOnStart(t *testing.T) {
	stats := &fakeStats{}
	stats.count.Store(3)

	job := NewStatsRefreshJob(stats)
	job.Start(context.Background(), time.Hour)
	defer job.Stop()

	assert.Equal(t, 3, job.LearnedToday())
	assert.EqualValues(t, 1, stats.calls.Load())
}

func TestStatsRefreshJob_KeepsLastValueOnFailure(t *testing.T) {
	stats := &fakeStats{}
	stats.count.Store(2)

	job := NewStatsRefreshJob(stats)
	job.Start(context.Background(), time.Hour)
	assert.Equal(t, 2, job.LearnedToday())
	job.Stop()

	stats.fail.Store(true)
	job.Start(context.Background(), time.Hour)
	defer job.Stop()

	// неудачное обновление не затирает последнее значение
	assert.Equal(t, 2, job.LearnedToday())
}

func TestStatsRefreshJob_StopIsIdempotent(t *testing.T) {
	job := NewStatsRefreshJob(&fakeStats{})

	job.Stop()
	job.Start(context.Background(), time.Hour)
	job.Stop()
	job.Stop()
}
