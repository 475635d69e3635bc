package service

import (
	"context"
	"sync"
	"time"
)

type statsRefreshJob struct {
	stats WordStatsService

	mu     sync.Mutex
	count  int
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewStatsRefreshJob creates a statsRefreshJob that re-reads the
// learned-today counter on a ticker. The job is idle until Start is called.
func NewStatsRefreshJob(stats WordStatsService) StatsRefreshJob {
	return &statsRefreshJob{stats: stats}
}

// Start implements StatsRefreshJob. It stops any previously running job,
// refreshes the counter once immediately, then launches a background
// goroutine refreshing every interval. If interval is zero or negative it
// defaults to 5 minutes. The goroutine exits when ctx is cancelled or Stop
// is called.
func (j *statsRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	j.refresh(jobCtx)

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.refresh(jobCtx)
			}
		}
	}()
}

// Stop implements StatsRefreshJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *statsRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *statsRefreshJob) LearnedToday() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.count
}

func (j *statsRefreshJob) refresh(ctx context.Context) {
	count, err := j.stats.CountWordsLearnedToday(ctx)
	if err != nil {
		return
	}

	j.mu.Lock()
	j.count = count
	j.mu.Unlock()
}
