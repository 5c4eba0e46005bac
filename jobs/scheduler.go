// Package jobs holds the scheduled maintenance jobs: a heartbeat that
// probes the API and an order-reminder notifier. Both are fire-and-log
// wrappers over the HTTP surface; a failed run is logged and the next
// tick tries again.
package jobs

import (
	"log/slog"
	"sync"
	"time"
)

// Job is a scheduled unit of work.
type Job interface {
	Name() string
	Run()
}

type entry struct {
	job      Job
	interval time.Duration
}

// Scheduler runs each registered job on its own ticker until stopped.
type Scheduler struct {
	entries []entry
	stop    chan struct{}
	wg      sync.WaitGroup
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{stop: make(chan struct{})}
}

// Add registers a job to run every interval.
func (s *Scheduler) Add(job Job, interval time.Duration) {
	s.entries = append(s.entries, entry{job: job, interval: interval})
}

// Start launches one goroutine per job. Each job also runs once
// immediately so a freshly started service reports a heartbeat without
// waiting a full interval.
func (s *Scheduler) Start() {
	for _, e := range s.entries {
		s.wg.Add(1)
		go func(e entry) {
			defer s.wg.Done()
			slog.Info("job scheduled", "job", e.job.Name(), "interval", e.interval.String())
			e.job.Run()
			ticker := time.NewTicker(e.interval)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					e.job.Run()
				case <-s.stop:
					return
				}
			}
		}(e)
	}
}

// Stop halts all jobs and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	close(s.stop)
	s.wg.Wait()
}
