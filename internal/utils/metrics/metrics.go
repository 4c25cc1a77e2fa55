package metrics

import (
	"log/slog"
	"sync"
	"time"
)

type Metrics struct {
	mu                 sync.Mutex
	totalJobs          int
	successfulJobs     int
	failedJobs         int
	totalExecutionTime time.Duration
}

type Snapshot struct {
	TotalJobs      int
	SuccessfulJobs int
	FailedJobs     int
	AvgExecTime    time.Duration
}

func (m *Metrics) RecordSuccess(duration time.Duration) {
	m.record(duration, true)
}

func (m *Metrics) RecordFailure(duration time.Duration) {
	m.record(duration, false)
}

func (m *Metrics) record(duration time.Duration, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totalJobs++
	if ok {
		m.successfulJobs++
	} else {
		m.failedJobs++
	}
	m.totalExecutionTime += duration
}

func (m *Metrics) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := Snapshot{
		TotalJobs:      m.totalJobs,
		SuccessfulJobs: m.successfulJobs,
		FailedJobs:     m.failedJobs,
	}
	if m.totalJobs > 0 {
		s.AvgExecTime = m.totalExecutionTime / time.Duration(m.totalJobs)
	}
	return s
}

func (m *Metrics) Log(log *slog.Logger, msg string) {
	s := m.Snapshot()
	log.Info(msg,
		"total_jobs", s.TotalJobs,
		"successful_jobs", s.SuccessfulJobs,
		"failed_jobs", s.FailedJobs,
		"avg_exec_time", s.AvgExecTime,
	)
}
