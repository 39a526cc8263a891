package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/deal-desk/internal/metrics"
)

// Job names used as metric labels.
const (
	JobTouchReset = "touch_reset"
	JobRescore    = "rescore"
	JobDigest     = "digest"
)

// Schedule configures the periodic jobs.
type Schedule struct {
	TouchResetCron  string        // standard 5-field cron spec, required
	DigestCron      string        // empty disables the digest
	RescoreInterval time.Duration // non-positive disables rescoring
	Location        *time.Location
}

// Scheduler manages the weekly touch reset, score cache refresh, and daily
// digest jobs.
type Scheduler struct {
	cron    *cron.Cron
	engine  *Engine
	log     *slog.Logger
	entries map[string]cron.EntryID
}

// NewScheduler creates a new Scheduler that runs engine tasks on a schedule.
func NewScheduler(eng *Engine, sched Schedule, log *slog.Logger) (*Scheduler, error) {
	loc := sched.Location
	if loc == nil {
		loc = time.UTC
	}

	s := &Scheduler{
		cron:    cron.New(cron.WithLocation(loc)),
		engine:  eng,
		log:     log,
		entries: make(map[string]cron.EntryID),
	}

	if err := s.add(JobTouchReset, sched.TouchResetCron, s.runTouchReset); err != nil {
		return nil, err
	}

	if sched.RescoreInterval > 0 {
		if err := s.add(JobRescore, "@every "+sched.RescoreInterval.String(), s.runRescore); err != nil {
			return nil, err
		}
	}

	if sched.DigestCron != "" {
		if err := s.add(JobDigest, sched.DigestCron, s.runDigest); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *Scheduler) add(job, spec string, fn func()) error {
	id, err := s.cron.AddFunc(spec, fn)
	if err != nil {
		return fmt.Errorf("scheduling %s %q: %w", job, spec, err)
	}
	s.entries[job] = id
	return nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started", "jobs", len(s.entries))
	s.cron.Start()
	s.SyncNextRunTimestamps()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// Next returns the next run time of a job, or the zero time when the job is
// not registered or the scheduler has not started.
func (s *Scheduler) Next(job string) time.Time {
	id, ok := s.entries[job]
	if !ok {
		return time.Time{}
	}
	return s.cron.Entry(id).Next
}

// SyncNextRunTimestamps publishes each job's next run time as a gauge.
func (s *Scheduler) SyncNextRunTimestamps() {
	for job := range s.entries {
		if next := s.Next(job); !next.IsZero() {
			metrics.JobNextRunTimestamp.WithLabelValues(job).Set(float64(next.Unix()))
		}
	}
}

func (s *Scheduler) runTouchReset() {
	s.run(JobTouchReset, func(ctx context.Context) error {
		_, err := s.engine.ResetWeeklyTouches(ctx)
		return err
	})
}

func (s *Scheduler) runRescore() {
	s.run(JobRescore, func(ctx context.Context) error {
		n, err := s.engine.RescoreAll(ctx)
		if err == nil {
			s.log.Debug("score cache refreshed", "updated", n)
		}
		return err
	})
}

func (s *Scheduler) runDigest() {
	s.run(JobDigest, func(ctx context.Context) error {
		_, err := s.engine.RunDigest(ctx)
		return err
	})
}

func (s *Scheduler) run(job string, fn func(context.Context) error) {
	ctx := context.Background()
	start := time.Now()
	s.log.Info("scheduled job starting", "job", job)

	err := fn(ctx)

	metrics.JobDuration.WithLabelValues(job).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.JobFailuresTotal.WithLabelValues(job).Inc()
		s.log.Error("scheduled job failed", "job", job, "error", err)
	}
	s.SyncNextRunTimestamps()
}
