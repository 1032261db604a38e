package schedjobs

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"
)

const tickCycle = 30 * time.Second

// Scheduler - background job runner managed as a service by conf.Core.
type Scheduler struct {
	ctx          context.Context
	cancel       context.CancelFunc
	mu           sync.Mutex
	wg           sync.WaitGroup
	intervalJobs []*IntervalJob
	oneTimeJobs  []*OneTimeJob
	done         chan error
}

func NewScheduler(parentCtx context.Context) *Scheduler {
	ctx, cancel := context.WithCancel(parentCtx)
	return &Scheduler{
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan error, 1),
	}
}

func (s *Scheduler) Name() string {
	return "job-scheduler"
}

func (s *Scheduler) Start() error {
	go s.loop()
	log.Println("[INFO] job scheduler started")
	return nil
}

func (s *Scheduler) Stop() {
	s.cancel()
}

func (s *Scheduler) Done() <-chan error {
	return s.done
}

func (s *Scheduler) loop() {
	ticker := time.NewTicker(tickCycle)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.RunDue(time.Now())
		case <-s.ctx.Done():
			s.wg.Wait() // wait for running tasks
			log.Println("[INFO] job scheduler stopped")
			s.done <- nil
			return
		}
	}
}

// RunDue fires every job whose schedule has come due at `now`.
// Called by the ticker loop; exported so due handling is testable
// without wall-clock waits.
func (s *Scheduler) RunDue(now time.Time) {
	s.mu.Lock()
	var due []func() // collected under lock, run outside it
	for _, job := range s.intervalJobs {
		if !job.nextRun.After(now) {
			job.nextRun = now.Add(job.Every)
			due = append(due, s.taskRunner(job.ID, job.Task, job.OnFinished))
		}
	}
	remaining := s.oneTimeJobs[:0]
	for _, job := range s.oneTimeJobs {
		if !job.ExecTime.After(now) {
			due = append(due, s.taskRunner(job.ID, job.Task, job.OnFinished))
		} else {
			remaining = append(remaining, job)
		}
	}
	s.oneTimeJobs = remaining
	s.mu.Unlock()

	for _, run := range due {
		run()
	}
}

func (s *Scheduler) taskRunner(jobID string, task func() error, onFinished func(error)) func() {
	return func() {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			defer func() {
				if r := recover(); r != nil {
					log.Printf("[PANIC] Recovered in job %s: %v", jobID, r)
				}
			}()
			err := task()
			if onFinished != nil {
				onFinished(err)
			}
		}()
	}
}

func (s *Scheduler) AddIntervalJob(job *IntervalJob) error {
	if job.Every <= 0 {
		return fmt.Errorf("interval job %s needs a positive interval", job.ID)
	}
	s.mu.Lock()
	job.nextRun = time.Now().Add(job.Every)
	s.intervalJobs = append(s.intervalJobs, job)
	s.mu.Unlock()
	return nil
}

func (s *Scheduler) AddOneTimeJob(job *OneTimeJob) {
	s.mu.Lock()
	s.oneTimeJobs = append(s.oneTimeJobs, job)
	s.mu.Unlock()
}

// DeleteIntervalJob removes an interval job by its ID.
func (s *Scheduler) DeleteIntervalJob(jobID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.intervalJobs[:0] // reuse underlying array
	for _, job := range s.intervalJobs {
		if job.ID != jobID {
			kept = append(kept, job)
		}
	}
	s.intervalJobs = kept
}

// IntervalJobIDs - snapshot of registered interval job IDs.
func (s *Scheduler) IntervalJobIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.intervalJobs))
	for _, job := range s.intervalJobs {
		ids = append(ids, job.ID)
	}
	return ids
}
