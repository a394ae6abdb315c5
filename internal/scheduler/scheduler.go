package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Scheduler re-runs the dashboard render on a cron schedule (watch
// mode). Each firing is an independent snapshot fetch; no state
// carries over between runs.
type Scheduler struct {
	Cron *cron.Cron
	Ctx  context.Context
	Task func()
}

// NewScheduler creates a scheduler around the given render task.
func NewScheduler(ctx context.Context, task func()) *Scheduler {
	return &Scheduler{
		Cron: cron.New(cron.WithSeconds()),
		Ctx:  ctx,
		Task: task,
	}
}

// Register adds the refresh task under the given cron expression.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.run); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

func (s *Scheduler) run() {
	select {
	case <-s.Ctx.Done():
		return
	default:
	}
	s.Task()
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] watch scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] watch scheduler stopped")
}
