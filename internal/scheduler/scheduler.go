// Package scheduler triggers a refresh cycle for every configured location
// on a fixed cadence.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/kmorisaki/tenkijp-weather-service/internal/logger"
	"github.com/kmorisaki/tenkijp-weather-service/internal/service"
)

// DefaultInterval is the refresh cadence when none is configured.
const DefaultInterval = 30 * time.Minute

const cycleTimeout = 30 * time.Second

// Scheduler periodically refreshes forecast data for configured locations.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *service.WeatherService
	interval  time.Duration
}

// New creates a new Scheduler.
func New(svc *service.WeatherService, interval time.Duration) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.Local),
		service:   svc,
		interval:  interval,
	}
}

// Start schedules the periodic refresh job and starts the underlying
// scheduler. Failed cycles are logged; the previous record stays in place as
// the last known good value.
func (s *Scheduler) Start() error {
	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = int(DefaultInterval.Minutes())
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(s.runCycle)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

func (s *Scheduler) runCycle() {
	ctx, cancel := context.WithTimeout(context.Background(), cycleTimeout)
	defer cancel()

	locations, err := s.service.Locations(ctx)
	if err != nil {
		logger.Error(fmt.Errorf("scheduler: failed to load locations: %w", err))
		return
	}

	var wg sync.WaitGroup
	for _, loc := range locations {
		loc := loc
		wg.Add(1)
		go func() {
			defer wg.Done()

			refreshCtx, cancel := context.WithTimeout(context.Background(), cycleTimeout)
			defer cancel()

			if _, err := s.service.Refresh(refreshCtx, loc.URLPath); err != nil {
				logger.Error(fmt.Errorf("scheduler: refresh failed for %s: %w", loc.URLPath, err))
			}
		}()
	}
	wg.Wait()
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
