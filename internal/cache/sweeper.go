package cache

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ndewijer/mutual-fund-explorer-backend/internal/logger"
)

// Sweepable is any cache the sweeper can evict from.
type Sweepable interface {
	Name() string
	Sweep(now time.Time) int
}

// Sweeper periodically evicts expired entries from a set of caches.
type Sweeper struct {
	cron   *cron.Cron
	caches []Sweepable
	logger *logger.Logger
}

// NewSweeper schedules a sweep of every cache on the given cron spec
// (for example "@every 10m"). The schedule only runs after Start.
func NewSweeper(schedule string, log *logger.Logger, caches ...Sweepable) (*Sweeper, error) {
	s := &Sweeper{
		cron:   cron.New(),
		caches: caches,
		logger: log,
	}

	if _, err := s.cron.AddFunc(schedule, s.SweepAll); err != nil {
		return nil, fmt.Errorf("invalid sweep schedule %q: %w", schedule, err)
	}

	return s, nil
}

// SweepAll sweeps every registered cache once.
func (s *Sweeper) SweepAll() {
	now := time.Now()
	for _, c := range s.caches {
		if removed := c.Sweep(now); removed > 0 {
			s.logger.Debug().Str("cache", c.Name()).Int("removed", removed).Msg("Swept expired cache entries")
		}
	}
}

// Start begins running the schedule in the background.
func (s *Sweeper) Start() {
	s.cron.Start()
}

// Stop halts the schedule and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
}
