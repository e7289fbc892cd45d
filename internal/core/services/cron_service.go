package services

import (
	"log"

	"github.com/robfig/cron/v3"
)

// sweeper is the part of the brute-force guard the cron job needs
type sweeper interface {
	Sweep() int
}

// CronService runs periodic maintenance jobs
type CronService struct {
	cron  *cron.Cron
	guard sweeper
}

// NewCronService creates a new cron service
func NewCronService(guard sweeper) *CronService {
	return &CronService{
		cron:  cron.New(),
		guard: guard,
	}
}

// Start registers and starts all scheduled jobs
func (s *CronService) Start() {
	// Expired brute-force counters are only dropped lazily on access;
	// this sweep keeps the map from growing with abandoned clients.
	s.cron.AddFunc("@every 15m", func() {
		if removed := s.guard.Sweep(); removed > 0 {
			log.Printf("🧹 Login guard sweep: removed %d expired entries", removed)
		}
	})

	s.cron.Start()
	log.Println("✅ Cron service started")
}

// Stop stops all scheduled jobs
func (s *CronService) Stop() {
	s.cron.Stop()
	log.Println("🛑 Cron service stopped")
}
