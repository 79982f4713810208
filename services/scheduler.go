// services/scheduler.go
package services

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// StartMaintenanceScheduler runs the periodic feed sweep: re-trim past the
// cap and drop entries whose source lesson went private after it was
// appended.
func (s *FeedService) StartMaintenanceScheduler() {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(10*time.Minute),
		gocron.NewTask(func() {
			dropped := s.SweepStale()
			if dropped > 0 {
				log.Printf("🧹 [FEED] Swept %d stale feed entr(ies)", dropped)
			}
		}),
	)
}
