// services/scheduler.go
package services

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// StartAwardsScheduler runs the weekly awards job every Saturday 23:55 UTC,
// right before the Sunday-midnight window rolls over, so the week is scored
// while its posts are still inside the trailing window.
func (s *AwardsService) StartAwardsScheduler() {
	sched, _ := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	sched.Start()

	_, _ = sched.NewJob(
		gocron.WeeklyJob(
			1,
			gocron.NewWeekdays(time.Saturday),
			gocron.NewAtTimes(gocron.NewAtTime(23, 55, 0)),
		),
		gocron.NewTask(func() {
			log.Println("[Scheduler] Running weekly awards computation…")
			if err := s.ComputeWeeklyAwards(); err != nil {
				log.Printf("[Scheduler] ❌ Weekly awards run failed: %v", err)
			}
		}),
	)
}
