// Package scheduler runs the twice-daily request summary broadcasts. It only
// talks to the subscribers package through its public Broadcast entry point,
// so the jobs stay decoupled from the HTTP process.
package scheduler

import (
	"log"
	"sync"
	"time"

	"warehouse-backend/internal/notify"
	"warehouse-backend/internal/requests"
	"warehouse-backend/internal/subscribers"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

type Scheduler struct {
	cron   *cron.Cron
	db     *gorm.DB
	mailer notify.Mailer

	// Morning and evening jobs share this so runs never overlap.
	mu sync.Mutex
}

func New(db *gorm.DB, mailer notify.Mailer) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(requests.Kolkata)),
		db:     db,
		mailer: mailer,
	}
}

// Start schedules the 9:30 AM and 5:00 PM local-time broadcasts and launches
// the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("30 9 * * *", func() { s.run("morning") }); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("0 17 * * *", func() { s.run("evening") }); err != nil {
		return err
	}

	s.cron.Start()
	log.Println("Daily broadcast scheduler started (9:30 AM and 5:00 PM local)")
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) run(timeslot string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log.Printf("Starting daily %s summary broadcast", timeslot)
	if _, err := subscribers.Broadcast(s.db, s.mailer, timeslot, time.Now()); err != nil {
		log.Printf("Error in %s broadcast job: %v", timeslot, err)
	}
}
