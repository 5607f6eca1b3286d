// Package scheduler runs the periodic Wiktionary audio sync: on each tick
// it enqueues a fan-out task that refreshes missing pronunciation audio.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/accentlab/lexicon/internal/tasks"
)

// AudioSyncScheduler enqueues the bulk audio-enrichment task on a cron
// schedule.
type AudioSyncScheduler struct {
	taskClient *tasks.Client
	schedule   string

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewAudioSyncScheduler creates a new scheduler instance.
func NewAudioSyncScheduler(taskClient *tasks.Client, schedule string) *AudioSyncScheduler {
	return &AudioSyncScheduler{
		taskClient: taskClient,
		schedule:   schedule,
		cron:       cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler. A nil task client disables it.
func (s *AudioSyncScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}
	if s.taskClient == nil {
		log.Printf("Audio sync scheduler: task queue disabled, skipping")
		return nil
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		s.runSync()
	})
	if err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", s.schedule, err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Audio sync scheduler: started with schedule %q", s.schedule)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop halts the scheduler.
func (s *AudioSyncScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}
	s.cron.Remove(s.entryID)
	s.cron.Stop()
	// Release the context watcher started in Start.
	if s.cancelFunc != nil {
		s.cancelFunc()
		s.cancelFunc = nil
	}
	s.isRunning = false
	log.Printf("Audio sync scheduler: stopped")
}

// IsRunning reports whether the scheduler is active.
func (s *AudioSyncScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

func (s *AudioSyncScheduler) runSync() {
	if _, err := s.taskClient.Add(tasks.EnrichAllAudioTask{}).Save(); err != nil {
		log.Printf("Audio sync scheduler: failed to enqueue sync task: %v", err)
		return
	}
	log.Printf("Audio sync scheduler: queued audio enrichment sweep")
}
