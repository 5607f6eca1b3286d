package scheduler

import (
	"context"
	"os"
	"testing"

	"github.com/accentlab/lexicon/internal/tasks"
)

func setupTaskClient(t *testing.T) *tasks.Client {
	t.Helper()
	dbPath := "./test_scheduler_" + t.Name() + ".db"

	client, err := tasks.NewClient(dbPath, tasks.DefaultConfig())
	if err != nil {
		t.Fatalf("failed to create task client: %v", err)
	}
	t.Cleanup(func() {
		client.Close()
		os.Remove("./test_scheduler_" + t.Name() + "-tasks.db")
		os.Remove("./test_scheduler_" + t.Name() + "-tasks.db-wal")
		os.Remove("./test_scheduler_" + t.Name() + "-tasks.db-shm")
	})
	return client
}

func TestStartStop(t *testing.T) {
	s := NewAudioSyncScheduler(setupTaskClient(t), "0 3 * * *")

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if !s.IsRunning() {
		t.Fatal("expected scheduler to be running after start")
	}

	s.Stop()

	if s.IsRunning() {
		t.Error("expected scheduler to be stopped")
	}
	// The context watcher must be released, not left blocked forever.
	if s.cancelFunc != nil {
		t.Error("expected cancel func to be cleared on stop")
	}

	// Stopping again is a no-op.
	s.Stop()
}

func TestStartWithoutTaskClient(t *testing.T) {
	s := NewAudioSyncScheduler(nil, "0 3 * * *")

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("start with nil task client should be a no-op, got %v", err)
	}
	if s.IsRunning() {
		t.Error("expected scheduler to stay idle without a task client")
	}
}

func TestStartInvalidSchedule(t *testing.T) {
	s := NewAudioSyncScheduler(setupTaskClient(t), "not a schedule")

	if err := s.Start(context.Background()); err == nil {
		t.Fatal("expected an error for an invalid cron expression")
	}
	if s.IsRunning() {
		t.Error("expected scheduler not to run after a failed start")
	}
}
