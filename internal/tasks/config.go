package tasks

import "time"

// Config holds the worker-pool settings for the task queue. Retry and
// timeout policy is defined per queue, not here.
type Config struct {
	// Workers is the number of concurrent task workers. Default: 2
	Workers int

	// ReleaseAfter is when stuck tasks are released back to the queue. Default: 15m
	ReleaseAfter time.Duration

	// CleanupInterval is how often completed tasks are cleaned up. Default: 1h
	CleanupInterval time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Workers:         2,
		ReleaseAfter:    15 * time.Minute,
		CleanupInterval: 1 * time.Hour,
	}
}
