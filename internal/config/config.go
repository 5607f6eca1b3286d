package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Ortho
		Wiktionary
		Tasks
		AudioSync
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path string
	}
	Ortho struct {
		CMUDictPath   string
		FrequencyPath string
	}
	Wiktionary struct {
		BaseURL string
	}
	Tasks struct {
		Enabled         bool
		Workers         int
		ReleaseAfter    time.Duration
		CleanupInterval time.Duration
	}
	AudioSync struct {
		Enabled  bool
		Schedule string // Cron format: "0 3 * * *" = daily at 03:00
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8189)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("cmudict_path", DefaultCMUDictPath)
	v.SetDefault("frequency_path", DefaultFrequencyPath)
	v.SetDefault("wiktionary_base_url", "")

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 2)
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")

	// Audio sync defaults
	v.SetDefault("audio_sync_enabled", false)
	v.SetDefault("audio_sync_schedule", "0 3 * * *")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Ortho: Ortho{
			CMUDictPath:   v.GetString("CMUDICT_PATH"),
			FrequencyPath: v.GetString("FREQUENCY_PATH"),
		},
		Wiktionary: Wiktionary{
			BaseURL: v.GetString("WIKTIONARY_BASE_URL"),
		},
		Tasks: Tasks{
			Enabled:         v.GetBool("TASKS_ENABLED"),
			Workers:         v.GetInt("TASK_WORKERS"),
			ReleaseAfter:    v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval: v.GetDuration("TASK_CLEANUP_INTERVAL"),
		},
		AudioSync: AudioSync{
			Enabled:  v.GetBool("AUDIO_SYNC_ENABLED"),
			Schedule: v.GetString("AUDIO_SYNC_SCHEDULE"),
		},
	}
}
