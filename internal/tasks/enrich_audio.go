package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/accentlab/lexicon/internal/entities"
	"github.com/accentlab/lexicon/internal/wiktionary"
)

// AudioStore defines the store operations needed for audio enrichment.
type AudioStore interface {
	GetEntryByID(id uint) (*entities.DictionaryEntry, error)
	EntriesMissingAudio(limit int) ([]entities.DictionaryEntry, error)
	SetPronunciationAudio(pronunciationID uint, url string) error
}

// EnrichEntryAudioTask resolves Wiktionary audio for one entry's
// pronunciations that have no cached URL yet.
type EnrichEntryAudioTask struct {
	EntryID uint `json:"entry_id"`
}

func (t EnrichEntryAudioTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "enrich_entry_audio",
		MaxAttempts: 3,
		Backoff:     30 * time.Second,
		Timeout:     1 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// EnrichEntryAudioProcessor creates a processor for per-entry audio
// enrichment. US audio is preferred; the first available file wins
// otherwise.
func EnrichEntryAudioProcessor(store AudioStore, client wiktionary.Client) backlite.QueueProcessor[EnrichEntryAudioTask] {
	return func(ctx context.Context, task EnrichEntryAudioTask) error {
		entry, err := store.GetEntryByID(task.EntryID)
		if err != nil {
			return fmt.Errorf("get entry %d: %w", task.EntryID, err)
		}

		files, err := client.AudioLookup(ctx, entry.Word, false)
		if err != nil {
			return fmt.Errorf("audio lookup for %q: %w", entry.Word, err)
		}
		if len(files) == 0 {
			log.Printf("[TASK] No audio found for %q", entry.Word)
			return nil
		}

		best := files[0]
		for _, f := range files {
			if f.Accent == "us" {
				best = f
				break
			}
		}

		enriched := 0
		for _, usage := range entry.Usages {
			for _, pron := range usage.Pronunciations {
				if pron.AudioURL != "" {
					continue
				}
				if err := store.SetPronunciationAudio(pron.ID, best.URL); err != nil {
					return fmt.Errorf("set audio for pronunciation %d: %w", pron.ID, err)
				}
				enriched++
			}
		}

		log.Printf("[TASK] Enriched %q with audio (%d pronunciations)", entry.Word, enriched)
		return nil
	}
}

func NewEnrichEntryAudioQueue(store AudioStore, client wiktionary.Client) backlite.Queue {
	return backlite.NewQueue(EnrichEntryAudioProcessor(store, client))
}

// EnrichAllAudioTask fans out per-entry audio tasks for every entry with a
// pronunciation missing audio.
type EnrichAllAudioTask struct{}

func (t EnrichAllAudioTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "enrich_all_audio",
		MaxAttempts: 1,
		Backoff:     time.Minute,
		Timeout:     5 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// EnrichAllAudioProcessor enumerates entries missing audio and enqueues a
// per-entry task for each.
func EnrichAllAudioProcessor(store AudioStore, queue *Client) backlite.QueueProcessor[EnrichAllAudioTask] {
	return func(ctx context.Context, task EnrichAllAudioTask) error {
		entries, err := store.EntriesMissingAudio(0)
		if err != nil {
			return fmt.Errorf("list entries missing audio: %w", err)
		}

		for _, entry := range entries {
			if _, err := queue.Add(EnrichEntryAudioTask{EntryID: entry.ID}).Save(); err != nil {
				return fmt.Errorf("enqueue audio task for entry %d: %w", entry.ID, err)
			}
		}

		log.Printf("[TASK] Queued audio enrichment for %d entries", len(entries))
		return nil
	}
}

func NewEnrichAllAudioQueue(store AudioStore, queue *Client) backlite.Queue {
	return backlite.NewQueue(EnrichAllAudioProcessor(store, queue))
}
