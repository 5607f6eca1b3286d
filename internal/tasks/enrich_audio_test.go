package tasks

import (
	"context"
	"errors"
	"testing"

	"github.com/accentlab/lexicon/internal/entities"
	"github.com/accentlab/lexicon/internal/wiktionary"
)

type mockAudioStore struct {
	entries map[uint]*entities.DictionaryEntry
	audio   map[uint]string
}

func newMockAudioStore() *mockAudioStore {
	return &mockAudioStore{
		entries: make(map[uint]*entities.DictionaryEntry),
		audio:   make(map[uint]string),
	}
}

func (m *mockAudioStore) GetEntryByID(id uint) (*entities.DictionaryEntry, error) {
	entry, ok := m.entries[id]
	if !ok {
		return nil, errors.New("entry not found")
	}
	return entry, nil
}

func (m *mockAudioStore) EntriesMissingAudio(limit int) ([]entities.DictionaryEntry, error) {
	var missing []entities.DictionaryEntry
	for _, entry := range m.entries {
		missing = append(missing, *entry)
	}
	return missing, nil
}

func (m *mockAudioStore) SetPronunciationAudio(pronunciationID uint, url string) error {
	m.audio[pronunciationID] = url
	return nil
}

type mockWiktionaryClient struct {
	files []wiktionary.AudioFile
	err   error
}

func (m *mockWiktionaryClient) AudioLookup(ctx context.Context, word string, usOnly bool) ([]wiktionary.AudioFile, error) {
	return m.files, m.err
}

func (m *mockWiktionaryClient) Name() string {
	return "mock"
}

func TestEnrichEntryAudioPrefersUSAccent(t *testing.T) {
	store := newMockAudioStore()
	store.entries[1] = &entities.DictionaryEntry{
		ID:   1,
		Word: "cat",
		Usages: []entities.WordUsage{
			{ID: 1, Pronunciations: []entities.Pronunciation{
				{ID: 10, Phonemic: "kaet"},
				{ID: 11, Phonemic: "kat", AudioURL: "https://example.org/existing.ogg"},
			}},
		},
	}

	client := &mockWiktionaryClient{files: []wiktionary.AudioFile{
		{File: "en-uk-cat.ogg", URL: "https://example.org/uk.ogg", Accent: "uk"},
		{File: "en-us-cat.ogg", URL: "https://example.org/us.ogg", Accent: "us"},
	}}

	processor := EnrichEntryAudioProcessor(store, client)
	if err := processor(context.Background(), EnrichEntryAudioTask{EntryID: 1}); err != nil {
		t.Fatalf("processor failed: %v", err)
	}

	if got := store.audio[10]; got != "https://example.org/us.ogg" {
		t.Errorf("expected US audio for pronunciation 10, got %q", got)
	}
	// Pronunciations with audio are left alone.
	if _, overwritten := store.audio[11]; overwritten {
		t.Error("expected existing audio to be preserved")
	}
}

func TestEnrichEntryAudioNoFiles(t *testing.T) {
	store := newMockAudioStore()
	store.entries[1] = &entities.DictionaryEntry{ID: 1, Word: "zyzzyva"}

	processor := EnrichEntryAudioProcessor(store, &mockWiktionaryClient{})
	if err := processor(context.Background(), EnrichEntryAudioTask{EntryID: 1}); err != nil {
		t.Fatalf("expected no error when no audio exists, got %v", err)
	}
	if len(store.audio) != 0 {
		t.Errorf("expected no audio writes, got %v", store.audio)
	}
}

func TestEnrichEntryAudioLookupError(t *testing.T) {
	store := newMockAudioStore()
	store.entries[1] = &entities.DictionaryEntry{ID: 1, Word: "cat"}

	client := &mockWiktionaryClient{err: errors.New("upstream down")}
	processor := EnrichEntryAudioProcessor(store, client)
	if err := processor(context.Background(), EnrichEntryAudioTask{EntryID: 1}); err == nil {
		t.Fatal("expected lookup error to propagate for retry")
	}
}

func TestQueueDBPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"./lexicon.db", "./lexicon-tasks.db"},
		{"/var/data/lexicon.db", "/var/data/lexicon-tasks.db"},
		{"lexicon", "lexicon-tasks"},
	}
	for _, tt := range tests {
		if got := queueDBPath(tt.in); got != tt.want {
			t.Errorf("queueDBPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
