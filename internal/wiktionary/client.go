package wiktionary

import (
	"context"
	"errors"
)

// ErrNotFound is returned when Wiktionary has no page for the requested word.
var ErrNotFound = errors.New("word not found")

// AudioFile is one pronunciation audio hit for a word.
type AudioFile struct {
	File   string `json:"file"`
	URL    string `json:"url"`
	Accent string `json:"accent,omitempty"` // "us", "uk", "au" or "" when unknown
}

// Client defines the interface for Wiktionary audio lookups.
type Client interface {
	AudioLookup(ctx context.Context, word string, usOnly bool) ([]AudioFile, error)
	Name() string
}
