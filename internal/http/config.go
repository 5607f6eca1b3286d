package http

import (
	"github.com/accentlab/lexicon/internal/database"
	"github.com/accentlab/lexicon/internal/tasks"
	"github.com/accentlab/lexicon/internal/wiktionary"
)

// RouterConfig contains all dependencies and configuration needed to
// create the HTTP router. This replaces a long parameter list in
// NewRouter for better maintainability.
type RouterConfig struct {
	// Core dependencies
	Database        *database.Database
	EntryStore      EntryStore
	LexicalSetStore LexicalSetStore
	PhonemeStore    PhonemeStore

	// Pronunciation index; nil disables the /ortho endpoints.
	OrthoIndex OrthoIndex

	// Wiktionary proxy; nil disables the /wiktionary endpoints.
	WiktionaryClient wiktionary.Client

	// Task queue; nil disables the audio-enrichment endpoints.
	TaskClient *tasks.Client

	// Application info
	Version string
}
