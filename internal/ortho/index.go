// Package ortho serves orthographic lookups over the CMU pronouncing
// dictionary: a word's ARPABET records, and frequency-ranked word lists for
// a lexical set or consonant phoneme.
package ortho

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
)

// Index is the in-memory lookup structure built once at startup from the
// dictionary and frequency files. Reads are guarded for safety should a
// reload path ever mutate the maps.
type Index struct {
	mu    sync.RWMutex
	prons map[string][]Record
	freq  map[string]int64
}

// NewIndex builds an index from parsed records and frequencies.
func NewIndex(records []Record, freqs map[string]int64) *Index {
	prons := make(map[string][]Record)
	for _, rec := range records {
		prons[rec.Word] = append(prons[rec.Word], rec)
	}
	if freqs == nil {
		freqs = make(map[string]int64)
	}
	return &Index{prons: prons, freq: freqs}
}

// LoadIndex reads the dictionary and frequency files and builds the index.
// The frequency path may be empty; lexical lookups then fall back to
// alphabetical order.
func LoadIndex(dictPath, freqPath string) (*Index, error) {
	dictFile, err := os.Open(dictPath)
	if err != nil {
		return nil, fmt.Errorf("open cmudict: %w", err)
	}
	defer dictFile.Close()

	records, err := ParseCMUDict(dictFile)
	if err != nil {
		return nil, err
	}

	var freqs map[string]int64
	if freqPath != "" {
		freqFile, err := os.Open(freqPath)
		if err != nil {
			return nil, fmt.Errorf("open frequency list: %w", err)
		}
		defer freqFile.Close()

		freqs, err = ParseFrequencies(freqFile)
		if err != nil {
			return nil, err
		}
	}

	return NewIndex(records, freqs), nil
}

// WordResult is the response shape for a single-word lookup.
type WordResult struct {
	Word           string   `json:"word"`
	Frequency      int64    `json:"frequency"`
	Pronunciations []Record `json:"pronunciations"`
}

// Word returns the CMU records for a headword, case-insensitively.
func (ix *Index) Word(word string) (*WordResult, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	key := strings.ToLower(strings.TrimSpace(word))
	records, ok := ix.prons[key]
	if !ok {
		return nil, false
	}
	return &WordResult{
		Word:           key,
		Frequency:      ix.freq[key],
		Pronunciations: records,
	}, true
}

// Size returns the number of distinct headwords in the index.
func (ix *Index) Size() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.prons)
}

// Lex returns up to limit words whose pronunciation matches the ARPABET
// pattern set of the given lexical-set or consonant-phoneme label, filtered
// by stress digits, with contraction fragments excluded, sorted by
// frequency descending (alphabetical for ties).
func (ix *Index) Lex(label string, limit int, stress string) ([]WordResult, error) {
	phones, rColored, ok := PhonesForLabel(label)
	if !ok {
		return nil, fmt.Errorf("unknown lexical set or phoneme: %s", label)
	}

	allowed := make(map[int]bool)
	for _, ch := range stress {
		if ch >= '0' && ch <= '2' {
			allowed[int(ch-'0')] = true
		}
	}

	patterns := make(map[string]bool, len(phones))
	for _, p := range phones {
		patterns[p] = true
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	var matches []WordResult
	for word, records := range ix.prons {
		if IsExcluded(word) {
			continue
		}
		for _, rec := range records {
			if matchesPattern(rec.Phones, patterns, allowed, rColored) {
				matches = append(matches, WordResult{
					Word:           word,
					Frequency:      ix.freq[word],
					Pronunciations: records,
				})
				break
			}
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Frequency != matches[j].Frequency {
			return matches[i].Frequency > matches[j].Frequency
		}
		return matches[i].Word < matches[j].Word
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// matchesPattern reports whether any phone of a pronunciation is in the
// pattern set, subject to the stress filter. Stress filtering applies to
// vowel phones only; consonant phones carry no digit. For r-colored sets
// the matching vowel must be immediately followed by R.
func matchesPattern(phonesSeq []string, patterns map[string]bool, allowedStress map[int]bool, rColored bool) bool {
	for i, phone := range phonesSeq {
		base, stress := splitPhone(phone)
		if !patterns[base] {
			continue
		}
		if stress >= 0 && len(allowedStress) > 0 && !allowedStress[stress] {
			continue
		}
		if rColored && base != "ER" {
			if i+1 >= len(phonesSeq) {
				continue
			}
			next, _ := splitPhone(phonesSeq[i+1])
			if next != "R" {
				continue
			}
		}
		return true
	}
	return false
}
