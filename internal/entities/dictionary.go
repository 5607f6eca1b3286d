package entities

import (
	"time"
)

// DictionaryEntry is a headword. It exclusively owns its usages and
// variations: neither may outlive the entry, and the cascade is performed
// by the repositories, not by the database.
type DictionaryEntry struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	Word       string          `gorm:"index;size:256" json:"word"`
	Notes      string          `gorm:"type:text" json:"notes,omitempty"`
	Usages     []WordUsage     `gorm:"foreignKey:EntryID" json:"usages"`
	Variations []WordVariation `gorm:"foreignKey:EntryID" json:"variations,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// WordUsage is one sense/part-of-speech reading of an entry.
type WordUsage struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	EntryID      uint   `gorm:"index" json:"entryId"`
	PartOfSpeech string `gorm:"size:50;default:'noun'" json:"partOfSpeech"`
	Meaning      string `gorm:"type:text" json:"meaning"`

	Pronunciations   []Pronunciation   `gorm:"foreignKey:UsageID" json:"pronunciations,omitempty"`
	Examples         []Example         `gorm:"foreignKey:UsageID" json:"examples,omitempty"`
	SpellingPatterns []SpellingPattern `gorm:"foreignKey:UsageID" json:"spellingPatterns,omitempty"`

	// Join rows to the catalog entities. Each side of the join owns its
	// rows: deleting either endpoint must delete the row.
	LexicalSets       []LexicalSetUsage       `gorm:"foreignKey:UsageID" json:"lexicalSets,omitempty"`
	ConsonantPhonemes []ConsonantPhonemeUsage `gorm:"foreignKey:UsageID" json:"consonantPhonemes,omitempty"`

	Entry *DictionaryEntry `gorm:"foreignKey:EntryID" json:"entry,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Pronunciation struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UsageID   uint   `gorm:"index" json:"usageId"`
	Phonemic  string `gorm:"size:256" json:"phonemic"`
	IsPrimary bool   `gorm:"default:true" json:"isPrimary"`

	// Cached Wiktionary audio URL, filled in by the enrichment task.
	AudioURL string `gorm:"size:2048" json:"audioUrl,omitempty"`
}

type Example struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	UsageID uint   `gorm:"index" json:"usageId"`
	Text    string `gorm:"type:text" json:"text"`
}

type SpellingPattern struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	UsageID uint   `gorm:"index" json:"usageId"`
	Pattern string `gorm:"size:256" json:"pattern"`
}

// WordVariation is an alternative spelling/form of the headword.
type WordVariation struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	EntryID uint   `gorm:"index" json:"entryId"`
	Text    string `gorm:"size:256" json:"text"`
}

func (DictionaryEntry) TableName() string {
	return "dictionary_entries"
}

func (WordUsage) TableName() string {
	return "word_usages"
}

func (Pronunciation) TableName() string {
	return "pronunciations"
}

func (Example) TableName() string {
	return "examples"
}

func (SpellingPattern) TableName() string {
	return "spelling_patterns"
}

func (WordVariation) TableName() string {
	return "word_variations"
}
