package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/accentlab/lexicon/internal/entities"
)

// EntryStore defines the persistence operations the entries controller needs.
type EntryStore interface {
	CreateEntry(entry *entities.DictionaryEntry) error
	GetEntryByID(id uint) (*entities.DictionaryEntry, error)
	GetAllEntries() ([]entities.DictionaryEntry, error)
	UpdateEntry(id uint, word, notes string, usages []entities.WordUsage) (*entities.DictionaryEntry, error)
	DeleteEntry(id uint) error
	DeleteUsage(entryID, usageID uint) error
}

type EntriesController struct {
	store EntryStore
}

func NewEntriesController(store EntryStore) *EntriesController {
	return &EntriesController{store: store}
}

// --- Request Types ---

type PronunciationInput struct {
	Phonemic  string `json:"phonemic"`
	IsPrimary *bool  `json:"isPrimary"`
}

type ExampleInput struct {
	Text string `json:"text"`
}

type SpellingPatternInput struct {
	Pattern string `json:"pattern"`
}

type UsageInput struct {
	PartOfSpeech     string                 `json:"partOfSpeech"`
	Meaning          string                 `json:"meaning"`
	Pronunciations   []PronunciationInput   `json:"pronunciations"`
	Examples         []ExampleInput         `json:"examples"`
	SpellingPatterns []SpellingPatternInput `json:"spellingPatterns"`
}

type VariationInput struct {
	Text string `json:"text"`
}

type EntryRequest struct {
	Word       string           `json:"word" binding:"required"`
	Notes      string           `json:"notes"`
	Usages     []UsageInput     `json:"usages" binding:"required"`
	Variations []VariationInput `json:"variations"`
}

// buildUsages converts request usages into entities. Missing parts of
// speech fall back to "noun". When forcePrimary is set every pronunciation
// is stored as primary regardless of the payload; otherwise an omitted
// isPrimary defaults to true.
func buildUsages(inputs []UsageInput, forcePrimary bool) []entities.WordUsage {
	usages := make([]entities.WordUsage, 0, len(inputs))
	for _, in := range inputs {
		usage := entities.WordUsage{
			PartOfSpeech: in.PartOfSpeech,
			Meaning:      in.Meaning,
		}
		if usage.PartOfSpeech == "" {
			usage.PartOfSpeech = "noun"
		}
		for _, p := range in.Pronunciations {
			isPrimary := true
			if !forcePrimary && p.IsPrimary != nil {
				isPrimary = *p.IsPrimary
			}
			usage.Pronunciations = append(usage.Pronunciations, entities.Pronunciation{
				Phonemic:  p.Phonemic,
				IsPrimary: isPrimary,
			})
		}
		for _, e := range in.Examples {
			usage.Examples = append(usage.Examples, entities.Example{Text: e.Text})
		}
		for _, s := range in.SpellingPatterns {
			usage.SpellingPatterns = append(usage.SpellingPatterns, entities.SpellingPattern{Pattern: s.Pattern})
		}
		usages = append(usages, usage)
	}
	return usages
}

// GetAllEntries lists every entry with its full nested graph. A store
// failure is logged but masked as an empty list so dictionary browsing
// keeps working on partial corruption.
func (controller *EntriesController) GetAllEntries(c *gin.Context) {
	entries, err := controller.store.GetAllEntries()
	if err != nil {
		log.Printf("Failed to list entries, returning empty list: %v", err)
		c.JSON(http.StatusOK, []entities.DictionaryEntry{})
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (controller *EntriesController) GetEntry(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	entry, err := controller.store.GetEntryByID(id)
	if err != nil {
		if isNotFound(err) {
			respondNotFound(c, "entry")
			return
		}
		respondStoreError(c, err, "get entry")
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (controller *EntriesController) CreateEntry(c *gin.Context) {
	var req EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "word and usages are required")
		return
	}

	entry := &entities.DictionaryEntry{
		Word:   req.Word,
		Notes:  req.Notes,
		Usages: buildUsages(req.Usages, false),
	}
	for _, v := range req.Variations {
		entry.Variations = append(entry.Variations, entities.WordVariation{Text: v.Text})
	}

	if err := controller.store.CreateEntry(entry); err != nil {
		respondStoreError(c, err, "create entry")
		return
	}

	created, err := controller.store.GetEntryByID(entry.ID)
	if err != nil {
		// The row exists; return what we have rather than failing the create.
		log.Printf("Failed to re-fetch entry %d after create, returning unloaded entity: %v", entry.ID, err)
		respondCreated(c, entry)
		return
	}
	respondCreated(c, created)
}

// UpdateEntry replaces the entry's word, notes and entire usage graph. The
// old usages and their children are destroyed and recreated with fresh
// identifiers.
func (controller *EntriesController) UpdateEntry(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "word and usages are required")
		return
	}

	entry, err := controller.store.UpdateEntry(id, req.Word, req.Notes, buildUsages(req.Usages, true))
	if err != nil {
		if isNotFound(err) {
			respondNotFound(c, "entry")
			return
		}
		respondStoreError(c, err, "update entry")
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (controller *EntriesController) DeleteEntry(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.store.DeleteEntry(id); err != nil {
		if isNotFound(err) {
			respondNotFound(c, "entry")
			return
		}
		respondStoreError(c, err, "delete entry")
		return
	}
	c.Status(http.StatusNoContent)
}

func (controller *EntriesController) DeleteUsage(c *gin.Context) {
	entryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	usageID, ok := parseIDParam(c, "usageId")
	if !ok {
		return
	}

	if err := controller.store.DeleteUsage(entryID, usageID); err != nil {
		if isNotFound(err) {
			respondNotFound(c, "usage")
			return
		}
		respondStoreError(c, err, "delete usage")
		return
	}
	c.Status(http.StatusNoContent)
}
