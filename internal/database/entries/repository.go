// Package entries provides database operations for dictionary entries and
// their nested usages.
//
// The relational store has no cascading deletes configured for these
// tables; every multi-row operation here performs its own children-first
// cascade inside a single transaction so a mid-sequence failure cannot
// leave orphaned rows.
package entries

import (
	"gorm.io/gorm"

	"github.com/accentlab/lexicon/internal/entities"
)

// Repository handles the entry/usage lifecycle.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new entries repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// entryPreloads attaches the full nested graph of an entry: usages with
// their pronunciations, examples, spelling patterns and catalog joins, plus
// word variations.
func entryPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Usages.Pronunciations").
		Preload("Usages.Examples").
		Preload("Usages.SpellingPatterns").
		Preload("Usages.LexicalSets.LexicalSet").
		Preload("Usages.ConsonantPhonemes.ConsonantPhoneme").
		Preload("Variations")
}

// CreateEntry inserts an entry together with its nested usages and their
// children in one logical write.
func (r *Repository) CreateEntry(entry *entities.DictionaryEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(entry).Error
	})
}

// GetEntryByID fetches an entry with its full nested graph.
func (r *Repository) GetEntryByID(id uint) (*entities.DictionaryEntry, error) {
	var entry entities.DictionaryEntry
	err := entryPreloads(r.db).First(&entry, id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetAllEntries fetches every entry with the full nested graph.
func (r *Repository) GetAllEntries() ([]entities.DictionaryEntry, error) {
	var list []entities.DictionaryEntry
	err := entryPreloads(r.db).Order("word ASC").Find(&list).Error
	return list, err
}

// UpdateEntry replaces an entry's scalar fields and its entire usage set.
// The update is destructive-recreate: existing usages and their children
// are deleted and the provided usages are inserted as brand-new rows, so
// usages absent from the payload are lost and surviving usages get new ids.
func (r *Repository) UpdateEntry(id uint, word, notes string, usages []entities.WordUsage) (*entities.DictionaryEntry, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var entry entities.DictionaryEntry
		if err := tx.First(&entry, id).Error; err != nil {
			return err
		}

		if err := deleteUsagesForEntry(tx, id); err != nil {
			return err
		}

		if err := tx.Model(&entities.DictionaryEntry{}).Where("id = ?", id).
			Updates(map[string]interface{}{"word": word, "notes": notes}).Error; err != nil {
			return err
		}

		for i := range usages {
			usages[i].ID = 0
			usages[i].EntryID = id
		}
		if len(usages) > 0 {
			if err := tx.Create(&usages).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetEntryByID(id)
}

// DeleteEntry removes an entry and, children-first, everything it owns:
// per-usage pronunciations, examples, spelling patterns and catalog joins,
// then the usages, then word variations, then the entry row.
func (r *Repository) DeleteEntry(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var entry entities.DictionaryEntry
		if err := tx.First(&entry, id).Error; err != nil {
			return err
		}

		if err := deleteUsagesForEntry(tx, id); err != nil {
			return err
		}
		if err := tx.Where("entry_id = ?", id).Delete(&entities.WordVariation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.DictionaryEntry{}, id).Error
	})
}

// DeleteUsage removes a single usage scoped to its entry, with the same
// children-first sub-sequence. Returns gorm.ErrRecordNotFound when the
// usage does not exist or belongs to a different entry.
func (r *Repository) DeleteUsage(entryID, usageID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var usage entities.WordUsage
		if err := tx.Where("id = ? AND entry_id = ?", usageID, entryID).First(&usage).Error; err != nil {
			return err
		}

		if err := deleteUsageChildren(tx, []uint{usageID}); err != nil {
			return err
		}
		return tx.Delete(&entities.WordUsage{}, usageID).Error
	})
}

// deleteUsagesForEntry removes all of an entry's usages and their children.
func deleteUsagesForEntry(tx *gorm.DB, entryID uint) error {
	var usageIDs []uint
	if err := tx.Model(&entities.WordUsage{}).Where("entry_id = ?", entryID).
		Pluck("id", &usageIDs).Error; err != nil {
		return err
	}
	if len(usageIDs) == 0 {
		return nil
	}
	if err := deleteUsageChildren(tx, usageIDs); err != nil {
		return err
	}
	return tx.Where("entry_id = ?", entryID).Delete(&entities.WordUsage{}).Error
}

// deleteUsageChildren removes every row owned by the given usages in
// dependency order.
func deleteUsageChildren(tx *gorm.DB, usageIDs []uint) error {
	if err := tx.Where("usage_id IN ?", usageIDs).Delete(&entities.Pronunciation{}).Error; err != nil {
		return err
	}
	if err := tx.Where("usage_id IN ?", usageIDs).Delete(&entities.Example{}).Error; err != nil {
		return err
	}
	if err := tx.Where("usage_id IN ?", usageIDs).Delete(&entities.SpellingPattern{}).Error; err != nil {
		return err
	}
	if err := tx.Where("usage_id IN ?", usageIDs).Delete(&entities.LexicalSetUsage{}).Error; err != nil {
		return err
	}
	return tx.Where("usage_id IN ?", usageIDs).Delete(&entities.ConsonantPhonemeUsage{}).Error
}

// EntriesMissingAudio returns entries that have at least one pronunciation
// without a cached audio URL, for the enrichment task.
func (r *Repository) EntriesMissingAudio(limit int) ([]entities.DictionaryEntry, error) {
	var list []entities.DictionaryEntry
	query := r.db.
		Joins("JOIN word_usages ON word_usages.entry_id = dictionary_entries.id").
		Joins("JOIN pronunciations ON pronunciations.usage_id = word_usages.id").
		Where("pronunciations.audio_url = '' OR pronunciations.audio_url IS NULL").
		Group("dictionary_entries.id").
		Preload("Usages.Pronunciations")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&list).Error
	return list, err
}

// SetPronunciationAudio stores the resolved audio URL on a pronunciation.
func (r *Repository) SetPronunciationAudio(pronunciationID uint, url string) error {
	return r.db.Model(&entities.Pronunciation{}).Where("id = ?", pronunciationID).
		Update("audio_url", url).Error
}
