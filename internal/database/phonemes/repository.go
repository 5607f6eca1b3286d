// Package phonemes provides database operations for the consonant-phoneme
// catalog, the consonant analogue of the lexical-set registry.
package phonemes

import (
	"gorm.io/gorm"

	"github.com/accentlab/lexicon/internal/entities"
)

// Repository handles consonant-phoneme catalog operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new phonemes repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func phonemePreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Usages.Usage.Entry").
		Preload("Usages.Usage.Pronunciations").
		Preload("Usages.Usage.Examples").
		Preload("Usages.Usage.SpellingPatterns")
}

// List returns all consonant phonemes ordered by sort key ascending.
func (r *Repository) List() ([]entities.ConsonantPhoneme, error) {
	var list []entities.ConsonantPhoneme
	err := phonemePreloads(r.db).Order("sort_order ASC").Find(&list).Error
	return list, err
}

// GetByID returns one phoneme with the nested usage graph.
func (r *Repository) GetByID(id uint) (*entities.ConsonantPhoneme, error) {
	var phoneme entities.ConsonantPhoneme
	err := phonemePreloads(r.db).First(&phoneme, id).Error
	if err != nil {
		return nil, err
	}
	return &phoneme, nil
}

// Create inserts a new consonant phoneme.
func (r *Repository) Create(phoneme *entities.ConsonantPhoneme) error {
	return r.db.Create(phoneme).Error
}

// Update overwrites every writable field of a phoneme.
func (r *Repository) Update(id uint, phoneme *entities.ConsonantPhoneme) (*entities.ConsonantPhoneme, error) {
	var existing entities.ConsonantPhoneme
	if err := r.db.First(&existing, id).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":         phoneme.Name,
		"description":  phoneme.Description,
		"category":     phoneme.Category,
		"sort_order":   phoneme.SortOrder,
		"grid_section": nil,
		"grid_row":     nil,
		"grid_col":     nil,
	}
	if phoneme.Grid != nil {
		updates["grid_section"] = phoneme.Grid.Section
		updates["grid_row"] = phoneme.Grid.Row
		updates["grid_col"] = phoneme.Grid.Col
	}
	if err := r.db.Model(&existing).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

// Delete removes a phoneme and, first, every join row referencing it.
func (r *Repository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var phoneme entities.ConsonantPhoneme
		if err := tx.First(&phoneme, id).Error; err != nil {
			return err
		}
		if err := tx.Where("phoneme_id = ?", id).Delete(&entities.ConsonantPhonemeUsage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.ConsonantPhoneme{}, id).Error
	})
}

// AddUsage links a word usage to a phoneme. Both endpoints must exist.
func (r *Repository) AddUsage(phonemeID, usageID uint, order *int) (*entities.ConsonantPhonemeUsage, error) {
	var phoneme entities.ConsonantPhoneme
	if err := r.db.First(&phoneme, phonemeID).Error; err != nil {
		return nil, err
	}
	var usage entities.WordUsage
	if err := r.db.First(&usage, usageID).Error; err != nil {
		return nil, err
	}

	join := &entities.ConsonantPhonemeUsage{
		PhonemeID: phonemeID,
		UsageID:   usageID,
		SortOrder: order,
	}
	if err := r.db.Create(join).Error; err != nil {
		return nil, err
	}
	return join, nil
}

// RemoveUsage deletes the join row for the (phonemeID, usageID) pair.
func (r *Repository) RemoveUsage(phonemeID, usageID uint) error {
	var join entities.ConsonantPhonemeUsage
	err := r.db.Where("phoneme_id = ? AND usage_id = ?", phonemeID, usageID).First(&join).Error
	if err != nil {
		return err
	}
	return r.db.Delete(&entities.ConsonantPhonemeUsage{}, join.ID).Error
}
