// Package lexicalsets provides database operations for the lexical-set
// catalog and its joins to word usages.
package lexicalsets

import (
	"gorm.io/gorm"

	"github.com/accentlab/lexicon/internal/entities"
)

// Repository handles lexical-set catalog operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new lexical-sets repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func setPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Usages.Usage.Entry").
		Preload("Usages.Usage.Pronunciations").
		Preload("Usages.Usage.Examples").
		Preload("Usages.Usage.SpellingPatterns")
}

// List returns all lexical sets with their usages and the parent word
// usage's nested graph, ordered by sort key.
func (r *Repository) List() ([]entities.LexicalSet, error) {
	var sets []entities.LexicalSet
	err := setPreloads(r.db).Order("sort_order ASC").Find(&sets).Error
	return sets, err
}

// GetByID returns one lexical set with the same nested shape.
func (r *Repository) GetByID(id uint) (*entities.LexicalSet, error) {
	var set entities.LexicalSet
	err := setPreloads(r.db).First(&set, id).Error
	if err != nil {
		return nil, err
	}
	return &set, nil
}

// Create inserts a new lexical set.
func (r *Repository) Create(set *entities.LexicalSet) error {
	return r.db.Create(set).Error
}

// Update overwrites every writable field of a lexical set.
func (r *Repository) Update(id uint, set *entities.LexicalSet) (*entities.LexicalSet, error) {
	var existing entities.LexicalSet
	if err := r.db.First(&existing, id).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":         set.Name,
		"description":  set.Description,
		"category":     set.Category,
		"sort_order":   set.SortOrder,
		"grid_section": nil,
		"grid_row":     nil,
		"grid_col":     nil,
	}
	if set.Grid != nil {
		updates["grid_section"] = set.Grid.Section
		updates["grid_row"] = set.Grid.Row
		updates["grid_col"] = set.Grid.Col
	}
	if err := r.db.Model(&existing).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

// Delete removes a lexical set and, first, every join row referencing it.
func (r *Repository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var set entities.LexicalSet
		if err := tx.First(&set, id).Error; err != nil {
			return err
		}
		if err := tx.Where("set_id = ?", id).Delete(&entities.LexicalSetUsage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.LexicalSet{}, id).Error
	})
}

// AddUsage links a word usage to a lexical set. Both endpoints must exist.
func (r *Repository) AddUsage(setID, usageID uint, order *int) (*entities.LexicalSetUsage, error) {
	var set entities.LexicalSet
	if err := r.db.First(&set, setID).Error; err != nil {
		return nil, err
	}
	var usage entities.WordUsage
	if err := r.db.First(&usage, usageID).Error; err != nil {
		return nil, err
	}

	join := &entities.LexicalSetUsage{
		SetID:     setID,
		UsageID:   usageID,
		SortOrder: order,
	}
	if err := r.db.Create(join).Error; err != nil {
		return nil, err
	}
	return join, nil
}

// RemoveUsage deletes the join row for the (setID, usageID) pair.
func (r *Repository) RemoveUsage(setID, usageID uint) error {
	var join entities.LexicalSetUsage
	err := r.db.Where("set_id = ? AND usage_id = ?", setID, usageID).First(&join).Error
	if err != nil {
		return err
	}
	return r.db.Delete(&entities.LexicalSetUsage{}, join.ID).Error
}
