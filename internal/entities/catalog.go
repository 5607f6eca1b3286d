package entities

import "time"

// GridPosition is the layout-tool coordinate of a catalog row. The legacy
// schema packed it into the single sort integer; it is now stored
// explicitly alongside the plain sort key.
type GridPosition struct {
	Section int `json:"section"`
	Row     int `json:"row"`
	Col     int `json:"col"`
}

// DecodeLegacyOrder unpacks a legacy packed order integer into a grid
// position: section = order/10000 - 1, row = (order%10000)/100,
// col = order%100.
func DecodeLegacyOrder(order int) GridPosition {
	return GridPosition{
		Section: order/10000 - 1,
		Row:     (order % 10000) / 100,
		Col:     order % 100,
	}
}

// LexicalSet is a named vowel category (FLEECE, KIT, ...).
type LexicalSet struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"index;size:100" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Category    string `gorm:"size:100" json:"category"`

	// SortOrder is a free-form client-chosen integer; uniqueness and
	// contiguity are not enforced.
	SortOrder *int          `json:"sortOrder,omitempty"`
	Grid      *GridPosition `gorm:"embedded;embeddedPrefix:grid_" json:"gridPosition,omitempty"`

	Usages []LexicalSetUsage `gorm:"foreignKey:SetID" json:"usages,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ConsonantPhoneme is the consonant analogue of LexicalSet.
type ConsonantPhoneme struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"index;size:100" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Category    string `gorm:"size:100" json:"category"`

	SortOrder *int          `json:"sortOrder,omitempty"`
	Grid      *GridPosition `gorm:"embedded;embeddedPrefix:grid_" json:"gridPosition,omitempty"`

	Usages []ConsonantPhonemeUsage `gorm:"foreignKey:PhonemeID" json:"usages,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LexicalSetUsage links a WordUsage to a LexicalSet. Its order is
// independent of the set's own sort key.
type LexicalSetUsage struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	SetID     uint `gorm:"index" json:"lexicalSetId"`
	UsageID   uint `gorm:"index" json:"usageId"`
	SortOrder *int `json:"order,omitempty"`

	LexicalSet *LexicalSet `gorm:"foreignKey:SetID" json:"lexicalSet,omitempty"`
	Usage      *WordUsage  `gorm:"foreignKey:UsageID" json:"usage,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// ConsonantPhonemeUsage links a WordUsage to a ConsonantPhoneme.
type ConsonantPhonemeUsage struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	PhonemeID uint `gorm:"index" json:"consonantPhonemeId"`
	UsageID   uint `gorm:"index" json:"usageId"`
	SortOrder *int `json:"order,omitempty"`

	ConsonantPhoneme *ConsonantPhoneme `gorm:"foreignKey:PhonemeID" json:"consonantPhoneme,omitempty"`
	Usage            *WordUsage        `gorm:"foreignKey:UsageID" json:"usage,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

func (LexicalSet) TableName() string {
	return "lexical_sets"
}

func (ConsonantPhoneme) TableName() string {
	return "consonant_phonemes"
}

func (LexicalSetUsage) TableName() string {
	return "lexical_set_usages"
}

func (ConsonantPhonemeUsage) TableName() string {
	return "consonant_phoneme_usages"
}
