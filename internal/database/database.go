package database

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/accentlab/lexicon/internal/entities"
)

func intp(v int) *int { return &v }

// Standard Wells lexical sets, seeded on first run so a fresh install has a
// usable catalog. Clients may reorder or extend them afterwards.
var defaultLexicalSets = []entities.LexicalSet{
	{Name: "KIT", Category: "short vowel", SortOrder: intp(1)},
	{Name: "DRESS", Category: "short vowel", SortOrder: intp(2)},
	{Name: "TRAP", Category: "short vowel", SortOrder: intp(3)},
	{Name: "LOT", Category: "short vowel", SortOrder: intp(4)},
	{Name: "STRUT", Category: "short vowel", SortOrder: intp(5)},
	{Name: "FOOT", Category: "short vowel", SortOrder: intp(6)},
	{Name: "FLEECE", Category: "long vowel", SortOrder: intp(7)},
	{Name: "GOOSE", Category: "long vowel", SortOrder: intp(8)},
	{Name: "PALM", Category: "long vowel", SortOrder: intp(9)},
	{Name: "THOUGHT", Category: "long vowel", SortOrder: intp(10)},
	{Name: "NURSE", Category: "long vowel", SortOrder: intp(11)},
	{Name: "FACE", Category: "diphthong", SortOrder: intp(12)},
	{Name: "GOAT", Category: "diphthong", SortOrder: intp(13)},
	{Name: "PRICE", Category: "diphthong", SortOrder: intp(14)},
	{Name: "CHOICE", Category: "diphthong", SortOrder: intp(15)},
	{Name: "MOUTH", Category: "diphthong", SortOrder: intp(16)},
	{Name: "NEAR", Category: "r-colored", SortOrder: intp(17)},
	{Name: "SQUARE", Category: "r-colored", SortOrder: intp(18)},
	{Name: "START", Category: "r-colored", SortOrder: intp(19)},
	{Name: "NORTH", Category: "r-colored", SortOrder: intp(20)},
	{Name: "FORCE", Category: "r-colored", SortOrder: intp(21)},
	{Name: "CURE", Category: "r-colored", SortOrder: intp(22)},
	{Name: "happY", Category: "weak vowel", SortOrder: intp(23)},
	{Name: "lettER", Category: "weak vowel", SortOrder: intp(24)},
	{Name: "commA", Category: "weak vowel", SortOrder: intp(25)},
}

var defaultConsonantPhonemes = []entities.ConsonantPhoneme{
	{Name: "P", Category: "stop", SortOrder: intp(1)},
	{Name: "B", Category: "stop", SortOrder: intp(2)},
	{Name: "T", Category: "stop", SortOrder: intp(3)},
	{Name: "D", Category: "stop", SortOrder: intp(4)},
	{Name: "K", Category: "stop", SortOrder: intp(5)},
	{Name: "G", Category: "stop", SortOrder: intp(6)},
	{Name: "CH", Category: "affricate", SortOrder: intp(7)},
	{Name: "JH", Category: "affricate", SortOrder: intp(8)},
	{Name: "F", Category: "fricative", SortOrder: intp(9)},
	{Name: "V", Category: "fricative", SortOrder: intp(10)},
	{Name: "TH", Category: "fricative", SortOrder: intp(11)},
	{Name: "DH", Category: "fricative", SortOrder: intp(12)},
	{Name: "S", Category: "fricative", SortOrder: intp(13)},
	{Name: "Z", Category: "fricative", SortOrder: intp(14)},
	{Name: "SH", Category: "fricative", SortOrder: intp(15)},
	{Name: "ZH", Category: "fricative", SortOrder: intp(16)},
	{Name: "HH", Category: "fricative", SortOrder: intp(17)},
	{Name: "M", Category: "nasal", SortOrder: intp(18)},
	{Name: "N", Category: "nasal", SortOrder: intp(19)},
	{Name: "NG", Category: "nasal", SortOrder: intp(20)},
	{Name: "L", Category: "approximant", SortOrder: intp(21)},
	{Name: "R", Category: "approximant", SortOrder: intp(22)},
	{Name: "W", Category: "approximant", SortOrder: intp(23)},
	{Name: "Y", Category: "approximant", SortOrder: intp(24)},
}

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto-migrate all entities
	err = db.AutoMigrate(
		&entities.DictionaryEntry{},
		&entities.WordUsage{},
		&entities.Pronunciation{},
		&entities.Example{},
		&entities.SpellingPattern{},
		&entities.WordVariation{},
		&entities.LexicalSet{},
		&entities.LexicalSetUsage{},
		&entities.ConsonantPhoneme{},
		&entities.ConsonantPhonemeUsage{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	database := &Database{DB: db}

	if err := database.seedCatalogs(); err != nil {
		return nil, fmt.Errorf("failed to seed catalogs: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return database, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// seedCatalogs inserts the default lexical sets and consonant phonemes that
// do not exist yet. Existing rows are left untouched.
func (d *Database) seedCatalogs() error {
	for _, set := range defaultLexicalSets {
		var existing entities.LexicalSet
		result := d.DB.Where("name = ?", set.Name).First(&existing)
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			if err := d.DB.Create(&set).Error; err != nil {
				return fmt.Errorf("failed to create lexical set %s: %w", set.Name, err)
			}
		}
	}

	for _, phoneme := range defaultConsonantPhonemes {
		var existing entities.ConsonantPhoneme
		result := d.DB.Where("name = ?", phoneme.Name).First(&existing)
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			if err := d.DB.Create(&phoneme).Error; err != nil {
				return fmt.Errorf("failed to create consonant phoneme %s: %w", phoneme.Name, err)
			}
		}
	}

	return nil
}
