package config

// Default paths for bundled data
const (
	// DefaultDatabasePath is the default path for the main application database
	DefaultDatabasePath = "./lexicon.db"

	// DefaultCMUDictPath is the default path for the CMU pronouncing dictionary file
	DefaultCMUDictPath = "./data/cmudict.dict"

	// DefaultFrequencyPath is the default path for the word-frequency list
	DefaultFrequencyPath = "./data/word-frequencies.txt"
)
