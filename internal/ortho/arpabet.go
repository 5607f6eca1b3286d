package ortho

import "strings"

// ARPABET phone sets for the Wells lexical sets. General American has no
// separate BATH/CLOTH classes, so those labels map onto the TRAP/LOT
// phones, and the r-colored sets match their vowel followed by R in the
// CMU transcription (handled in matchesPattern).
var lexicalSetPhones = map[string][]string{
	"KIT":     {"IH"},
	"DRESS":   {"EH"},
	"TRAP":    {"AE"},
	"BATH":    {"AE"},
	"LOT":     {"AA"},
	"CLOTH":   {"AO"},
	"STRUT":   {"AH"},
	"FOOT":    {"UH"},
	"FLEECE":  {"IY"},
	"GOOSE":   {"UW"},
	"PALM":    {"AA"},
	"THOUGHT": {"AO"},
	"NURSE":   {"ER"},
	"FACE":    {"EY"},
	"GOAT":    {"OW"},
	"PRICE":   {"AY"},
	"CHOICE":  {"OY"},
	"MOUTH":   {"AW"},
	"NEAR":    {"IY", "IH"},
	"SQUARE":  {"EH"},
	"START":   {"AA"},
	"NORTH":   {"AO"},
	"FORCE":   {"AO", "OW"},
	"CURE":    {"UH"},
	"HAPPY":   {"IY"},
	"LETTER":  {"ER"},
	"COMMA":   {"AH"},
}

// Consonant phoneme labels map straight onto their ARPABET codes.
var consonantPhones = map[string][]string{
	"P": {"P"}, "B": {"B"}, "T": {"T"}, "D": {"D"}, "K": {"K"}, "G": {"G"},
	"CH": {"CH"}, "JH": {"JH"},
	"F": {"F"}, "V": {"V"}, "TH": {"TH"}, "DH": {"DH"},
	"S": {"S"}, "Z": {"Z"}, "SH": {"SH"}, "ZH": {"ZH"}, "HH": {"HH"},
	"M": {"M"}, "N": {"N"}, "NG": {"NG"},
	"L": {"L"}, "R": {"R"}, "W": {"W"}, "Y": {"Y"},
}

// rColoredSets require the matching vowel to be followed by R.
var rColoredSets = map[string]bool{
	"NEAR": true, "SQUARE": true, "START": true,
	"NORTH": true, "FORCE": true, "CURE": true, "LETTER": true,
}

// Contraction fragments in the CMU dictionary ("'s", "'em", ...) are not
// useful practice words; they are excluded from lexical lookups.
var excludedFragments = map[string]bool{
	"'bout":   true,
	"'cause":  true,
	"'course": true,
	"'d":      true,
	"'em":     true,
	"'ll":     true,
	"'m":      true,
	"'n":      true,
	"'re":     true,
	"'round":  true,
	"'s":      true,
	"'til":    true,
	"'tis":    true,
	"'twas":   true,
	"'ve":     true,
}

// PhonesForLabel resolves a lexical-set or consonant-phoneme label to its
// ARPABET phone set. The boolean reports whether the label is known; the
// second boolean reports whether the set is r-colored.
func PhonesForLabel(label string) (phones []string, rColored bool, ok bool) {
	upper := strings.ToUpper(strings.TrimSpace(label))
	if p, found := lexicalSetPhones[upper]; found {
		return p, rColoredSets[upper], true
	}
	if p, found := consonantPhones[upper]; found {
		return p, false, true
	}
	return nil, false, false
}

// IsExcluded reports whether a headword is on the fixed contraction-fragment
// exclusion list.
func IsExcluded(word string) bool {
	return excludedFragments[strings.ToLower(word)]
}
