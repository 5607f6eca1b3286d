package ortho

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Record is one CMU dictionary pronunciation: the headword, its variant
// number (0 for the primary line, N for "WORD(N)" lines) and the ARPABET
// phones with stress digits attached to vowels.
type Record struct {
	Word    string   `json:"word"`
	Variant int      `json:"variant"`
	Phones  []string `json:"phones"`
}

// ParseCMUDict reads a cmudict-format stream: one "WORD  PH PH PH" line per
// pronunciation, ";;;" comment lines skipped. Headwords are lowercased.
func ParseCMUDict(r io.Reader) ([]Record, error) {
	var records []Record

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";;;") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: malformed entry %q", lineNo, line)
		}

		word := fields[0]
		variant := 0
		if open := strings.IndexByte(word, '('); open > 0 && strings.HasSuffix(word, ")") {
			n, err := strconv.Atoi(word[open+1 : len(word)-1])
			if err != nil {
				return nil, fmt.Errorf("line %d: bad variant marker in %q", lineNo, word)
			}
			variant = n
			word = word[:open]
		}

		records = append(records, Record{
			Word:    strings.ToLower(word),
			Variant: variant,
			Phones:  fields[1:],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read cmudict: %w", err)
	}

	return records, nil
}

// splitPhone separates an ARPABET phone from its stress digit. Consonant
// phones carry no digit and return stress -1.
func splitPhone(phone string) (base string, stress int) {
	if phone == "" {
		return phone, -1
	}
	last := phone[len(phone)-1]
	if last >= '0' && last <= '2' {
		return phone[:len(phone)-1], int(last - '0')
	}
	return phone, -1
}
