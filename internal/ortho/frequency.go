package ortho

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseFrequencies reads a word-frequency list: one "word count" pair per
// line, whitespace separated, "#" comment lines skipped. Later duplicates
// win, matching the source list's convention of listing the preferred
// casing last.
func ParseFrequencies(r io.Reader) (map[string]int64, error) {
	freqs := make(map[string]int64)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: malformed frequency entry %q", lineNo, line)
		}

		count, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad count %q: %w", lineNo, fields[1], err)
		}
		freqs[strings.ToLower(fields[0])] = count
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read frequency list: %w", err)
	}

	return freqs, nil
}
