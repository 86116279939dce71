// Package results reads human-evaluation score tables and selects the
// best/worst scoring images for gallery display.
package results

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// FileName is the score table read from a results directory.
const FileName = "results.txt"

// Entry pairs an image path (already resolved against the results directory)
// with its score in [0, 1].
type Entry struct {
	Path  string
	Score float64
}

// Table is a loaded score table.
type Table struct {
	Entries []Entry
}

// Load parses <dir>/results.txt: one whitespace-separated
// "<relative-path> <score>" per line.
func Load(dir string) (*Table, error) {
	f, err := os.Open(filepath.Join(dir, FileName))
	if err != nil {
		return nil, fmt.Errorf("open results table: %w", err)
	}
	defer f.Close()

	t := &Table{}
	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("results line %d: want \"<path> <score>\", got %q", lineno, scanner.Text())
		}
		score, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("results line %d: %w", lineno, err)
		}
		t.Entries = append(t.Entries, Entry{
			Path:  filepath.Join(dir, fields[0]),
			Score: score,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read results table: %w", err)
	}
	return t, nil
}

// Select picks the rows*colsWorst lowest and rows*colsBest highest scoring
// entries, concatenated worst-block-first and reversed for display (so the
// highest scores come out first). The table must hold at least
// rows*(colsBest+colsWorst) entries.
func (t *Table) Select(rows, colsBest, colsWorst int) ([]Entry, error) {
	need := rows * (colsBest + colsWorst)
	if len(t.Entries) < need {
		return nil, fmt.Errorf("results table has %d entries, need %d", len(t.Entries), need)
	}

	sorted := make([]Entry, len(t.Entries))
	copy(sorted, t.Entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Score < sorted[j].Score })

	selected := make([]Entry, 0, need)
	selected = append(selected, sorted[:rows*colsWorst]...)
	selected = append(selected, sorted[len(sorted)-rows*colsBest:]...)

	for i, j := 0, len(selected)-1; i < j; i, j = i+1, j-1 {
		selected[i], selected[j] = selected[j], selected[i]
	}
	return selected, nil
}
