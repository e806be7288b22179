package source

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cognicore/wordfreq/pkg/wordfreq/internalerr"
	"github.com/cognicore/wordfreq/pkg/wordfreq/pos"
)

// CSVAdapter parses plain word,frequency[,...] files. The format
// carries no POS information, so every entry has an empty tag set.
// The first line is skipped when it looks like a header ("word" or
// "freq" anywhere in it, case-insensitive).
type CSVAdapter struct {
	obs Observer
}

// NewCSV creates a CSV adapter reporting to obs.
func NewCSV(obs Observer) *CSVAdapter {
	if obs == nil {
		obs = NopObserver{}
	}
	return &CSVAdapter{obs: obs}
}

// Kind implements Adapter.
func (a *CSVAdapter) Kind() Kind { return KindCSV }

// Parse reads one CSV frequency file. Duplicate words keep the larger
// frequency, consistent with the lemma adapter's snapshot semantics.
func (a *CSVAdapter) Parse(path string) (map[string]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		a.obs.Warnf("open %s: %v", path, err)
		return map[string]Entry{}, fmt.Errorf("%w: %s", internalerr.ErrSourceUnavailable, path)
	}
	defer f.Close()

	words := make(map[string]Entry)
	scanner := bufio.NewScanner(f)

	first := true
	for scanner.Scan() {
		line := scanner.Text()

		if first {
			first = false
			lower := strings.ToLower(line)
			if strings.Contains(lower, "word") || strings.Contains(lower, "freq") {
				continue
			}
		}

		parts := strings.Split(strings.TrimSpace(line), ",")
		if len(parts) < 2 {
			continue
		}

		word := strings.ToLower(strings.TrimSpace(parts[0]))
		freq, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil || !eligible(word) {
			continue
		}

		if existing, seen := words[word]; !seen || freq > existing.Freq {
			words[word] = Entry{Freq: freq, Tags: pos.NewTagSet()}
		}
	}
	if err := scanner.Err(); err != nil {
		a.obs.Warnf("read %s: %v", path, err)
		return map[string]Entry{}, nil
	}

	return words, nil
}
