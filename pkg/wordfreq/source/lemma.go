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

// lemmaDelims are tried per line in order; the first one present that
// yields at least four fields wins for that line.
var lemmaDelims = []string{"\t", "|", ","}

// LemmaAdapter parses rank/lemma/POS/frequency lists such as the
// wordfrequency.info lemma samples. The delimiter is not fixed and the
// frequency column is located by scanning for the first field that
// parses as a float.
//
// Header detection is best-effort: the first two physical lines are
// always skipped, and any later line containing "rank" or "lemma" is
// treated as a repeated header. A data row containing those substrings
// would be misclassified; keep the heuristic as-is without new
// fixtures.
type LemmaAdapter struct {
	obs Observer
}

// NewLemma creates a lemma-frequency adapter reporting to obs.
func NewLemma(obs Observer) *LemmaAdapter {
	if obs == nil {
		obs = NopObserver{}
	}
	return &LemmaAdapter{obs: obs}
}

// Kind implements Adapter.
func (a *LemmaAdapter) Kind() Kind { return KindLemma }

// Parse reads one lemma-frequency file. Duplicate words keep the larger
// frequency and union their POS tags regardless of which frequency won.
func (a *LemmaAdapter) Parse(path string) (map[string]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		a.obs.Warnf("open %s: %v", path, err)
		return map[string]Entry{}, fmt.Errorf("%w: %s", internalerr.ErrSourceUnavailable, path)
	}
	defer f.Close()

	words := make(map[string]Entry)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		line := scanner.Text()
		lineNum++

		if isLemmaHeader(line, lineNum) {
			continue
		}

		word, freq, tags, ok := parseLemmaLine(line)
		if !ok || !eligible(word) {
			continue
		}

		if existing, seen := words[word]; seen {
			if freq > existing.Freq {
				existing.Freq = freq
			}
			existing.Tags.Union(tags)
			words[word] = existing
		} else {
			words[word] = Entry{Freq: freq, Tags: tags}
		}
	}
	if err := scanner.Err(); err != nil {
		a.obs.Warnf("read %s: %v", path, err)
		return map[string]Entry{}, nil
	}

	return words, nil
}

func isLemmaHeader(line string, lineNum int) bool {
	if lineNum <= 2 {
		return true
	}
	lower := strings.ToLower(line)
	return strings.Contains(lower, "rank") || strings.Contains(lower, "lemma")
}

// parseLemmaLine extracts (word, frequency, tags) from one data row.
// Field 0 must parse as an integer rank; it validates the shape but is
// not retained. An inline word_POS suffix is used as the POS source
// only when the explicit POS column is empty.
func parseLemmaLine(line string) (word string, freq float64, tags pos.TagSet, ok bool) {
	for _, delim := range lemmaDelims {
		if !strings.Contains(line, delim) {
			continue
		}
		parts := strings.Split(strings.TrimSpace(line), delim)
		if len(parts) < 4 {
			continue
		}

		if _, err := strconv.Atoi(strings.TrimSpace(parts[0])); err != nil {
			continue
		}

		word = strings.ToLower(strings.TrimSpace(parts[1]))
		posText := strings.TrimSpace(parts[2])

		if idx := strings.Index(word, "_"); idx >= 0 {
			if posText == "" {
				posText = word[idx+1:]
			}
			word = word[:idx]
		}

		freq = -1
		for _, field := range parts[3:] {
			val, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err == nil {
				freq = val
				break
			}
		}
		if word == "" || freq < 0 {
			continue
		}

		return word, freq, pos.Normalize(posText), true
	}
	return "", 0, nil, false
}
