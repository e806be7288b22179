package cover

import (
	"fmt"
	"io"
	"math"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/wordfreq/pkg/wordfreq/pos"
)

// BadSum records a word whose weights do not sum to 1.0.
type BadSum struct {
	Word string
	Sum  float64
}

// Report is the outcome of verifying a cover mapping.
type Report struct {
	Words       int      // distinct word keys in the mapping
	Missing     []string // wordlist words absent from the mapping
	Duplicates  []string // word keys that appear more than once
	BadSums     []BadSum // weight sums outside SumTolerance of 1.0
	UnknownTags []string // "word/TAG" pairs outside the fixed vocabulary
}

// OK reports whether the cover mapping passed all checks.
func (r Report) OK() bool {
	return len(r.Missing) == 0 && len(r.Duplicates) == 0 &&
		len(r.BadSums) == 0 && len(r.UnknownTags) == 0
}

// Summary renders a short human-readable report.
func (r Report) Summary() string {
	if r.OK() {
		return fmt.Sprintf("ok: %d words, all weights sum to 1.0", r.Words)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d words checked\n", r.Words)
	for _, w := range r.Missing {
		fmt.Fprintf(&b, "missing: %s\n", w)
	}
	for _, w := range r.Duplicates {
		fmt.Fprintf(&b, "duplicate key: %s\n", w)
	}
	for _, bs := range r.BadSums {
		fmt.Fprintf(&b, "bad sum: %s = %.6f\n", bs.Word, bs.Sum)
	}
	for _, t := range r.UnknownTags {
		fmt.Fprintf(&b, "unknown tag: %s\n", t)
	}
	return strings.TrimRight(b.String(), "\n")
}

// wordKeyRe matches a top-level word key line in the cover YAML.
// Duplicate keys must be found on the raw text because the YAML
// decoder silently keeps only the last occurrence.
var wordKeyRe = regexp.MustCompile(`(?m)^([a-z]+):\s*$`)

// Verify checks a persisted cover mapping: every wordlist word is
// present, no word key is duplicated, every word's weights sum to 1.0
// within SumTolerance, and every tag belongs to the fixed vocabulary.
func Verify(r io.Reader, wordlist []string) (Report, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Report{}, err
	}

	var report Report

	seen := make(map[string]int)
	for _, match := range wordKeyRe.FindAllStringSubmatch(string(raw), -1) {
		seen[match[1]]++
	}
	for word, count := range seen {
		if count > 1 {
			report.Duplicates = append(report.Duplicates, word)
		}
	}

	var data map[string]map[string]float64
	if err := yaml.Unmarshal(raw, &data); err != nil {
		// The v3 decoder rejects duplicate keys outright; the raw
		// scan above already recorded them, so report that instead
		// of failing.
		if len(report.Duplicates) > 0 {
			sort.Strings(report.Duplicates)
			return report, nil
		}
		return Report{}, fmt.Errorf("parse cover yaml: %w", err)
	}
	report.Words = len(data)

	for _, word := range wordlist {
		if _, ok := data[word]; !ok {
			report.Missing = append(report.Missing, word)
		}
	}

	for word, weights := range data {
		sum := 0.0
		for tag, weight := range weights {
			sum += weight
			if !pos.Valid(pos.Tag(tag)) {
				report.UnknownTags = append(report.UnknownTags, word+"/"+tag)
			}
		}
		if math.Abs(sum-1.0) > SumTolerance {
			report.BadSums = append(report.BadSums, BadSum{Word: word, Sum: sum})
		}
	}

	sort.Strings(report.Missing)
	sort.Strings(report.Duplicates)
	sort.Strings(report.UnknownTags)
	sort.Slice(report.BadSums, func(i, j int) bool {
		return report.BadSums[i].Word < report.BadSums[j].Word
	})
	return report, nil
}
