// Package cover implements the downstream contract of the frequency
// list: turning each word's POS tag list into a per-tag probability
// distribution (the cover weights) and verifying a persisted cover
// mapping against the list it was generated from.
package cover

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/wordfreq/pkg/wordfreq/pos"
)

// SumTolerance is the allowed deviation of a word's weight sum from 1.0.
const SumTolerance = 0.0001

// Entry is one word's cover record: its tag list in file order and the
// assigned weights.
type Entry struct {
	Word    string
	Tags    []pos.Tag
	Weights map[pos.Tag]float64
}

// AssignWeights distributes probability mass over a tag list. The
// first listed tag is assumed the most common sense of the word.
// The result always sums to 1.0 within SumTolerance.
func AssignWeights(tags []pos.Tag) map[pos.Tag]float64 {
	weights := make(map[pos.Tag]float64, len(tags))
	switch len(tags) {
	case 0:
	case 1:
		weights[tags[0]] = 1.0
	case 2:
		weights[tags[0]] = 0.6
		weights[tags[1]] = 0.4
	case 3:
		weights[tags[0]] = 0.5
		weights[tags[1]] = 0.3
		weights[tags[2]] = 0.2
	case 4:
		weights[tags[0]] = 0.4
		weights[tags[1]] = 0.3
		weights[tags[2]] = 0.2
		weights[tags[3]] = 0.1
	case 5:
		weights[tags[0]] = 0.35
		weights[tags[1]] = 0.25
		weights[tags[2]] = 0.2
		weights[tags[3]] = 0.1
		weights[tags[4]] = 0.1
	default:
		even := 1.0 / float64(len(tags))
		for _, t := range tags {
			weights[t] = even
		}
	}
	return weights
}

// Generate reads the word|TAG1,TAG2 line format and produces cover
// entries for every line that carries tags. Bare words (no POS) have
// no weights to assign and are skipped.
func Generate(r io.Reader) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Split(line, "|")
		if len(parts) != 2 {
			continue
		}
		word := strings.TrimSpace(parts[0])
		if word == "" {
			continue
		}

		var tags []pos.Tag
		for _, raw := range strings.Split(parts[1], ",") {
			t := pos.Tag(strings.TrimSpace(raw))
			if t != "" {
				tags = append(tags, t)
			}
		}
		if len(tags) == 0 {
			continue
		}

		entries = append(entries, Entry{
			Word:    word,
			Tags:    tags,
			Weights: AssignWeights(tags),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// AppendYAML writes cover entries in the cover.yaml layout, one word
// mapping per entry with tags in alphabetical order.
func AppendYAML(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		doc := map[string]map[string]float64{e.Word: tagWeights(e.Weights)}
		data, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", e.Word, err)
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
	}
	return nil
}

func tagWeights(weights map[pos.Tag]float64) map[string]float64 {
	out := make(map[string]float64, len(weights))
	for t, v := range weights {
		out[string(t)] = v
	}
	return out
}
