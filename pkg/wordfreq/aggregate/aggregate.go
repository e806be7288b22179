package aggregate

import (
	"github.com/cognicore/wordfreq/pkg/wordfreq/pos"
	"github.com/cognicore/wordfreq/pkg/wordfreq/source"
)

// Word is the per-word merged record threaded from the aggregator
// through ranking: the word itself, its merged frequency, and the
// union of every POS tag any source attached to it.
type Word struct {
	Word string
	Freq float64
	Tags pos.TagSet
}

// Accumulator merges adapter outputs into one unified word mapping.
// The merge policy depends on the source kind: ngram corpora are year
// slices and sum additively at every level, while lemma and CSV
// corpora are single snapshots whose duplicates resolve by max. Either
// way a word's frequency never decreases and its tag set only grows.
type Accumulator struct {
	words map[string]*Word
}

// NewAccumulator creates an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{words: make(map[string]*Word)}
}

// Merge folds one adapter output into the accumulator under the merge
// policy of its kind.
func (a *Accumulator) Merge(kind source.Kind, mapping map[string]source.Entry) {
	for word, entry := range mapping {
		agg, ok := a.words[word]
		if !ok {
			agg = &Word{Word: word, Freq: entry.Freq, Tags: pos.NewTagSet()}
			agg.Tags.Union(entry.Tags)
			a.words[word] = agg
			continue
		}

		if kind.Additive() {
			agg.Freq += entry.Freq
		} else if entry.Freq > agg.Freq {
			agg.Freq = entry.Freq
		}
		agg.Tags.Union(entry.Tags)
	}
}

// Len returns the number of distinct words accumulated so far.
func (a *Accumulator) Len() int {
	return len(a.words)
}

// Words returns a snapshot of the accumulated records. The returned
// slice is unordered; ranking imposes the final order.
func (a *Accumulator) Words() []Word {
	out := make([]Word, 0, len(a.words))
	for _, w := range a.words {
		out = append(out, *w)
	}
	return out
}

// Remove drops a word from the accumulator, used for exclusion lists.
func (a *Accumulator) Remove(word string) {
	delete(a.words, word)
}
