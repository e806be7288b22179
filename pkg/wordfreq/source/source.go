package source

import (
	"log"
	"unicode"

	"github.com/cognicore/wordfreq/pkg/wordfreq/pos"
)

// MaxWordLen is the longest word the downstream encoder accepts.
const MaxWordLen = 6

// Kind identifies an input corpus format. Adapters are selected by an
// explicit kind, never by content sniffing.
type Kind int

const (
	// KindNgram is the Google Books 1-gram format, partitioned by year.
	KindNgram Kind = iota
	// KindLemma is the rank/lemma/POS/frequency format with an
	// ambiguous delimiter (tab, pipe, or comma).
	KindLemma
	// KindCSV is a plain word,frequency file without POS data.
	KindCSV
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindNgram:
		return "ngram"
	case KindLemma:
		return "lemma"
	case KindCSV:
		return "csv"
	}
	return "unknown"
}

// Additive reports whether this kind's corpora are partial slices that
// must be summed to reconstruct all-time totals. Non-additive kinds are
// authoritative snapshots where duplicates resolve by max.
func (k Kind) Additive() bool {
	return k == KindNgram
}

// Entry is the per-word result of parsing one source file.
type Entry struct {
	Freq float64
	Tags pos.TagSet
}

// Adapter turns one raw corpus file into a word → Entry mapping.
// Every surviving word is lowercase, alphabetic, and at most MaxWordLen
// runes long.
type Adapter interface {
	Parse(path string) (map[string]Entry, error)
	Kind() Kind
}

// Observer receives progress and diagnostic events from the parsing
// loops, keeping the parsers themselves free of output side effects.
type Observer interface {
	Progress(path string, lines int)
	Warnf(format string, args ...any)
}

// LogObserver writes events to the standard logger.
type LogObserver struct{}

// Progress implements Observer.
func (LogObserver) Progress(path string, lines int) {
	log.Printf("%s: processed %d lines", path, lines)
}

// Warnf implements Observer.
func (LogObserver) Warnf(format string, args ...any) {
	log.Printf("warning: "+format, args...)
}

// NopObserver discards all events.
type NopObserver struct{}

// Progress implements Observer.
func (NopObserver) Progress(string, int) {}

// Warnf implements Observer.
func (NopObserver) Warnf(string, ...any) {}

// eligible reports whether a word survives the adapter boundary filter.
func eligible(word string) bool {
	if word == "" || len([]rune(word)) > MaxWordLen {
		return false
	}
	return isAlpha(word)
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
