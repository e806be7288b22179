package pos

import (
	"regexp"
	"sort"
	"strings"
)

// Tag is a simplified part-of-speech tag.
type Tag string

// The fixed tag vocabulary. Notations outside it (interjections etc.)
// are dropped during normalization.
const (
	Noun        Tag = "N"
	Verb        Tag = "V"
	Adjective   Tag = "Adj"
	Adverb      Tag = "Adv"
	Preposition Tag = "Prep"
	Conjunction Tag = "Conj"
	Pronoun     Tag = "Pron"
	Determiner  Tag = "Det"
)

// AllTags lists the vocabulary in canonical order.
var AllTags = []Tag{Noun, Verb, Adjective, Adverb, Preposition, Conjunction, Pronoun, Determiner}

// Valid reports whether t belongs to the fixed vocabulary.
func Valid(t Tag) bool {
	for _, known := range AllTags {
		if t == known {
			return true
		}
	}
	return false
}

// TagSet is a set of POS tags. The zero value is not usable; call NewTagSet.
type TagSet map[Tag]struct{}

// NewTagSet creates a set containing the given tags.
func NewTagSet(tags ...Tag) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

// Add inserts a tag into the set.
func (s TagSet) Add(t Tag) {
	s[t] = struct{}{}
}

// Contains reports whether the set holds t.
func (s TagSet) Contains(t Tag) bool {
	_, ok := s[t]
	return ok
}

// Union merges all tags from other into the receiver.
// Sets only grow; nothing is ever removed.
func (s TagSet) Union(other TagSet) {
	for t := range other {
		s[t] = struct{}{}
	}
}

// Clone returns an independent copy of the set.
func (s TagSet) Clone() TagSet {
	out := make(TagSet, len(s))
	for t := range s {
		out[t] = struct{}{}
	}
	return out
}

// Sorted returns the tags in alphabetical order, the order used in the
// serialized word|TAG1,TAG2 line format.
func (s TagSet) Sorted() []Tag {
	out := make([]Tag, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// String renders the set as a comma-joined, alphabetically sorted list.
func (s TagSet) String() string {
	tags := s.Sorted()
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, ",")
}

// Dictionary abbreviation patterns, one per tag. A pattern contributes
// zero or one tag; several may fire on the same input ("n., v." → N and V).
var (
	nounRe = regexp.MustCompile(`\bn\.?\b`)
	verbRe = regexp.MustCompile(`\bv\.?\s*(t\.?|i\.?)?\b`)
	adjRe  = regexp.MustCompile(`\ba\.?\b|\badj\.?\b`)
	advRe  = regexp.MustCompile(`\badv\.?\b`)
	prepRe = regexp.MustCompile(`\bprep\.?\b`)
	conjRe = regexp.MustCompile(`\bconj\.?\b`)
	pronRe = regexp.MustCompile(`\bpron\.?\b`)
)

// Normalize converts free-form POS abbreviation text ("n.", "v. t.",
// "adj., adv.", "def. art.") into the simplified tag set. Matching is
// case-insensitive and tolerant of trailing punctuation. Unrecognized
// text yields the empty set; Normalize never fails.
func Normalize(text string) TagSet {
	tags := NewTagSet()
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return tags
	}

	if nounRe.MatchString(text) || strings.Contains(text, "noun") {
		tags.Add(Noun)
	}
	if verbRe.MatchString(text) || strings.Contains(text, "verb") {
		tags.Add(Verb)
	}
	if adjRe.MatchString(text) || strings.Contains(text, "adjective") {
		tags.Add(Adjective)
	}
	if advRe.MatchString(text) || strings.Contains(text, "adverb") {
		tags.Add(Adverb)
	}
	if prepRe.MatchString(text) || strings.Contains(text, "preposition") {
		tags.Add(Preposition)
	}
	if conjRe.MatchString(text) || strings.Contains(text, "conjunction") {
		tags.Add(Conjunction)
	}
	if pronRe.MatchString(text) || strings.Contains(text, "pronoun") {
		tags.Add(Pronoun)
	}
	if strings.Contains(text, "def. art.") || strings.Contains(text, "definite article") || strings.Contains(text, "det.") {
		tags.Add(Determiner)
	}

	return tags
}
