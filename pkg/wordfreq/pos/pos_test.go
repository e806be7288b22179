package pos

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Tag
	}{
		{
			name:  "noun abbreviation",
			input: "n.",
			want:  []Tag{Noun},
		},
		{
			name:  "noun and verb",
			input: "n., v.",
			want:  []Tag{Noun, Verb},
		},
		{
			name:  "transitive verb",
			input: "v. t.",
			want:  []Tag{Verb},
		},
		{
			name:  "intransitive verb",
			input: "v. i.",
			want:  []Tag{Verb},
		},
		{
			name:  "adjective",
			input: "adj.",
			want:  []Tag{Adjective},
		},
		{
			name:  "bare a is adjective",
			input: "a.",
			want:  []Tag{Adjective},
		},
		{
			name:  "adjective and adverb",
			input: "adj., adv.",
			want:  []Tag{Adjective, Adverb},
		},
		{
			name:  "definite article",
			input: "def. art.",
			want:  []Tag{Determiner},
		},
		{
			name:  "determiner abbreviation",
			input: "det.",
			want:  []Tag{Determiner},
		},
		{
			name:  "preposition",
			input: "prep.",
			want:  []Tag{Preposition},
		},
		{
			name:  "conjunction",
			input: "conj.",
			want:  []Tag{Conjunction},
		},
		{
			name:  "pronoun",
			input: "pron.",
			want:  []Tag{Pronoun},
		},
		{
			name:  "full words",
			input: "noun, verb",
			want:  []Tag{Noun, Verb},
		},
		{
			name:  "case insensitive",
			input: "N., ADV.",
			want:  []Tag{Noun, Adverb},
		},
		{
			name:  "unknown notation",
			input: "xyz.",
			want:  nil,
		},
		{
			name:  "interjection is dropped",
			input: "interj.",
			want:  nil,
		},
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace only",
			input: "   ",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("Normalize(%q) = %v, want %v", tt.input, got.Sorted(), tt.want)
			}
			for _, tag := range tt.want {
				if !got.Contains(tag) {
					t.Errorf("Normalize(%q) missing %s, got %v", tt.input, tag, got.Sorted())
				}
			}
		})
	}
}

func TestNormalizeNeverPanics(t *testing.T) {
	inputs := []string{"....", "_", "123", "n v adj adv prep conj pron det", "\t\n"}
	for _, in := range inputs {
		_ = Normalize(in)
	}
}

func TestTagSetUnionOnlyGrows(t *testing.T) {
	s := NewTagSet(Noun)
	s.Union(NewTagSet(Verb, Adjective))

	for _, tag := range []Tag{Noun, Verb, Adjective} {
		if !s.Contains(tag) {
			t.Errorf("set missing %s after union", tag)
		}
	}
	if len(s) != 3 {
		t.Errorf("expected 3 tags, got %d", len(s))
	}

	// Union with empty must not remove anything
	s.Union(NewTagSet())
	if len(s) != 3 {
		t.Errorf("union with empty set changed size to %d", len(s))
	}
}

func TestTagSetString(t *testing.T) {
	tests := []struct {
		name string
		set  TagSet
		want string
	}{
		{"empty", NewTagSet(), ""},
		{"single", NewTagSet(Determiner), "Det"},
		{"alphabetical order", NewTagSet(Verb, Noun, Adjective), "Adj,N,V"},
		{"adv before n", NewTagSet(Noun, Adverb), "Adv,N"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.set.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTagSetClone(t *testing.T) {
	orig := NewTagSet(Noun)
	clone := orig.Clone()
	clone.Add(Verb)

	if orig.Contains(Verb) {
		t.Error("mutating a clone must not affect the original")
	}
}

func TestValid(t *testing.T) {
	for _, tag := range AllTags {
		if !Valid(tag) {
			t.Errorf("%s should be valid", tag)
		}
	}
	if Valid(Tag("Interj")) {
		t.Error("Interj is outside the vocabulary")
	}
	if Valid(Tag("")) {
		t.Error("empty tag should be invalid")
	}
}
