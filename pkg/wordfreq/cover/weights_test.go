package cover

import (
	"math"
	"strings"
	"testing"

	"github.com/cognicore/wordfreq/pkg/wordfreq/pos"
)

func TestAssignWeightsPatterns(t *testing.T) {
	tests := []struct {
		name string
		tags []pos.Tag
		want map[pos.Tag]float64
	}{
		{
			name: "single tag gets everything",
			tags: []pos.Tag{pos.Noun},
			want: map[pos.Tag]float64{pos.Noun: 1.0},
		},
		{
			name: "two tags favor the first",
			tags: []pos.Tag{pos.Noun, pos.Verb},
			want: map[pos.Tag]float64{pos.Noun: 0.6, pos.Verb: 0.4},
		},
		{
			name: "three tags",
			tags: []pos.Tag{pos.Adjective, pos.Noun, pos.Verb},
			want: map[pos.Tag]float64{pos.Adjective: 0.5, pos.Noun: 0.3, pos.Verb: 0.2},
		},
		{
			name: "four tags",
			tags: []pos.Tag{pos.Adjective, pos.Adverb, pos.Noun, pos.Verb},
			want: map[pos.Tag]float64{pos.Adjective: 0.4, pos.Adverb: 0.3, pos.Noun: 0.2, pos.Verb: 0.1},
		},
		{
			name: "five tags",
			tags: []pos.Tag{pos.Adjective, pos.Adverb, pos.Noun, pos.Preposition, pos.Verb},
			want: map[pos.Tag]float64{
				pos.Adjective: 0.35, pos.Adverb: 0.25, pos.Noun: 0.2,
				pos.Preposition: 0.1, pos.Verb: 0.1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AssignWeights(tt.tags)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d weights, want %d", len(got), len(tt.want))
			}
			for tag, weight := range tt.want {
				if got[tag] != weight {
					t.Errorf("%s = %v, want %v", tag, got[tag], weight)
				}
			}
		})
	}
}

func TestAssignWeightsAlwaysSumToOne(t *testing.T) {
	for n := 1; n <= len(pos.AllTags); n++ {
		tags := pos.AllTags[:n]
		weights := AssignWeights(tags)

		sum := 0.0
		for _, w := range weights {
			sum += w
		}
		if math.Abs(sum-1.0) > SumTolerance {
			t.Errorf("%d tags: sum = %v, want 1.0 within %v", n, sum, SumTolerance)
		}
	}
}

func TestAssignWeightsSixPlusIsUniform(t *testing.T) {
	weights := AssignWeights(pos.AllTags[:6])
	for tag, w := range weights {
		if math.Abs(w-1.0/6.0) > 1e-9 {
			t.Errorf("%s = %v, want uniform 1/6", tag, w)
		}
	}
}

func TestGenerate(t *testing.T) {
	input := "the|Det\nrun|N,V\nplain\n\n"

	entries, err := Generate(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}

	// "plain" carries no tags and is skipped.
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	if entries[0].Word != "the" || entries[0].Weights[pos.Determiner] != 1.0 {
		t.Errorf("the: %+v", entries[0])
	}
	if entries[1].Word != "run" {
		t.Fatalf("second entry = %s, want run", entries[1].Word)
	}
	if entries[1].Weights[pos.Noun] != 0.6 || entries[1].Weights[pos.Verb] != 0.4 {
		t.Errorf("run weights = %v, want first-listed tag favored", entries[1].Weights)
	}
}

func TestAppendYAMLRoundTrip(t *testing.T) {
	entries, err := Generate(strings.NewReader("the|Det\nrun|N,V\nfast|Adj,Adv,N\n"))
	if err != nil {
		t.Fatal(err)
	}

	var buf strings.Builder
	if err := AppendYAML(&buf, entries); err != nil {
		t.Fatal(err)
	}

	report, err := Verify(strings.NewReader(buf.String()), []string{"the", "run", "fast"})
	if err != nil {
		t.Fatal(err)
	}
	if !report.OK() {
		t.Errorf("generated cover must verify clean:\n%s", report.Summary())
	}
	if report.Words != 3 {
		t.Errorf("words = %d, want 3", report.Words)
	}
}
