package cover

import (
	"math"
	"strings"
	"testing"
)

const goodCover = `
the:
  Det: 1.0
run:
  N: 0.6
  V: 0.4
`

func TestVerifyClean(t *testing.T) {
	report, err := Verify(strings.NewReader(goodCover), []string{"the", "run"})
	if err != nil {
		t.Fatal(err)
	}
	if !report.OK() {
		t.Errorf("expected clean report, got:\n%s", report.Summary())
	}
	if report.Words != 2 {
		t.Errorf("words = %d, want 2", report.Words)
	}
}

func TestVerifyMissingWord(t *testing.T) {
	report, err := Verify(strings.NewReader(goodCover), []string{"the", "run", "cat"})
	if err != nil {
		t.Fatal(err)
	}
	if report.OK() {
		t.Fatal("expected failure for uncovered word")
	}
	if len(report.Missing) != 1 || report.Missing[0] != "cat" {
		t.Errorf("missing = %v, want [cat]", report.Missing)
	}
}

func TestVerifyDuplicateKey(t *testing.T) {
	dup := `
the:
  Det: 1.0
the:
  N: 1.0
`
	report, err := Verify(strings.NewReader(dup), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Duplicates) != 1 || report.Duplicates[0] != "the" {
		t.Errorf("duplicates = %v, want [the]; raw scan must catch what the decoder collapses", report.Duplicates)
	}
}

func TestVerifyBadSum(t *testing.T) {
	bad := `
run:
  N: 0.6
  V: 0.5
`
	report, err := Verify(strings.NewReader(bad), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.BadSums) != 1 {
		t.Fatalf("badsums = %v, want one entry", report.BadSums)
	}
	if report.BadSums[0].Word != "run" || math.Abs(report.BadSums[0].Sum-1.1) > 1e-9 {
		t.Errorf("badsum = %+v, want run/1.1", report.BadSums[0])
	}
}

func TestVerifyWithinTolerance(t *testing.T) {
	close := `
odd:
  N: 0.33333
  V: 0.33333
  Adj: 0.33334
`
	report, err := Verify(strings.NewReader(close), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.BadSums) != 0 {
		t.Errorf("sum within tolerance flagged: %v", report.BadSums)
	}
}

func TestVerifyUnknownTag(t *testing.T) {
	unknown := `
wow:
  Interj: 1.0
`
	report, err := Verify(strings.NewReader(unknown), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.UnknownTags) != 1 || report.UnknownTags[0] != "wow/Interj" {
		t.Errorf("unknown tags = %v, want [wow/Interj]", report.UnknownTags)
	}
}

func TestVerifyMalformedYAML(t *testing.T) {
	if _, err := Verify(strings.NewReader("\tfoo: bar"), nil); err == nil {
		t.Error("expected parse error")
	}
}
