package rank

import (
	"bufio"
	"io"
	"sort"
	"unicode"

	"github.com/cognicore/wordfreq/pkg/wordfreq/aggregate"
	"github.com/cognicore/wordfreq/pkg/wordfreq/source"
)

// Top filters, orders, and truncates the aggregate to the n
// highest-frequency words. The alphabetic/length filter is a safety
// net re-check; adapters already enforce it at their boundary. Ties on
// frequency break alphabetically so identical input always produces
// identical output.
func Top(words []aggregate.Word, n int) []aggregate.Word {
	filtered := make([]aggregate.Word, 0, len(words))
	for _, w := range words {
		if len([]rune(w.Word)) <= source.MaxWordLen && isAlpha(w.Word) {
			filtered = append(filtered, w)
		}
	}

	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].Freq != filtered[j].Freq {
			return filtered[i].Freq > filtered[j].Freq
		}
		return filtered[i].Word < filtered[j].Word
	})

	if n >= 0 && len(filtered) > n {
		filtered = filtered[:n]
	}
	return filtered
}

// Format serializes ranked words one per line: "word|TAG1,TAG2" with
// tags sorted alphabetically, or the bare word when no POS survived.
func Format(w io.Writer, ranked []aggregate.Word) error {
	bw := bufio.NewWriter(w)
	for _, word := range ranked {
		if _, err := bw.WriteString(word.Word); err != nil {
			return err
		}
		if len(word.Tags) > 0 {
			if _, err := bw.WriteString("|" + word.Tags.String()); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
