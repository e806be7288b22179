package source

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cognicore/wordfreq/pkg/wordfreq/internalerr"
	"github.com/cognicore/wordfreq/pkg/wordfreq/pos"
)

// progressEvery is the line interval between progress events when
// streaming large ngram files.
const progressEvery = 1000000

// NgramAdapter parses Google Books 1-gram files:
//
//	word[_POS] TAB year TAB match_count TAB page_count TAB volume_count
//
// The corpus is partitioned by year, so the same bare word is summed
// across all its year rows into one all-time total. Files ending in
// .gz are decompressed transparently.
type NgramAdapter struct {
	obs Observer
}

// NewNgram creates an ngram adapter reporting to obs.
func NewNgram(obs Observer) *NgramAdapter {
	if obs == nil {
		obs = NopObserver{}
	}
	return &NgramAdapter{obs: obs}
}

// Kind implements Adapter.
func (a *NgramAdapter) Kind() Kind { return KindNgram }

// Parse streams one ngram file line by line and returns the per-word
// totals. A missing file yields an empty mapping and an error; the
// caller decides whether that is fatal.
func (a *NgramAdapter) Parse(path string) (map[string]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		a.obs.Warnf("open %s: %v", path, err)
		return map[string]Entry{}, fmt.Errorf("%w: %s", internalerr.ErrSourceUnavailable, path)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			a.obs.Warnf("gzip %s: %v", path, err)
			return map[string]Entry{}, fmt.Errorf("%w: %s", internalerr.ErrSourceUnavailable, path)
		}
		defer gz.Close()
		r = gz
	}

	words := make(map[string]Entry)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lines := 0
	for scanner.Scan() {
		word, count, tags, ok := parseNgramLine(scanner.Text())
		if ok && eligible(word) {
			entry := words[word]
			entry.Freq += float64(count)
			if entry.Tags == nil {
				entry.Tags = pos.NewTagSet()
			}
			entry.Tags.Union(tags)
			words[word] = entry
		}

		lines++
		if lines%progressEvery == 0 {
			a.obs.Progress(path, lines)
		}
	}
	if err := scanner.Err(); err != nil {
		a.obs.Warnf("read %s: %v", path, err)
		return map[string]Entry{}, nil
	}

	return words, nil
}

// parseNgramLine splits one tab-separated ngram row. The word token may
// carry a _POS suffix; it is split off at the first underscore and
// normalized. Rows whose match count does not parse are skipped.
func parseNgramLine(line string) (word string, count int64, tags pos.TagSet, ok bool) {
	parts := strings.Split(strings.TrimSpace(line), "\t")
	if len(parts) < 3 {
		return "", 0, nil, false
	}

	word = strings.ToLower(parts[0])
	tags = pos.NewTagSet()
	if idx := strings.Index(word, "_"); idx >= 0 {
		tags = pos.Normalize(word[idx+1:])
		word = word[:idx]
	}

	count, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return "", 0, nil, false
	}
	return word, count, tags, true
}
