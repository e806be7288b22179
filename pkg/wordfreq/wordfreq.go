package wordfreq

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/wordfreq/pkg/wordfreq/aggregate"
	"github.com/cognicore/wordfreq/pkg/wordfreq/internalerr"
	"github.com/cognicore/wordfreq/pkg/wordfreq/rank"
	"github.com/cognicore/wordfreq/pkg/wordfreq/source"
)

// Source selects the corpus format and the file(s) to ingest. Exactly
// one Source is active per run; only the ngram kind accepts multiple
// paths, which are summed across files.
type Source struct {
	Kind  source.Kind
	Paths []string
}

// Options configures a Pipeline.
type Options struct {
	Source   Source
	TopN     int
	Exclude  []string // words dropped from the final list
	Observer source.Observer
}

// Pipeline is the frequency-list builder facade: parse each input file
// through its adapter, merge under the kind's policy, filter, rank,
// truncate. The whole aggregate lives in memory; nothing is emitted
// until every source is consumed and validated non-empty.
type Pipeline struct {
	opts Options
	obs  source.Observer
}

// New creates a Pipeline with the given options.
func New(opts Options) *Pipeline {
	obs := opts.Observer
	if obs == nil {
		obs = source.LogObserver{}
	}
	return &Pipeline{opts: opts, obs: obs}
}

// Result holds one completed run.
type Result struct {
	RunID string
	Words []aggregate.Word // ranked, truncated to TopN
}

// Run executes the pipeline. It fails with ErrSourceUnavailable when a
// single-source run cannot read its input, and with ErrEmptyResult
// when no words survive filtering; individual files in a multi-file
// ngram run are skipped with a warning instead.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	runID := ulid.MustNew(ulid.Now(), rand.Reader).String()

	if len(p.opts.Source.Paths) == 0 {
		return Result{}, internalerr.ErrNoSource
	}
	if len(p.opts.Source.Paths) > 1 && p.opts.Source.Kind != source.KindNgram {
		return Result{}, fmt.Errorf("%w: %s sources accept a single file", internalerr.ErrInvalidConfig, p.opts.Source.Kind)
	}

	adapter := p.adapter()
	multi := len(p.opts.Source.Paths) > 1

	acc := aggregate.NewAccumulator()
	for _, path := range p.opts.Source.Paths {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		mapping, err := adapter.Parse(path)
		if err != nil {
			if multi {
				p.obs.Warnf("run %s: skipping %s: %v", runID, path, err)
				continue
			}
			return Result{}, err
		}
		acc.Merge(adapter.Kind(), mapping)
	}

	for _, word := range p.opts.Exclude {
		acc.Remove(strings.ToLower(word))
	}

	if acc.Len() == 0 {
		return Result{}, internalerr.ErrEmptyResult
	}

	ranked := rank.Top(acc.Words(), p.opts.TopN)
	if len(ranked) == 0 {
		return Result{}, internalerr.ErrEmptyResult
	}

	return Result{RunID: runID, Words: ranked}, nil
}

func (p *Pipeline) adapter() source.Adapter {
	switch p.opts.Source.Kind {
	case source.KindLemma:
		return source.NewLemma(p.obs)
	case source.KindCSV:
		return source.NewCSV(p.obs)
	default:
		return source.NewNgram(p.obs)
	}
}
