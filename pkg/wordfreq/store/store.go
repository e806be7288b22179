package store

import (
	"context"

	"github.com/cognicore/wordfreq/pkg/wordfreq/aggregate"
	"github.com/cognicore/wordfreq/pkg/wordfreq/pos"
)

// Store persists ranked run snapshots for later inspection. The
// pipeline itself is a pure batch transform; the snapshot is an
// optional side output, never an input to a later run.
type Store interface {
	Close() error

	// SaveRun replaces the snapshot for runID with the ranked words.
	SaveRun(ctx context.Context, runID string, words []aggregate.Word) error

	// Runs lists stored run IDs, most recent first.
	Runs(ctx context.Context) ([]string, error)

	// TopWords returns up to limit words of a run in rank order.
	TopWords(ctx context.Context, runID string, limit int) ([]aggregate.Word, error)

	// TagCounts returns, per POS tag, how many of the run's words
	// carry that tag.
	TagCounts(ctx context.Context, runID string) (map[pos.Tag]int, error)
}
