// internal/selector/selector.go
//
// Streaming best-of-N reduction over the candidate sequence. Only the
// current best candidate is ever held; the sequence is walked once and
// its order never affects which candidate wins.

package selector

import (
	"errors"
	"fmt"

	"shrinkwrap/internal/packer"
)

// ErrNoCandidates means the compaction engine proposed nothing, so no
// winner can be determined. The selector never falls back to the
// unmodified source.
var ErrNoCandidates = errors.New("selector: engine produced no candidates")

// Winner is the smallest candidate seen, with its exact encoded size.
// Size counts bytes under UTF-8, the encoding the artifacts are
// persisted in; character count would undercount multi-byte runes.
type Winner struct {
	Text string
	Size int
}

// Progress is invoked after each candidate is weighed.
type Progress func(seen int, best Winner)

// Option customizes a selection run.
type Option func(*options)

type options struct {
	progress Progress
}

// WithProgress registers a callback fired once per candidate.
func WithProgress(fn Progress) Option {
	return func(o *options) {
		o.progress = fn
	}
}

// smaller is the single replacement rule: a candidate displaces the
// current best only when it is strictly smaller, so the first
// candidate to reach a given size keeps the win on ties.
func smaller(size, best int) bool {
	return size < best
}

// Best consumes the candidate sequence and returns the first-seen
// smallest candidate by encoded byte length.
func Best(candidates packer.CandidateIterator, opts ...Option) (Winner, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	var (
		best Winner
		seen int
	)
	for {
		text, ok, err := candidates.Next()
		if err != nil {
			return Winner{}, fmt.Errorf("selector: consume candidates: %w", err)
		}
		if !ok {
			break
		}
		seen++
		size := len(text)
		if seen == 1 || smaller(size, best.Size) {
			best = Winner{Text: text, Size: size}
		}
		if o.progress != nil {
			o.progress(seen, best)
		}
	}
	if seen == 0 {
		return Winner{}, ErrNoCandidates
	}
	return best, nil
}
