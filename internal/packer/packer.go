// internal/packer/packer.go
//
// The boundary to the compaction engine. The engine itself lives
// outside this repository; shrinkwrap only consumes the lazy sequence
// of methods it produces. Each method carries a baseline encoding of
// the source plus the incremental stages the method went through while
// refining it.

package packer

import "context"

// Method is one compaction strategy's output.
type Method struct {
	Name     string   `json:"name"`
	Baseline string   `json:"baseline"`
	Stages   []string `json:"stages"`
}

// MethodIterator is a lazy, finite, non-restartable sequence of
// methods. ok is false once the sequence is exhausted; a non-nil err
// also ends the sequence.
type MethodIterator interface {
	Next() (m Method, ok bool, err error)
}

// CandidateIterator is a lazy sequence of candidate encodings of the
// source text. Order carries no meaning beyond being a heuristic.
type CandidateIterator interface {
	Next() (candidate string, ok bool, err error)
}

// Options configures an engine run. The pipeline always passes the
// zero value; the type exists so engines with tunables keep a stable
// signature.
type Options struct{}

// Engine proposes alternative encodings of a source text.
type Engine interface {
	Pack(ctx context.Context, source string, opts Options) (MethodIterator, error)
}

// Candidates flattens a method sequence into a single lazy candidate
// sequence: each method contributes its baseline first, then its
// stages from the last toward the first. Later stages tend to be
// smaller, but selection does not rely on that.
func Candidates(methods MethodIterator) CandidateIterator {
	return &flattener{methods: methods}
}

type flattener struct {
	methods MethodIterator
	queue   []string
}

func (f *flattener) Next() (string, bool, error) {
	for len(f.queue) == 0 {
		m, ok, err := f.methods.Next()
		if err != nil {
			return "", false, err
		}
		if !ok {
			return "", false, nil
		}
		f.queue = append(f.queue, m.Baseline)
		for i := len(m.Stages) - 1; i >= 0; i-- {
			f.queue = append(f.queue, m.Stages[i])
		}
	}
	candidate := f.queue[0]
	f.queue = f.queue[1:]
	return candidate, true, nil
}

// Slice adapts an in-memory method list to a MethodIterator. Mostly
// useful for tests and stub engines.
func Slice(methods []Method) MethodIterator {
	return &sliceIterator{methods: methods}
}

type sliceIterator struct {
	methods []Method
	pos     int
}

func (s *sliceIterator) Next() (Method, bool, error) {
	if s.pos >= len(s.methods) {
		return Method{}, false, nil
	}
	m := s.methods[s.pos]
	s.pos++
	return m, true, nil
}
