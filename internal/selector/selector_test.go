package selector

import (
	"errors"
	"fmt"
	"testing"
)

// stringIterator feeds a fixed candidate list, optionally failing after
// the list is exhausted.
type stringIterator struct {
	values []string
	err    error
	pos    int
}

func (s *stringIterator) Next() (string, bool, error) {
	if s.pos >= len(s.values) {
		return "", false, s.err
	}
	v := s.values[s.pos]
	s.pos++
	return v, true, nil
}

func TestBestReturnsSmallest(t *testing.T) {
	it := &stringIterator{values: []string{"longest of all", "short", "mid-sized", "tiny", "short"}}
	w, err := Best(it)
	if err != nil {
		t.Fatalf("best: %v", err)
	}
	if w.Text != "tiny" || w.Size != 4 {
		t.Fatalf("got %q (%d bytes)", w.Text, w.Size)
	}
}

func TestBestIsMinimalOverWholeSequence(t *testing.T) {
	values := []string{"abcdef", "ab", "abcd", "abc", "abcdefgh", "ab"}
	w, err := Best(&stringIterator{values: values})
	if err != nil {
		t.Fatalf("best: %v", err)
	}
	for _, v := range values {
		if w.Size > len(v) {
			t.Fatalf("winner %d bytes exceeds candidate %q (%d bytes)", w.Size, v, len(v))
		}
	}
}

func TestBestSingleCandidate(t *testing.T) {
	w, err := Best(&stringIterator{values: []string{"only"}})
	if err != nil {
		t.Fatalf("best: %v", err)
	}
	if w.Text != "only" {
		t.Fatalf("got %q", w.Text)
	}
}

func TestBestTieBreakKeepsFirstSeen(t *testing.T) {
	w, err := Best(&stringIterator{values: []string{"abc", "xyz"}})
	if err != nil {
		t.Fatalf("best: %v", err)
	}
	if w.Text != "abc" {
		t.Fatalf("tie must keep the first candidate, got %q", w.Text)
	}
}

func TestBestComparesBytesNotRunes(t *testing.T) {
	// "€" is one rune but three bytes: a byte-for-byte tie with "abc",
	// so whichever comes first must win.
	w, err := Best(&stringIterator{values: []string{"€", "abc"}})
	if err != nil {
		t.Fatalf("best: %v", err)
	}
	if w.Text != "€" || w.Size != 3 {
		t.Fatalf("got %q (%d bytes), want the 3-byte rune first-seen", w.Text, w.Size)
	}

	w, err = Best(&stringIterator{values: []string{"abc", "€"}})
	if err != nil {
		t.Fatalf("best: %v", err)
	}
	if w.Text != "abc" {
		t.Fatalf("got %q, want first-seen tie winner", w.Text)
	}
}

func TestBestEmptySequenceFails(t *testing.T) {
	_, err := Best(&stringIterator{})
	if !errors.Is(err, ErrNoCandidates) {
		t.Fatalf("expected ErrNoCandidates, got %v", err)
	}
}

func TestBestPropagatesIteratorError(t *testing.T) {
	boom := fmt.Errorf("producer broke")
	_, err := Best(&stringIterator{values: []string{"a"}, err: boom})
	if err == nil || !errors.Is(err, boom) {
		t.Fatalf("expected wrapped producer error, got %v", err)
	}
}

func TestBestReportsProgress(t *testing.T) {
	var seen []int
	var bests []int
	_, err := Best(
		&stringIterator{values: []string{"aaaa", "aa", "aaa"}},
		WithProgress(func(n int, best Winner) {
			seen = append(seen, n)
			bests = append(bests, best.Size)
		}),
	)
	if err != nil {
		t.Fatalf("best: %v", err)
	}
	if len(seen) != 3 || seen[2] != 3 {
		t.Fatalf("progress calls: %v", seen)
	}
	if bests[0] != 4 || bests[1] != 2 || bests[2] != 2 {
		t.Fatalf("best sizes: %v", bests)
	}
}
