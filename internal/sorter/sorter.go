package sorter

import (
	"fmt"

	"github.com/ddirect/scorelist/internal/dualindex"
)

type Mode int

const (
	ByValue Mode = iota
	ByItem
)

func (m Mode) Valid() bool {
	return m == ByValue || m == ByItem
}

func (m Mode) String() string {
	switch m {
	case ByValue:
		return "value"
	case ByItem:
		return "item"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

type State int

const (
	NotStarted State = iota
	Positioned
	Exhausted
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Positioned:
		return "positioned"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Sorter walks an index in one of four orders. It never keeps a position inside
// the index: the only cursor is the lookahead item, and each step looks up its
// successor afresh, so the index can change between calls as long as the owner
// reports removals of the lookahead through Remove.
//
// Value order walks buckets by score and items inside a bucket by item id; the
// descending variants reverse both levels.
type Sorter struct {
	ix        *dualindex.Index
	mode      Mode
	ascending bool
	state     State
	next      int32
	hasNext   bool
}

// New returns a not yet started sorter bound to ix. It panics on an invalid mode.
func New(ix *dualindex.Index, mode Mode, ascending bool) *Sorter {
	if !mode.Valid() {
		panic(fmt.Errorf("sorter: invalid mode %v", mode))
	}
	return &Sorter{
		ix:        ix,
		mode:      mode,
		ascending: ascending,
	}
}

func (s *Sorter) Mode() Mode {
	return s.mode
}

func (s *Sorter) Ascending() bool {
	return s.ascending
}

func (s *Sorter) State() State {
	return s.state
}

// Begin returns the first item, or 0 when the index is empty, and primes the lookahead.
func (s *Sorter) Begin() int32 {
	first, ok := s.first()
	if !ok {
		s.exhaust()
		return 0
	}
	s.state = Positioned
	s.next, s.hasNext = s.step(first)
	return first
}

// Next returns the lookahead and advances. Once there is nothing left it moves
// to Exhausted and returns 0.
func (s *Sorter) Next() int32 {
	if s.state != Positioned {
		return 0
	}
	if !s.hasNext {
		s.exhaust()
		return 0
	}
	current := s.next
	s.next, s.hasNext = s.step(current)
	return current
}

// IsEnd reports whether the value last returned by Begin or Next is past the end.
func (s *Sorter) IsEnd() bool {
	return s.state != Positioned || s.ix.Len() == 0
}

func (s *Sorter) HasNext() bool {
	return s.state == Positioned && s.hasNext
}

// End resets the sorter to not started.
func (s *Sorter) End() {
	s.state = NotStarted
	s.next = 0
	s.hasNext = false
}

// Remove must be called before item leaves the index. If item is the lookahead,
// the lookahead moves on to its successor.
func (s *Sorter) Remove(item int32) {
	if s.state != Positioned || !s.hasNext || item != s.next {
		return
	}
	s.next, s.hasNext = s.step(item)
}

// Rescore must be called before item changes score. Only value order depends
// on the score, so item order ignores it.
func (s *Sorter) Rescore(item int32) {
	if s.mode == ByValue {
		s.Remove(item)
	}
}

func (s *Sorter) exhaust() {
	s.state = Exhausted
	s.next = 0
	s.hasNext = false
}

func (s *Sorter) first() (int32, bool) {
	switch {
	case s.mode == ByValue && s.ascending:
		return s.ix.ValueMin()
	case s.mode == ByValue:
		return s.ix.ValueMax()
	case s.ascending:
		return s.ix.ItemMin()
	default:
		return s.ix.ItemMax()
	}
}

func (s *Sorter) step(item int32) (int32, bool) {
	switch {
	case s.mode == ByValue && s.ascending:
		return s.ix.ValueAfter(item)
	case s.mode == ByValue:
		return s.ix.ValueBefore(item)
	case s.ascending:
		return s.ix.ItemAfter(item)
	default:
		return s.ix.ItemBefore(item)
	}
}
