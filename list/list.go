// Package list implements a collection of integer items, each carrying an integer
// score, with a configurable iteration order, range filters, set algebra and bulk
// re-scoring through a callback.
//
// A List is not safe for concurrent use.
package list

import (
	"iter"

	"go.uber.org/zap"

	"github.com/ddirect/scorelist/internal/dualindex"
	"github.com/ddirect/scorelist/internal/sorter"
)

type List struct {
	ix     *dualindex.Index
	sorter *sorter.Sorter

	// initialized is set by Begin and cleared when the sorter is replaced.
	initialized bool

	// generation is bumped by every mutating call; Valuate uses it to detect
	// valuators that modify the list being valuated.
	generation uint64

	log *zap.SugaredLogger
}

// New returns an empty list sorted by value, descending.
func New(opts ...Option) *List {
	ix := dualindex.New()
	l := &List{
		ix:     ix,
		sorter: sorter.New(ix, sorter.ByValue, false),
		log:    zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *List) HasItem(item int32) bool {
	return l.ix.Has(item)
}

// AddItem adds item with the given score. It does nothing if item is already present.
func (l *List) AddItem(item, value int32) {
	l.generation++
	l.ix.Insert(item, value)
}

// RemoveItem removes item. A running iteration skips it.
func (l *List) RemoveItem(item int32) {
	l.generation++
	if !l.ix.Has(item) {
		return
	}
	l.sorter.Remove(item)
	l.ix.Delete(item)
}

// GetValue returns the score of item, or 0 if it is not present.
func (l *List) GetValue(item int32) int32 {
	value, _ := l.ix.Value(item)
	return value
}

// SetValue changes the score of item. It returns false if item is not present.
// When sorted by value, an item that is the next one to be returned by the
// running iteration is skipped.
func (l *List) SetValue(item, value int32) bool {
	l.generation++
	old, ok := l.ix.Value(item)
	if !ok {
		return false
	}
	if old == value {
		return true
	}
	l.sorter.Rescore(item)
	l.ix.Update(item, value)
	return true
}

func (l *List) Count() int32 {
	return int32(l.ix.Len())
}

func (l *List) IsEmpty() bool {
	return l.ix.Len() == 0
}

func (l *List) Clear() {
	l.generation++
	l.ix.Clear()
	l.sorter.End()
}

// Sort selects the iteration order. Changing the order discards any running
// iteration: Begin must be called again.
func (l *List) Sort(mode SortMode, ascending bool) {
	l.generation++

	if !mode.Valid() {
		l.log.Warnw("ignoring invalid sort mode", "mode", mode)
		return
	}
	if mode == l.sorter.Mode() && ascending == l.sorter.Ascending() {
		return
	}

	l.sorter = sorter.New(l.ix, mode, ascending)
	l.initialized = false
}

// SortMode returns the current iteration order.
func (l *List) SortMode() (mode SortMode, ascending bool) {
	return l.sorter.Mode(), l.sorter.Ascending()
}

// Begin starts an iteration and returns the first item, or 0 if the list is empty.
//
//	for item := l.Begin(); !l.IsEnd(); item = l.Next() {
//		...
//	}
func (l *List) Begin() int32 {
	l.initialized = true
	return l.sorter.Begin()
}

// Next returns the next item of the iteration. After the last item it returns 0
// and IsEnd becomes true.
func (l *List) Next() int32 {
	if !l.initialized {
		l.log.Warn("Next() is invalid as Begin() is never called")
		return 0
	}
	return l.sorter.Next()
}

// IsEnd reports whether the item last returned by Begin or Next is past the end.
func (l *List) IsEnd() bool {
	if !l.initialized {
		l.log.Warn("IsEnd() is invalid as Begin() is never called")
		return true
	}
	return l.sorter.IsEnd()
}

// HasNext reports whether Next will return an item.
func (l *List) HasNext() bool {
	if !l.initialized {
		l.log.Warn("HasNext() is invalid as Begin() is never called")
		return false
	}
	return l.sorter.HasNext()
}

// All iterates the list in the current order, yielding each item with its score.
// It drives the same cursor as Begin and Next, so items removed while the loop
// runs are skipped.
func (l *List) All() iter.Seq2[int32, int32] {
	return func(yield func(int32, int32) bool) {
		for item, ok := l.First(); ok; item, ok = l.Following() {
			if !yield(item, l.GetValue(item)) {
				return
			}
		}
	}
}

// removeIf removes every item matching pred, scanning in item order. The
// successor is looked up before each removal.
func (l *List) removeIf(pred func(item, value int32) bool) {
	l.generation++
	for item, ok := l.ix.ItemMin(); ok; {
		value, _ := l.ix.Value(item)
		next, more := l.ix.ItemAfter(item)
		if pred(item, value) {
			l.RemoveItem(item)
		}
		item, ok = next, more
	}
}
