package dualindex

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/ddirect/scorelist"
	"github.com/ddirect/scorelist/set"
	"github.com/google/btree"
)

const degree = 16

// Index keeps the item to score map together with the bucket index, which orders
// every item by score first and item second. A bucket is the run of entries sharing
// one score, so a bucket exists exactly as long as one of its items does.
type Index struct {
	scores  map[int32]int32
	items   *btree.BTreeG[itemKey]
	buckets *btree.BTreeG[entry]
}

func New() *Index {
	return &Index{
		scores:  make(map[int32]int32),
		items:   btree.NewG(degree, scorelist.Less[itemKey]),
		buckets: btree.NewG(degree, scorelist.Less[entry]),
	}
}

func (ix *Index) Len() int {
	return len(ix.scores)
}

func (ix *Index) Has(item int32) bool {
	_, ok := ix.scores[item]
	return ok
}

func (ix *Index) Value(item int32) (int32, bool) {
	score, ok := ix.scores[item]
	return score, ok
}

// Insert adds item with the given score. It returns false, leaving the index
// untouched, if the item is already present.
func (ix *Index) Insert(item, score int32) bool {
	if ix.Has(item) {
		return false
	}
	ix.scores[item] = score
	ix.items.ReplaceOrInsert(itemKey(item))
	ix.buckets.ReplaceOrInsert(entry{score, item})
	return true
}

func (ix *Index) Delete(item int32) bool {
	score, ok := ix.scores[item]
	if !ok {
		return false
	}
	delete(ix.scores, item)
	ix.items.Delete(itemKey(item))
	ix.mustDeleteEntry(entry{score, item})
	return true
}

// Update moves item to the bucket of score and returns the previous score.
func (ix *Index) Update(item, score int32) (old int32, ok bool) {
	old, ok = ix.scores[item]
	if !ok || old == score {
		return
	}
	ix.mustDeleteEntry(entry{old, item})
	ix.scores[item] = score
	ix.buckets.ReplaceOrInsert(entry{score, item})
	return
}

func (ix *Index) Clear() {
	clear(ix.scores)
	ix.items.Clear(false)
	ix.buckets.Clear(false)
}

func (ix *Index) mustDeleteEntry(e entry) {
	if _, found := ix.buckets.Delete(e); !found {
		panic(fmt.Errorf("dualindex: item %d missing from bucket %d", e.item, e.score))
	}
}

func (ix *Index) ItemMin() (int32, bool) {
	k, ok := ix.items.Min()
	return int32(k), ok
}

func (ix *Index) ItemMax() (int32, bool) {
	k, ok := ix.items.Max()
	return int32(k), ok
}

// ItemAfter returns the smallest item greater than item. item does not need to be present.
func (ix *Index) ItemAfter(item int32) (int32, bool) {
	k, ok := after(ix.items, itemKey(item))
	return int32(k), ok
}

// ItemBefore returns the largest item smaller than item. item does not need to be present.
func (ix *Index) ItemBefore(item int32) (int32, bool) {
	k, ok := before(ix.items, itemKey(item))
	return int32(k), ok
}

func (ix *Index) ValueMin() (int32, bool) {
	e, ok := ix.buckets.Min()
	return e.item, ok
}

func (ix *Index) ValueMax() (int32, bool) {
	e, ok := ix.buckets.Max()
	return e.item, ok
}

// ValueAfter returns the item following item in bucket order. item must be present.
func (ix *Index) ValueAfter(item int32) (int32, bool) {
	score, ok := ix.scores[item]
	if !ok {
		return 0, false
	}
	e, ok := after(ix.buckets, entry{score, item})
	return e.item, ok
}

// ValueBefore returns the item preceding item in bucket order. item must be present.
func (ix *Index) ValueBefore(item int32) (int32, bool) {
	score, ok := ix.scores[item]
	if !ok {
		return 0, false
	}
	e, ok := before(ix.buckets, entry{score, item})
	return e.item, ok
}

// All yields every item with its score in ascending item order. The index must
// not be modified while the sequence is running.
func (ix *Index) All() iter.Seq2[int32, int32] {
	return func(yield func(int32, int32) bool) {
		ix.items.Ascend(func(k itemKey) bool {
			return yield(int32(k), ix.scores[int32(k)])
		})
	}
}

// Buckets yields each score in ascending order with the items sharing it, in
// ascending item order.
func (ix *Index) Buckets() iter.Seq2[int32, []int32] {
	return func(yield func(int32, []int32) bool) {
		var (
			score int32
			items []int32
		)
		stopped := false
		ix.buckets.Ascend(func(e entry) bool {
			if len(items) > 0 && e.score != score {
				if !yield(score, items) {
					stopped = true
					return false
				}
				items = nil
			}
			score = e.score
			items = append(items, e.item)
			return true
		})
		if !stopped && len(items) > 0 {
			yield(score, items)
		}
	}
}

// Validate checks that the map, the item order and the bucket order describe the same content.
func (ix *Index) Validate() error {
	if n := ix.items.Len(); n != len(ix.scores) {
		return fmt.Errorf("item order holds %d items, map holds %d", n, len(ix.scores))
	}
	for item := range ix.scores {
		if !ix.items.Has(itemKey(item)) {
			return fmt.Errorf("item %d missing from item order", item)
		}
	}

	pending := set.Keys(maps.All(ix.scores))
	var err error
	ix.buckets.Ascend(func(e entry) bool {
		if score, ok := ix.scores[e.item]; !ok || score != e.score || !pending.Exists(e.item) {
			err = fmt.Errorf("bucket %d holds stray item %d", e.score, e.item)
			return false
		}
		pending.Delete(e.item)
		return true
	})
	if err != nil {
		return err
	}
	if pending.Len() != 0 {
		return fmt.Errorf("items %v missing from buckets", slices.Sorted(pending.Values()))
	}
	return nil
}

func after[T comparable](t *btree.BTreeG[T], pivot T) (next T, ok bool) {
	t.AscendGreaterOrEqual(pivot, func(it T) bool {
		if it == pivot {
			return true
		}
		next, ok = it, true
		return false
	})
	return
}

func before[T comparable](t *btree.BTreeG[T], pivot T) (prev T, ok bool) {
	t.DescendLessOrEqual(pivot, func(it T) bool {
		if it == pivot {
			return true
		}
		prev, ok = it, true
		return false
	})
	return
}
