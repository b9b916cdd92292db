package list

import "github.com/ddirect/scorelist/set"

// AddList adds every item of other, overwriting the score of items already present
// with the score they have in other.
func (l *List) AddList(other *List) {
	if other == l {
		return
	}
	for item, value := range other.ix.All() {
		l.AddItem(item, value)
		l.SetValue(item, value)
	}
}

// RemoveList removes every item present in other, whatever its score.
func (l *List) RemoveList(other *List) {
	l.generation++
	if other == l {
		l.Clear()
		return
	}
	for item := range other.ix.All() {
		l.RemoveItem(item)
	}
}

// KeepList keeps only the items also present in other. The survivors keep their own scores.
func (l *List) KeepList(other *List) {
	if other == l {
		return
	}
	keep := set.Keys(other.ix.All())
	l.removeIf(func(item, _ int32) bool { return !keep.Exists(item) })
}

// SwapList exchanges the whole content of the two lists, including order and
// iteration state. Both lists count as modified.
func (l *List) SwapList(other *List) {
	if other == l {
		return
	}
	l.ix, other.ix = other.ix, l.ix
	l.sorter, other.sorter = other.sorter, l.sorter
	l.initialized, other.initialized = other.initialized, l.initialized
	// a swapped-in counter could equal one sampled by a running Valuate
	l.generation = max(l.generation, other.generation) + 1
	other.generation = l.generation
}
