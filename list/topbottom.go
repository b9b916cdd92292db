package list

// RemoveTop removes the first count items of the current order.
func (l *List) RemoveTop(count int32) {
	l.generation++
	if count <= 0 {
		return
	}
	mode, ascending := l.SortMode()
	if ascending {
		l.removeFromEnd(count, false)
		return
	}
	// the head of a descending order is the tail of the ascending one
	l.Sort(mode, true)
	l.removeFromEnd(count, true)
	l.Sort(mode, false)
}

// RemoveBottom removes the last count items of the current order.
func (l *List) RemoveBottom(count int32) {
	l.generation++
	if count <= 0 {
		return
	}
	mode, ascending := l.SortMode()
	if ascending {
		l.removeFromEnd(count, true)
		return
	}
	l.Sort(mode, true)
	l.removeFromEnd(count, false)
	l.Sort(mode, false)
}

// KeepTop keeps only the first count items of the current order.
func (l *List) KeepTop(count int32) {
	l.generation++
	l.RemoveBottom(l.Count() - max(count, 0))
}

// KeepBottom keeps only the last count items of the current order.
func (l *List) KeepBottom(count int32) {
	l.generation++
	l.RemoveTop(l.Count() - max(count, 0))
}

// removeFromEnd removes up to count items from the low or high end of the
// ascending order, fetching the end afresh after every removal.
func (l *List) removeFromEnd(count int32, high bool) {
	end := l.ix.ValueMin
	switch mode, _ := l.SortMode(); {
	case mode == SortByValue && high:
		end = l.ix.ValueMax
	case mode == SortByItem && high:
		end = l.ix.ItemMax
	case mode == SortByItem:
		end = l.ix.ItemMin
	}
	for ; count > 0; count-- {
		item, ok := end()
		if !ok {
			return
		}
		l.RemoveItem(item)
	}
}
