package list

// RemoveAboveValue removes every item with a score greater than value.
func (l *List) RemoveAboveValue(value int32) {
	l.removeIf(func(_, v int32) bool { return v > value })
}

// RemoveBelowValue removes every item with a score less than value.
func (l *List) RemoveBelowValue(value int32) {
	l.removeIf(func(_, v int32) bool { return v < value })
}

// RemoveBetweenValue removes every item with a score strictly between start and end.
func (l *List) RemoveBetweenValue(start, end int32) {
	l.removeIf(func(_, v int32) bool { return v > start && v < end })
}

func (l *List) RemoveValue(value int32) {
	l.removeIf(func(_, v int32) bool { return v == value })
}

// KeepAboveValue keeps only the items with a score greater than value.
func (l *List) KeepAboveValue(value int32) {
	l.removeIf(func(_, v int32) bool { return v <= value })
}

// KeepBelowValue keeps only the items with a score less than value.
func (l *List) KeepBelowValue(value int32) {
	l.removeIf(func(_, v int32) bool { return v >= value })
}

// KeepBetweenValue keeps only the items with a score strictly between start and end.
func (l *List) KeepBetweenValue(start, end int32) {
	l.removeIf(func(_, v int32) bool { return v <= start || v >= end })
}

func (l *List) KeepValue(value int32) {
	l.removeIf(func(_, v int32) bool { return v != value })
}
