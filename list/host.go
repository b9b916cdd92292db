package list

// Get returns the score of item, failing with ErrNoSuchKey if it is not present.
func (l *List) Get(item int32) (int32, error) {
	value, ok := l.ix.Value(item)
	if !ok {
		return 0, newError(CodeNoSuchKey, "no such key %d", item)
	}
	return value, nil
}

// Put sets the score of item, adding it if needed.
func (l *List) Put(item, value int32) {
	if !l.HasItem(item) {
		l.AddItem(item, value)
		return
	}
	l.SetValue(item, value)
}

// Assign is Put for dynamically typed values: nil removes item, any integer
// that fits in 32 bits is stored, anything else is rejected without side effects.
func (l *List) Assign(item int32, value any) error {
	if value == nil {
		l.RemoveItem(item)
		return nil
	}
	if _, isBool := value.(bool); !isBool {
		if v, ok := toScore(value); ok {
			l.Put(item, v)
			return nil
		}
	}
	return newError(CodeInvalidArgument, "you can only assign integers to this list, got %T", value)
}

// First starts an iteration. It returns false if the list is empty.
func (l *List) First() (int32, bool) {
	if l.IsEmpty() {
		return 0, false
	}
	return l.Begin(), true
}

// Following continues an iteration started by First. It returns false once the
// iteration is over.
func (l *List) Following() (int32, bool) {
	item := l.Next()
	if l.IsEnd() {
		return 0, false
	}
	return item, true
}
