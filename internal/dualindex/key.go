package dualindex

type itemKey int32

func (a itemKey) Before(b itemKey) bool {
	return a < b
}

// entry is the position of an item in the bucket order: by score, then by item.
type entry struct {
	score int32
	item  int32
}

func (a entry) Before(b entry) bool {
	if a.score == b.score {
		return a.item < b.item
	}
	return a.score < b.score
}
