package list

import (
	"golang.org/x/exp/constraints"
)

// Valuator computes the new score of item. The result must be an integer that
// fits in 32 bits or a bool, which counts as 1 or 0.
type Valuator func(item int32, args ...any) (any, error)

// Valuate replaces the score of every item with the result of valuator, called
// with the item followed by args, in ascending item order.
//
// Valuate stops at the first valuator that fails, returns an invalid result or
// modifies this list; items valuated before that keep their new score.
func (l *List) Valuate(valuator Valuator, args ...any) error {
	if valuator == nil {
		return ErrMissingValuator
	}

	l.generation++

	for item, ok := l.ix.ItemMin(); ok; item, ok = l.ix.ItemAfter(item) {
		generation := l.generation

		res, err := valuator(item, args...)
		if err != nil {
			l.log.Debugw("valuate aborted", "item", item, "error", err)
			return &Error{Code: CodeValuatorFailed, Message: "valuator failed", Err: err}
		}

		value, valid := toScore(res)
		if !valid {
			l.log.Debugw("valuate aborted", "item", item, "result", res)
			return newError(CodeInvalidResult, "return value of valuator is not valid (not integer/bool): %T(%v) for item %d", res, res, item)
		}

		if generation != l.generation {
			l.log.Debugw("valuate aborted", "item", item, "reason", "list modified by valuator")
			return newError(CodeReentrantMutation, "modifying valuated list outside of valuator function (item %d)", item)
		}

		l.SetValue(item, value)
	}
	return nil
}

func toScore(res any) (int32, bool) {
	switch v := res.(type) {
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case int:
		return fitScore(v)
	case int8:
		return fitScore(v)
	case int16:
		return fitScore(v)
	case int32:
		return v, true
	case int64:
		return fitScore(v)
	case uint:
		return fitScore(v)
	case uint8:
		return fitScore(v)
	case uint16:
		return fitScore(v)
	case uint32:
		return fitScore(v)
	case uint64:
		return fitScore(v)
	default:
		return 0, false
	}
}

func fitScore[T constraints.Integer](v T) (int32, bool) {
	s := int32(v)
	if T(s) != v || (s < 0) != (v < 0) {
		return 0, false
	}
	return s, true
}
