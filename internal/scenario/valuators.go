package scenario

import (
	"errors"
	"fmt"

	"github.com/ddirect/scorelist/list"
)

var errDivisionByZero = errors.New("division by zero")

type valuatorDef struct {
	arity int
	build func(l *list.List) list.Valuator
}

// valuators are the callbacks a scenario can name. Arguments are passed as int32.
var valuators = map[string]valuatorDef{
	"item": {0, func(*list.List) list.Valuator {
		return func(item int32, _ ...any) (any, error) {
			return item, nil
		}
	}},
	"value": {0, func(l *list.List) list.Valuator {
		return func(item int32, _ ...any) (any, error) {
			return l.GetValue(item), nil
		}
	}},
	"negate": {0, func(l *list.List) list.Valuator {
		return func(item int32, _ ...any) (any, error) {
			return -int64(l.GetValue(item)), nil
		}
	}},
	"constant": {1, func(*list.List) list.Valuator {
		return func(_ int32, args ...any) (any, error) {
			return args[0], nil
		}
	}},
	"mod": {1, func(*list.List) list.Valuator {
		return func(item int32, args ...any) (any, error) {
			d := args[0].(int32)
			if d == 0 {
				return nil, errDivisionByZero
			}
			return item % d, nil
		}
	}},
	"scale": {2, func(l *list.List) list.Valuator {
		return func(item int32, args ...any) (any, error) {
			return int64(l.GetValue(item))*int64(args[0].(int32)) + int64(args[1].(int32)), nil
		}
	}},
	"even": {0, func(*list.List) list.Valuator {
		return func(item int32, _ ...any) (any, error) {
			return item%2 == 0, nil
		}
	}},
	"remove_self": {0, func(l *list.List) list.Valuator {
		return func(item int32, _ ...any) (any, error) {
			l.RemoveItem(item)
			return 0, nil
		}
	}},
	"string": {0, func(*list.List) list.Valuator {
		return func(item int32, _ ...any) (any, error) {
			return fmt.Sprint(item), nil
		}
	}},
}

// valuate checks the valuator name and arity before touching the list.
func (r *Runner) valuate(l *list.List, st *Step) error {
	if st.Valuator == "" {
		return l.Valuate(nil)
	}
	def, ok := valuators[st.Valuator]
	if !ok {
		return &list.Error{Code: list.CodeInvalidArgument, Message: fmt.Sprintf("unknown valuator %q", st.Valuator)}
	}
	if len(st.Args) != def.arity {
		return &list.Error{
			Code:    list.CodeInvalidArgument,
			Message: fmt.Sprintf("wrong number of parameters for valuator %q: want %d, got %d", st.Valuator, def.arity, len(st.Args)),
		}
	}
	args := make([]any, len(st.Args))
	for i, a := range st.Args {
		args[i] = a
	}
	return l.Valuate(def.build(l), args...)
}
