package scenario

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"strings"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"github.com/ddirect/scorelist/list"
	"github.com/ddirect/scorelist/set"
)

var errMissingOther = errors.New("op needs another list")

type opFunc func(r *Runner, l *list.List, st *Step) error

var ops = map[string]opFunc{
	"add": func(r *Runner, l *list.List, st *Step) error {
		l.AddItem(st.Item, valueOr(st.Value, 0))
		return nil
	},
	"remove": func(r *Runner, l *list.List, st *Step) error {
		l.RemoveItem(st.Item)
		return nil
	},
	"set": func(r *Runner, l *list.List, st *Step) error {
		if !l.SetValue(st.Item, valueOr(st.Value, 0)) {
			return fmt.Errorf("item %d not in list", st.Item)
		}
		return nil
	},
	"put": func(r *Runner, l *list.List, st *Step) error {
		var v any
		if st.Value != nil {
			v = *st.Value
		}
		return l.Assign(st.Item, v)
	},
	"assign_null": func(r *Runner, l *list.List, st *Step) error {
		return l.Assign(st.Item, nil)
	},
	"get": func(r *Runner, l *list.List, st *Step) error {
		v, err := l.Get(st.Item)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(r.out, "%s[%d] = %d\n", st.List, st.Item, v)
		return err
	},
	"clear": func(r *Runner, l *list.List, st *Step) error {
		l.Clear()
		return nil
	},
	"sort": func(r *Runner, l *list.List, st *Step) error {
		mode, err := parseSortMode(st.By)
		if err != nil {
			return err
		}
		l.Sort(mode, st.Ascending)
		return nil
	},
	"add_list":    withOther((*list.List).AddList),
	"remove_list": withOther((*list.List).RemoveList),
	"keep_list":   withOther((*list.List).KeepList),
	"swap_list":   withOther((*list.List).SwapList),
	"remove_above": func(r *Runner, l *list.List, st *Step) error {
		l.RemoveAboveValue(valueOr(st.Value, 0))
		return nil
	},
	"remove_below": func(r *Runner, l *list.List, st *Step) error {
		l.RemoveBelowValue(valueOr(st.Value, 0))
		return nil
	},
	"remove_between": func(r *Runner, l *list.List, st *Step) error {
		l.RemoveBetweenValue(st.Start, st.End)
		return nil
	},
	"remove_value": func(r *Runner, l *list.List, st *Step) error {
		l.RemoveValue(valueOr(st.Value, 0))
		return nil
	},
	"keep_above": func(r *Runner, l *list.List, st *Step) error {
		l.KeepAboveValue(valueOr(st.Value, 0))
		return nil
	},
	"keep_below": func(r *Runner, l *list.List, st *Step) error {
		l.KeepBelowValue(valueOr(st.Value, 0))
		return nil
	},
	"keep_between": func(r *Runner, l *list.List, st *Step) error {
		l.KeepBetweenValue(st.Start, st.End)
		return nil
	},
	"keep_value": func(r *Runner, l *list.List, st *Step) error {
		l.KeepValue(valueOr(st.Value, 0))
		return nil
	},
	"remove_top": func(r *Runner, l *list.List, st *Step) error {
		l.RemoveTop(st.Count)
		return nil
	},
	"remove_bottom": func(r *Runner, l *list.List, st *Step) error {
		l.RemoveBottom(st.Count)
		return nil
	},
	"keep_top": func(r *Runner, l *list.List, st *Step) error {
		l.KeepTop(st.Count)
		return nil
	},
	"keep_bottom": func(r *Runner, l *list.List, st *Step) error {
		l.KeepBottom(st.Count)
		return nil
	},
	"valuate": func(r *Runner, l *list.List, st *Step) error {
		return r.valuate(l, st)
	},
	"count": func(r *Runner, l *list.List, st *Step) error {
		_, err := fmt.Fprintf(r.out, "%s: count %d\n", st.List, l.Count())
		return err
	},
	"dump": func(r *Runner, l *list.List, st *Step) error {
		return r.dump(st.List, l)
	},
}

func withOther(op func(l, other *list.List)) opFunc {
	return func(r *Runner, l *list.List, st *Step) error {
		if st.Other == "" {
			return errMissingOther
		}
		op(l, r.lists[st.Other])
		return nil
	}
}

func valueOr(v *int32, def int32) int32 {
	if v == nil {
		return def
	}
	return *v
}

// Runner executes scenarios. Lists persist across Run calls on the same Runner.
type Runner struct {
	out   io.Writer
	log   *zap.SugaredLogger
	lists map[string]*list.List
}

func NewRunner(out io.Writer, log *zap.SugaredLogger) *Runner {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Runner{
		out:   out,
		log:   log,
		lists: make(map[string]*list.List),
	}
}

// List returns the list declared with name, or nil.
func (r *Runner) List(name string) *list.List {
	return r.lists[name]
}

// Run declares the lists of s, replacing lists with the same name, then runs its
// steps in order. Steps may use lists declared by earlier scenarios run on r. Unless ContinueOnError is set, it stops at the first failing
// step; otherwise all failures are returned together.
func (r *Runner) Run(s *Scenario) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := s.resolve(set.Of(maps.Keys(r.lists))); err != nil {
		return err
	}

	for _, ls := range s.Lists {
		opts := []list.Option{list.WithLogger(r.log.With("list", ls.Name))}
		if ls.Sort != nil {
			mode, _ := parseSortMode(ls.Sort.By)
			opts = append(opts, list.WithSort(mode, ls.Sort.Ascending))
		}
		l := list.New(opts...)
		for item, value := range ls.Items {
			l.AddItem(item, value)
		}
		r.lists[ls.Name] = l
		r.log.Debugw("list declared", "list", ls.Name, "count", l.Count())
	}

	var result *multierror.Error
	for i := range s.Steps {
		st := &s.Steps[i]
		r.log.Debugw("running step", "index", i, "op", st.Op, "list", st.List)
		if err := ops[st.Op](r, r.lists[st.List], st); err != nil {
			err = fmt.Errorf("step %d (%s %s): %w", i, st.Op, st.List, err)
			if !s.ContinueOnError {
				return err
			}
			r.log.Warnw("step failed", "index", i, "error", err)
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// dump prints the list in its current order, driving the iteration the same way
// a for-each loop of a script would.
func (r *Runner) dump(name string, l *list.List) error {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteString(":")
	for item, ok := l.First(); ok; item, ok = l.Following() {
		fmt.Fprintf(&sb, " %d=%d", item, l.GetValue(item))
	}
	sb.WriteString("\n")
	_, err := io.WriteString(r.out, sb.String())
	return err
}
