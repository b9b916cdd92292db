package list_test

import (
	"flag"
	"fmt"
	"os"
	"testing"

	"github.com/ddirect/scorelist/list"
)

type LogFunc func(t *testing.T, data []byte)

var logFile string

func init() {
	flag.StringVar(&logFile, "logfile", "", "logfile to use")
}

func makeLogFunc(logFile string) LogFunc {
	if logFile == "" {
		return func(t *testing.T, data []byte) {
			t.Logf("%s\n", data)
		}
	}

	logout, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		panic(fmt.Errorf("open: %w", err))
	}

	return func(t *testing.T, data []byte) {
		if _, err := logout.Write(append(data, '\n')); err != nil {
			panic(fmt.Errorf("write: %w", err))
		}
	}
}

type pair struct {
	item, value int32
}

func fromPairs(pairs []pair, opts ...list.Option) *list.List {
	l := list.New(opts...)
	for _, p := range pairs {
		l.AddItem(p.item, p.value)
	}
	return l
}

// fixture holds {(10,5),(20,3),(30,3),(40,1)}.
func fixture(opts ...list.Option) *list.List {
	return fromPairs([]pair{{10, 5}, {20, 3}, {30, 3}, {40, 1}}, opts...)
}

func drain(l *list.List) []int32 {
	var items []int32
	for item := l.Begin(); !l.IsEnd(); item = l.Next() {
		items = append(items, item)
	}
	return items
}

func contents(l *list.List) map[int32]int32 {
	m := make(map[int32]int32)
	l.Sort(list.SortByItem, true)
	for item, value := range l.All() {
		m[item] = value
	}
	return m
}
