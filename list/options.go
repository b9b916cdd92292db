package list

import (
	"go.uber.org/zap"

	"github.com/ddirect/scorelist/internal/sorter"
)

type SortMode = sorter.Mode

const (
	SortByValue SortMode = sorter.ByValue
	SortByItem  SortMode = sorter.ByItem
)

type Option func(*List)

// WithLogger sets the logger used to report iteration misuse and aborted valuations.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(l *List) {
		if log != nil {
			l.log = log
		}
	}
}

// WithSort sets the initial order. Invalid modes are ignored.
func WithSort(mode SortMode, ascending bool) Option {
	return func(l *List) {
		if mode.Valid() {
			l.sorter = sorter.New(l.ix, mode, ascending)
		}
	}
}
