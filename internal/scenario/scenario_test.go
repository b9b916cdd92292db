package scenario_test

import (
	"bytes"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ddirect/scorelist/internal/scenario"
	"github.com/ddirect/scorelist/list"
)

func run(t *testing.T, doc string) (*scenario.Runner, string, error) {
	s, err := scenario.Parse([]byte(doc))
	require.NoError(t, err)
	var out bytes.Buffer
	r := scenario.NewRunner(&out, zaptest.NewLogger(t).Sugar())
	err = r.Run(s)
	return r, out.String(), err
}

func Test_Load(t *testing.T) {
	s, err := scenario.Load("testdata/stations.yaml")
	require.NoError(t, err)
	require.Len(t, s.Lists, 2)
	assert.Equal(t, map[int32]int32{10: 5, 20: 3, 30: 3, 40: 1}, s.Lists[0].Items)
	assert.Equal(t, "item", s.Lists[1].Sort.By)
	assert.Len(t, s.Steps, 10)

	var out bytes.Buffer
	r := scenario.NewRunner(&out, nil)
	require.NoError(t, r.Run(s))
	assert.Equal(t, ""+
		"tiles: 10=5 30=3 20=3 40=1\n"+
		"tiles: 30=31 20=31 40=11\n"+
		"tiles: 20=31 30=31\n"+
		"tiles: count 1\n"+
		"tiles[20] = 31\n",
		out.String())
	assert.Equal(t, int32(1), r.List("tiles").Count())
	assert.True(t, r.List("tiles").HasItem(20))
}

func Test_LoadMissing(t *testing.T) {
	_, err := scenario.Load("testdata/missing.yaml")
	assert.Error(t, err)
}

func Test_Validate(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unnamed list", "lists: [{items: {1: 1}}]"},
		{"duplicate list", "lists: [{name: a}, {name: a}]"},
		{"bad sort", "lists: [{name: a, sort: {by: colour}}]"},
		{"unknown op", "lists: [{name: a}]\nsteps: [{op: fly, list: a}]"},
		{"bad yaml", "lists: {"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scenario.Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func Test_UnknownList(t *testing.T) {
	for _, doc := range []string{
		"lists: [{name: a}]\nsteps: [{op: dump, list: b}]",
		"lists: [{name: a}]\nsteps: [{op: keep_list, list: a, other: b}]",
	} {
		r, out, err := run(t, doc)
		assert.ErrorContains(t, err, `unknown list "b"`)
		assert.Empty(t, out)
		assert.Nil(t, r.List("a"))
	}
}

func Test_ListsSharedAcrossRuns(t *testing.T) {
	first, err := scenario.Parse([]byte("lists: [{name: a, items: {1: 1, 2: 2}}]"))
	require.NoError(t, err)
	second, err := scenario.Parse([]byte("lists: [{name: b, items: {2: 0}}]\nsteps: [{op: keep_list, list: a, other: b}, {op: dump, list: a}]"))
	require.NoError(t, err)

	var out bytes.Buffer
	r := scenario.NewRunner(&out, zaptest.NewLogger(t).Sugar())
	require.NoError(t, r.Run(first))
	require.NoError(t, r.Run(second))
	assert.Equal(t, "a: 2=2\n", out.String())

	fresh := scenario.NewRunner(&out, nil)
	assert.ErrorContains(t, fresh.Run(second), `unknown list "a"`)
}

func Test_AssignNull(t *testing.T) {
	r, _, err := run(t, "lists: [{name: a, items: {1: 1, 2: 2}}]\nsteps: [{op: assign_null, list: a, item: 1}, {op: assign_null, list: a, item: 5}]")
	require.NoError(t, err)
	assert.False(t, r.List("a").HasItem(1))
	assert.Equal(t, int32(1), r.List("a").Count())
}

func Test_HostAccess(t *testing.T) {
	r, out, err := run(t, `
lists:
  - name: a
steps:
  - {op: put, list: a, item: 1, value: 4}
  - {op: put, list: a, item: 2, value: 6}
  - {op: put, list: a, item: 1, value: 5}
  - {op: put, list: a, item: 2}
  - {op: get, list: a, item: 1}
  - {op: get, list: a, item: 2}
`)
	assert.ErrorIs(t, err, list.ErrNoSuchKey)
	assert.Equal(t, "a[1] = 5\n", out)
	assert.Equal(t, int32(1), r.List("a").Count())
}

func Test_ValuatePreconditions(t *testing.T) {
	for _, doc := range []string{
		"steps: [{op: valuate, list: a}]",
		"steps: [{op: valuate, list: a, valuator: mod}]",
		"steps: [{op: valuate, list: a, valuator: item, args: [1]}]",
		"steps: [{op: valuate, list: a, valuator: nope}]",
	} {
		r, _, err := run(t, "lists: [{name: a, items: {1: 7, 2: 8}}]\n"+doc)
		assert.True(t, list.CheckError(err, list.CodeMissingValuator) || list.CheckError(err, list.CodeInvalidArgument), doc)
		assert.Equal(t, int32(7), r.List("a").GetValue(1))
		assert.Equal(t, int32(8), r.List("a").GetValue(2))
	}
}

func Test_ValuateFailures(t *testing.T) {
	tests := []struct {
		valuator string
		args     string
		code     list.Code
	}{
		{"remove_self", "[]", list.CodeReentrantMutation},
		{"string", "[]", list.CodeInvalidResult},
		{"mod", "[0]", list.CodeValuatorFailed},
		{"scale", "[2147483647, 0]", list.CodeInvalidResult},
	}
	for _, tt := range tests {
		t.Run(tt.valuator, func(t *testing.T) {
			_, _, err := run(t, "lists: [{name: a, items: {1: 7, 2: 8}}]\nsteps: [{op: valuate, list: a, valuator: "+tt.valuator+", args: "+tt.args+"}]")
			assert.True(t, list.CheckError(err, tt.code), "%v", err)
		})
	}
}

func Test_Valuators(t *testing.T) {
	_, out, err := run(t, `
lists:
  - name: a
    sort: {by: item, ascending: true}
    items: {1: 7, 2: 8, 3: 9}
steps:
  - {op: valuate, list: a, valuator: even}
  - {op: dump, list: a}
  - {op: valuate, list: a, valuator: constant, args: [4]}
  - {op: valuate, list: a, valuator: negate}
  - {op: dump, list: a}
  - {op: valuate, list: a, valuator: mod, args: [2]}
  - {op: valuate, list: a, valuator: value}
  - {op: dump, list: a}
  - {op: valuate, list: a, valuator: item}
  - {op: dump, list: a}
`)
	require.NoError(t, err)
	assert.Equal(t, ""+
		"a: 1=0 2=1 3=0\n"+
		"a: 1=-4 2=-4 3=-4\n"+
		"a: 1=1 2=0 3=1\n"+
		"a: 1=1 2=2 3=3\n",
		out)
}

func Test_ContinueOnError(t *testing.T) {
	r, out, err := run(t, `
continue_on_error: true
lists:
  - name: a
    items: {1: 1, 2: 2, 3: 3}
  - name: b
    items: {9: 9}
steps:
  - {op: set, list: a, item: 5, value: 1}
  - {op: remove_top, list: a, count: 1}
  - {op: add_list, list: a}
  - {op: valuate, list: a, valuator: string}
  - {op: swap_list, list: a, other: b}
  - {op: dump, list: a}
  - {op: dump, list: b}
`)
	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 3)
	assert.Equal(t, "a: 9=9\nb: 2=2 1=1\n", out)
	assert.Equal(t, int32(2), r.List("b").Count())
}

func Test_StopOnError(t *testing.T) {
	r, out, err := run(t, `
lists:
  - name: a
    items: {1: 1}
steps:
  - {op: set, list: a, item: 5, value: 1}
  - {op: clear, list: a}
`)
	assert.Error(t, err)
	assert.Empty(t, out)
	assert.Equal(t, int32(1), r.List("a").Count())
}

func Test_Filters(t *testing.T) {
	_, out, err := run(t, `
lists:
  - name: a
    sort: {by: value, ascending: true}
    items: {1: 1, 2: 2, 3: 3, 4: 4, 5: 5, 6: 6}
steps:
  - {op: remove_above, list: a, value: 5}
  - {op: remove_value, list: a, value: 3}
  - {op: keep_between, list: a, start: 1, end: 5}
  - {op: dump, list: a}
  - {op: add, list: a, item: 7}
  - {op: keep_above, list: a, value: 0}
  - {op: keep_below, list: a, value: 4}
  - {op: remove_between, list: a, start: 0, end: 1}
  - {op: keep_value, list: a, value: 2}
  - {op: dump, list: a}
  - {op: remove_below, list: a, value: 3}
  - {op: remove_bottom, list: a, count: 1}
  - {op: keep_bottom, list: a, count: 1}
  - {op: count, list: a}
`)
	require.NoError(t, err)
	assert.Equal(t, "a: 2=2 4=4\na: 2=2\na: count 0\n", out)
}
