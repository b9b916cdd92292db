// Package scenario drives lists from a YAML description: it declares named lists
// with their initial items and runs a sequence of steps against them.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ddirect/scorelist/list"
	"github.com/ddirect/scorelist/set"
)

type Scenario struct {
	ContinueOnError bool       `yaml:"continue_on_error"`
	Lists           []ListSpec `yaml:"lists"`
	Steps           []Step     `yaml:"steps"`
}

type ListSpec struct {
	Name  string          `yaml:"name"`
	Sort  *SortSpec       `yaml:"sort"`
	Items map[int32]int32 `yaml:"items"`
}

type SortSpec struct {
	By        string `yaml:"by"`
	Ascending bool   `yaml:"ascending"`
}

// Step is one operation. Which fields are used depends on Op.
type Step struct {
	Op        string  `yaml:"op"`
	List      string  `yaml:"list"`
	Other     string  `yaml:"other"`
	Item      int32   `yaml:"item"`
	Value     *int32  `yaml:"value"`
	Start     int32   `yaml:"start"`
	End       int32   `yaml:"end"`
	Count     int32   `yaml:"count"`
	By        string  `yaml:"by"`
	Ascending bool    `yaml:"ascending"`
	Valuator  string  `yaml:"valuator"`
	Args      []int32 `yaml:"args"`
}

func Load(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func Parse(raw []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks list declarations and that every step names a known op. Step
// list names are resolved by the Runner, since a scenario may use lists declared
// by an earlier one.
func (s *Scenario) Validate() error {
	names := make(map[string]bool)
	for _, ls := range s.Lists {
		if ls.Name == "" {
			return fmt.Errorf("list without name")
		}
		if names[ls.Name] {
			return fmt.Errorf("duplicate list %q", ls.Name)
		}
		names[ls.Name] = true
		if ls.Sort != nil {
			if _, err := parseSortMode(ls.Sort.By); err != nil {
				return fmt.Errorf("list %q: %w", ls.Name, err)
			}
		}
	}
	for i, st := range s.Steps {
		if _, ok := ops[st.Op]; !ok {
			return fmt.Errorf("step %d: unknown op %q", i, st.Op)
		}
	}
	return nil
}

// resolve checks that every step names a list in known or declared by s.
func (s *Scenario) resolve(known set.Set[string]) error {
	for _, ls := range s.Lists {
		known.Insert(ls.Name)
	}
	for i, st := range s.Steps {
		if !known.Exists(st.List) {
			return fmt.Errorf("step %d (%s): unknown list %q", i, st.Op, st.List)
		}
		if st.Other != "" && !known.Exists(st.Other) {
			return fmt.Errorf("step %d (%s): unknown list %q", i, st.Op, st.Other)
		}
	}
	return nil
}

func parseSortMode(by string) (list.SortMode, error) {
	switch by {
	case "", "value":
		return list.SortByValue, nil
	case "item":
		return list.SortByItem, nil
	default:
		return 0, fmt.Errorf("invalid sort %q", by)
	}
}
