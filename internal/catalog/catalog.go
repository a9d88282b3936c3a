// Package catalog holds the WCAG 2.1 success criteria reference table.
// The table is embedded at build time, parsed once on first use, and never
// mutated afterwards, so it is safe for unsynchronized concurrent reads.
package catalog

import (
	_ "embed"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed criteria.yaml
var rawCriteria []byte

// Level is a WCAG conformance level, ordered A < AA < AAA in strictness.
type Level string

const (
	LevelA   Level = "A"
	LevelAA  Level = "AA"
	LevelAAA Level = "AAA"
)

// Ordinal returns the strictness rank of the level (A=1, AA=2, AAA=3).
func (l Level) Ordinal() int {
	switch l {
	case LevelA:
		return 1
	case LevelAA:
		return 2
	case LevelAAA:
		return 3
	}
	return 0
}

// Category is the topic grouping of a criterion.
type Category string

const (
	CategoryText             Category = "text"
	CategoryMedia            Category = "media"
	CategoryStructure        Category = "structure"
	CategoryKeyboard         Category = "keyboard"
	CategoryForms            Category = "forms"
	CategoryARIA             Category = "aria"
	CategoryTextAlternatives Category = "text-alternatives"
)

// Categories lists every known category in stable order.
var Categories = []Category{
	CategoryText,
	CategoryMedia,
	CategoryStructure,
	CategoryKeyboard,
	CategoryForms,
	CategoryARIA,
	CategoryTextAlternatives,
}

// Criterion is one WCAG success criterion reference entry.
type Criterion struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Level       Level    `json:"level" yaml:"level"`
	Category    Category `json:"category" yaml:"category"`
	Description string   `json:"description" yaml:"description"`
	URL         string   `json:"url" yaml:"url"`
}

type criteriaFile struct {
	Criteria []Criterion `yaml:"criteria"`
}

var (
	loadOnce sync.Once
	loadErr  error
	ordered  []Criterion
	byID     map[string]Criterion
)

func load() {
	var f criteriaFile
	if err := yaml.Unmarshal(rawCriteria, &f); err != nil {
		loadErr = fmt.Errorf("parse embedded criteria: %w", err)
		return
	}
	if len(f.Criteria) == 0 {
		loadErr = fmt.Errorf("embedded criteria table is empty")
		return
	}
	index := make(map[string]Criterion, len(f.Criteria))
	for _, c := range f.Criteria {
		if c.ID == "" || c.Name == "" {
			loadErr = fmt.Errorf("criterion missing id or name: %+v", c)
			return
		}
		if c.Level.Ordinal() == 0 {
			loadErr = fmt.Errorf("criterion %s has invalid level %q", c.ID, c.Level)
			return
		}
		if _, dup := index[c.ID]; dup {
			loadErr = fmt.Errorf("duplicate criterion id %s", c.ID)
			return
		}
		index[c.ID] = c
	}
	items := append([]Criterion(nil), f.Criteria...)
	sort.SliceStable(items, func(i, j int) bool {
		return lessID(items[i].ID, items[j].ID)
	})
	ordered = items
	byID = index
}

func ensureLoaded() error {
	loadOnce.Do(load)
	return loadErr
}

// Get returns the criterion with the given dotted id, if known.
func Get(id string) (Criterion, bool) {
	if err := ensureLoaded(); err != nil {
		return Criterion{}, false
	}
	c, ok := byID[id]
	return c, ok
}

// All returns every criterion in numeric id order.
func All() []Criterion {
	if err := ensureLoaded(); err != nil {
		return nil
	}
	return append([]Criterion(nil), ordered...)
}

// ByCategory returns the criteria in the given category, in id order.
func ByCategory(cat Category) []Criterion {
	if err := ensureLoaded(); err != nil {
		return nil
	}
	var out []Criterion
	for _, c := range ordered {
		if c.Category == cat {
			out = append(out, c)
		}
	}
	return out
}

// ByLevel returns the criteria at exactly the given conformance level.
func ByLevel(level Level) []Criterion {
	if err := ensureLoaded(); err != nil {
		return nil
	}
	var out []Criterion
	for _, c := range ordered {
		if c.Level == level {
			out = append(out, c)
		}
	}
	return out
}

// Verify parses the embedded table and reports any defect. Called at
// process start so a broken data asset fails fast instead of surfacing as
// missing reference URLs later.
func Verify() error {
	return ensureLoaded()
}

// lessID orders dotted numeric ids component-wise, so "1.4.10" sorts after
// "1.4.3".
func lessID(a, b string) bool {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		ai, _ := strconv.Atoi(as[i])
		bi, _ := strconv.Atoi(bs[i])
		if ai != bi {
			return ai < bi
		}
	}
	return len(as) < len(bs)
}
