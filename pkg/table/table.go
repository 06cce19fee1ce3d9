// Package table loads named roll definitions from YAML files.
package table

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rollcraft/rollcraft/pkg/dice"
)

// Entry is one named roll in a table file.
type Entry struct {
	Expression   string `yaml:"expression"`
	Advantage    bool   `yaml:"advantage"`
	Disadvantage bool   `yaml:"disadvantage"`
	Description  string `yaml:"description"`
}

// Table maps roll names to their definitions.
type Table map[string]Entry

// Load reads a YAML roll table from disk.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roll table: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("roll table %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes a YAML roll table and validates every expression, so a bad
// entry is reported at load time rather than on first use.
func Parse(data []byte) (Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decode roll table: %w", err)
	}
	for name, entry := range t {
		if entry.Expression == "" {
			return nil, fmt.Errorf("roll %q: expression is required", name)
		}
		if _, err := dice.Parse(entry.Expression); err != nil {
			return nil, fmt.Errorf("roll %q: %w", name, err)
		}
	}
	return t, nil
}

// Expression builds the dice expression for a named roll, carrying the
// entry's advantage and disadvantage defaults.
func (t Table) Expression(name string) (*dice.Expression, error) {
	entry, ok := t[name]
	if !ok {
		return nil, fmt.Errorf("roll %q not found in table", name)
	}
	return dice.NewWith(entry.Expression, entry.Advantage, entry.Disadvantage), nil
}
