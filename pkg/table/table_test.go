package table

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rollcraft/rollcraft/pkg/dice"
)

const sampleTable = `
longsword:
  expression: 1d8+3
  description: Longsword swing with +3 strength
sneak-attack:
  expression: 1d8+3+2d6
greater-invisibility:
  expression: 1d20+5
  advantage: true
`

func TestParse(t *testing.T) {
	tbl, err := Parse([]byte(sampleTable))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(tbl) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(tbl))
	}

	expr, err := tbl.Expression("longsword")
	if err != nil {
		t.Fatalf("expression error: %v", err)
	}
	mean, err := expr.Mean()
	if err != nil {
		t.Fatalf("mean error: %v", err)
	}
	if mean != 7.5 {
		t.Errorf("mean = %v, want 7.5", mean)
	}
}

func TestParseRejectsBadExpression(t *testing.T) {
	_, err := Parse([]byte("broken:\n  expression: 2d\n"))
	if err == nil {
		t.Fatal("expected an error for a bad expression")
	}
	if !strings.Contains(err.Error(), `"broken"`) {
		t.Errorf("error should name the entry: %v", err)
	}
	var de *dice.Error
	if !errors.As(err, &de) || !de.HasTag(dice.TagDanglingDiceSeparator) {
		t.Errorf("expected DanglingDiceSeparator in chain, got %v", err)
	}
}

func TestParseRequiresExpression(t *testing.T) {
	_, err := Parse([]byte("empty:\n  description: nothing here\n"))
	if err == nil {
		t.Fatal("expected an error for a missing expression")
	}
	if !strings.Contains(err.Error(), "expression is required") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestExpressionUnknownName(t *testing.T) {
	tbl, err := Parse([]byte(sampleTable))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if _, err := tbl.Expression("fireball"); err == nil {
		t.Fatal("expected an error for an unknown roll name")
	}
}

func TestEntryDefaultsCarryToExpression(t *testing.T) {
	tbl, err := Parse([]byte(sampleTable))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	expr, err := tbl.Expression("greater-invisibility")
	if err != nil {
		t.Fatalf("expression error: %v", err)
	}

	// Advantage default: two draws per die, keeping the higher, then +5.
	got, err := expr.Roll(&stubSource{seq: []int{0, 9}})
	if err != nil {
		t.Fatalf("roll error: %v", err)
	}
	if got != 15 {
		t.Errorf("got %v, want 15", got)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rolls.yaml")
	if err := os.WriteFile(path, []byte(sampleTable), 0o600); err != nil {
		t.Fatal(err)
	}

	tbl, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if _, ok := tbl["sneak-attack"]; !ok {
		t.Error("expected sneak-attack entry")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

// stubSource replays a fixed sequence of draws.
type stubSource struct {
	seq []int
	i   int
}

func (s *stubSource) Intn(n int) int {
	v := s.seq[s.i%len(s.seq)]
	s.i++
	return v % n
}
