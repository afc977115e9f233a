package grammarfile

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/chartly"
	"github.com/npillmayer/chartly/cfg"
	"github.com/npillmayer/chartly/earley"
)

const toyInput = `
# the toy grammar, with weights
<start> → A A
A → A a : 2
A -> b A
A → c : 0.5
`

func TestLoadToyGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartly.cfg")
	defer teardown()
	g, rules, err := Load(strings.NewReader(toyInput), "toy")
	if err != nil {
		t.Fatal(err)
	}
	lines := map[string]bool{}
	for _, line := range g.FormatAllRules() {
		lines[line] = true
	}
	if len(lines) != 2 || !lines["<start> → AA"] || !lines["A → Aa|bA|c"] {
		t.Errorf("unexpected rules: %v", g.FormatAllRules())
	}
	weights := []float64{1, 2, 1, 0.5}
	if len(rules) != len(weights) {
		t.Fatalf("expected %d rules, have %d", len(weights), len(rules))
	}
	for i, w := range weights {
		if rules[i].Weight != w {
			t.Errorf("rule %d: expected weight %v, have %v", i, w, rules[i].Weight)
		}
	}
}

// A loaded grammar parses like a hand-built one.
func TestLoadedGrammarParses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartly.cfg")
	defer teardown()
	g, _, err := Parse("toy", toyInput)
	if err != nil {
		t.Fatal(err)
	}
	p := earley.NewParser(g)
	accepted, err := p.Parse(chartly.Tokens("cac", ""))
	if err != nil {
		t.Fatal(err)
	}
	if !accepted {
		t.Error("expected input 'cac' to be accepted")
	}
}

func TestSymbolClassification(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartly.cfg")
	defer teardown()
	input := `
<start> → NP1 punct
NP1 → n42 +
`
	g, _, err := Parse("mixed", input)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		token    string
		terminal bool
	}{
		{"NP1", false}, {"punct", true}, {"n42", true}, {"+", true},
	}
	for _, c := range cases {
		id, ok := symbolID(g, c.token)
		if !ok {
			t.Errorf("symbol %q not registered", c.token)
			continue
		}
		if g.IsTerminal(id) != c.terminal {
			t.Errorf("symbol %q: expected terminal=%v", c.token, c.terminal)
		}
	}
}

func symbolID(g *cfg.Grammar, token string) (cfg.Symbol, bool) {
	var id cfg.Symbol
	found := false
	g.EachSymbol(func(sym cfg.Symbol) {
		if g.Token(sym) == token {
			id, found = sym, true
		}
	})
	return id, found
}

// Symbols may be referenced before their defining line.
func TestForwardReference(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartly.cfg")
	defer teardown()
	input := `
<start> → EXPR
EXPR → EXPR + TERM
EXPR → TERM
TERM → n
`
	g, _, err := Parse("expr", input)
	if err != nil {
		t.Fatal(err)
	}
	p := earley.NewParser(g)
	accepted, err := p.Parse([]string{"n", "+", "n"})
	if err != nil {
		t.Fatal(err)
	}
	if !accepted {
		t.Error("expected 'n + n' to be accepted")
	}
}

func TestSyntaxErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartly.cfg")
	defer teardown()
	cases := []struct {
		name  string
		input string
	}{
		{"missing arrow", "A a b"},
		{"missing rhs", "A →"},
		{"missing rhs with weight", "A → : 2"},
		{"bad weight", "A → a : x"},
		{"double colon", "A → a : 1 : 2"},
	}
	for _, c := range cases {
		if _, _, err := Parse(c.name, c.input); !errors.Is(err, ErrSyntax) {
			t.Errorf("%s: expected ErrSyntax, got %v", c.name, err)
		}
	}
}

func TestTerminalHead(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartly.cfg")
	defer teardown()
	input := `
<start> → a
a → b
`
	_, _, err := Parse("broken", input)
	if !errors.Is(err, cfg.ErrTerminalHasProductions) {
		t.Errorf("expected ErrTerminalHasProductions, got %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), "line 3") {
		t.Errorf("expected the error to carry line 3, got %v", err)
	}
}
