package starley

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/chartly"
	"github.com/npillmayer/chartly/cfg"
	"github.com/npillmayer/chartly/earley"
	"github.com/npillmayer/chartly/iteratable"
)

// Same toy grammar as in the earley tests:
//
//	<start> → A A
//	A       → A a  |  b A  |  c
//
func toyGrammar(t *testing.T) *cfg.Grammar {
	b := cfg.NewGrammarBuilder("toy")
	b.LHS(cfg.StartToken).N("A").N("A").End()
	b.LHS("A").N("A").T("a").End()
	b.LHS("A").T("b").N("A").End()
	b.LHS("A").T("c").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func statePoints(g *cfg.Grammar, S *iteratable.Set) map[string]bool {
	points := map[string]bool{}
	S.Each(func(el interface{}) {
		points[g.FormatPoint(el.(cfg.Item).Point)] = true
	})
	return points
}

func expectState(t *testing.T, g *cfg.Grammar, S *iteratable.Set, stateno int, want []string) {
	got := statePoints(g, S)
	if len(got) != len(want) {
		t.Errorf("state %d: expected %d distinct points, got %v", stateno, len(want), got)
		return
	}
	for _, pt := range want {
		if !got[pt] {
			t.Errorf("state %d: expected point %q, have %v", stateno, pt, got)
		}
	}
}

// The chart mirrors the naive engine's, plus one star item pair per
// predicted (symbol, position).
func TestChartStatesWithStars(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartly.chart")
	defer teardown()
	g := toyGrammar(t)
	p := NewParser(g)
	accepted, err := p.Parse(chartly.Tokens("cac", ""))
	if err != nil {
		t.Fatal(err)
	}
	if !accepted {
		t.Error("expected input 'cac' to be accepted")
	}
	if p.ChartLength() != 4 {
		t.Fatalf("expected a chart of 4 states, have %d", p.ChartLength())
	}
	expectState(t, g, p.State(0), 0, []string{
		"<start> → •AA", "A → •Aa", "A → •bA", "A → •c", "A → •★",
	})
	expectState(t, g, p.State(1), 1, []string{
		"A → c•", "A → ★•", "<start> → A•A", "A → A•a",
		"A → •Aa", "A → •bA", "A → •c", "A → •★",
	})
	expectState(t, g, p.State(2), 2, []string{
		"A → Aa•", "A → ★•", "<start> → A•A", "A → A•a",
		"A → •Aa", "A → •bA", "A → •c", "A → •★",
	})
	expectState(t, g, p.State(3), 3, []string{
		"<start> → AA•", "A → c•", "A → A•a", "A → ★•",
	})
}

func TestCompleteItems(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartly.chart")
	defer teardown()
	g := toyGrammar(t)
	p := NewParser(g)
	if _, err := p.Parse(chartly.Tokens("cac", "")); err != nil {
		t.Fatal(err)
	}
	items := p.CompleteItems()
	if len(items) != 1 {
		t.Fatalf("expected exactly one complete parse, have %d", len(items))
	}
	if items[0].Format(g) != "<start> → AA• [0, 3)" {
		t.Errorf("unexpected complete item %s", items[0].Format(g))
	}
}

func TestReject(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartly.chart")
	defer teardown()
	g := toyGrammar(t)
	p := NewParser(g)
	accepted, err := p.Parse(chartly.Tokens("aba", ""))
	if err != nil {
		t.Fatal(err)
	}
	if accepted || len(p.CompleteItems()) != 0 {
		t.Error("expected input 'aba' to be rejected")
	}
	if p.ChartLength() != 4 {
		t.Errorf("expected a chart of 4 states, have %d", p.ChartLength())
	}
}

// grammarPointItems filters a state down to its grammar-point items, with
// origins. Star items are an artifact of this engine and excluded.
func grammarPointItems(S *iteratable.Set) map[cfg.Item]bool {
	items := map[cfg.Item]bool{}
	S.Each(func(el interface{}) {
		item := el.(cfg.Item)
		if _, isGP := item.Point.(cfg.GrammarPoint); isGP {
			items[item] = true
		}
	})
	return items
}

// Both engines must agree on the grammar-point items of every chart state,
// for accepting and rejecting inputs alike.
func TestEnginesAgree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartly.chart")
	defer teardown()
	g := toyGrammar(t)
	inputs := []string{"c", "cc", "cac", "bca", "bbcc", "caca", "aba", "b", ""}
	for _, input := range inputs {
		naive := earley.NewParser(g)
		fast := NewParser(g)
		tokens := chartly.Tokens(input, "")
		acc1, err := naive.Parse(tokens)
		if err != nil {
			t.Fatal(err)
		}
		acc2, err := fast.Parse(tokens)
		if err != nil {
			t.Fatal(err)
		}
		if acc1 != acc2 {
			t.Errorf("input %q: engines disagree on acceptance (%v vs %v)", input, acc1, acc2)
		}
		if naive.ChartLength() != fast.ChartLength() {
			t.Errorf("input %q: chart lengths differ (%d vs %d)", input,
				naive.ChartLength(), fast.ChartLength())
			continue
		}
		for i := 0; i < naive.ChartLength(); i++ {
			want := grammarPointItems(naive.State(i))
			got := grammarPointItems(fast.State(i))
			if len(want) != len(got) {
				t.Errorf("input %q, state %d: %d vs %d grammar-point items",
					input, i, len(want), len(got))
				continue
			}
			for item := range want {
				if !got[item] {
					t.Errorf("input %q, state %d: item %v missing from star engine",
						input, i, item)
				}
			}
		}
	}
}
