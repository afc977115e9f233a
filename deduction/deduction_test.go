package deduction

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/chartly/cfg"
)

func testGrammar(t *testing.T) *cfg.Grammar {
	b := cfg.NewGrammarBuilder("G")
	b.LHS(cfg.StartToken).N("A").End()
	b.LHS("A").T("a").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestSpanFormat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartly.cfg")
	defer teardown()
	g := testGrammar(t)
	rule := RuleSpan(cfg.GrammarPoint{Sym: 2, Rule: 0, Dot: 1}, 0, 1)
	if rule.Format(g) != "A → a• [0, 1)" {
		t.Errorf("unexpected rule span format %q", rule.Format(g))
	}
	token := TokenSpan(3, 5)
	if token.Format(g) != "a [5, 6)" {
		t.Errorf("unexpected token span format %q", token.Format(g))
	}
	if token.Extent.Len() != 1 {
		t.Error("token spans must have width 1")
	}
}

// The first recorded justification for a span wins; later ones are dropped.
func TestJustifyFirstWriterWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartly.cfg")
	defer teardown()
	m := NewMap()
	span := RuleSpan(cfg.GrammarPoint{Sym: 0, Rule: 0, Dot: 1}, 0, 1)
	first := TokenSpan(3, 0)
	second := RuleSpan(cfg.GrammarPoint{Sym: 2, Rule: 0, Dot: 1}, 0, 1)
	if !m.Justify(span, first) {
		t.Error("expected the first justification to be recorded")
	}
	if m.Justify(span, second) {
		t.Error("expected the second justification to be dropped")
	}
	by, ok := m.JustificationFor(span)
	if !ok || by != first {
		t.Errorf("expected justification %v, got %v", first, by)
	}
	if _, ok := m.JustificationFor(second); ok {
		t.Error("unjustified span must not resolve")
	}
}
