package earley

import (
	"github.com/npillmayer/schuko/gconf"

	"github.com/npillmayer/chartly/cfg"
	"github.com/npillmayer/chartly/deduction"
)

/*
Reconstructing a derivation from the deduction map.

A completed item

	A → b A •  [beg, end)

can only exist because items for every earlier dot position exist too, and
each dot step was justified either by a scanned terminal or by a completed
sub-parse. The deduction map records one such justification per span, so
walking the dot from its current value down to 1, shrinking the span's end
to the justification's begin at every step, recovers one ordered list of
sub-derivations.

When a queried span turns out to be its own justification the dot step was
not produced by a separate sub-derivation, and no child is emitted.

Only the first justification discovered during chart construction is
retained, so for ambiguous grammars the returned derivation is the first
one in deterministic chart-construction order: a stable policy, but not
"leftmost" or "best" in any grammatical sense.
*/

// TraceDeduction reconstructs the derivation tree for a span, typically an
// element of CompleteItems. The returned tree's leaves are terminal spans
// of width 1.
//
// Every span a correct engine hands out is justified by construction; a
// missing deduction map entry indicates a bug in the engine and yields a
// nil tree (see missingDeduction).
func (p *Parser) TraceDeduction(span deduction.Span) *deduction.Node {
	node := &deduction.Node{Span: span}
	label, ok := span.Label.(deduction.RuleLabel)
	if !ok {
		return node // a terminal span is a leaf
	}
	beg, end := span.Extent.From(), span.Extent.To()
	for dot := label.Point.Dot; dot > 0; dot-- {
		pt := cfg.GrammarPoint{Sym: label.Point.Sym, Rule: label.Point.Rule, Dot: dot}
		query := deduction.RuleSpan(pt, beg, end)
		by, found := p.deduced.JustificationFor(query)
		if !found {
			if missingDeduction(p.grammar, query) {
				return nil
			}
		}
		if by != query {
			node.Children = append(node.Children, p.TraceDeduction(by))
		}
		end = by.Extent.From()
	}
	reverseNodes(node.Children)
	return node
}

func reverseNodes(nodes []*deduction.Node) {
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
}

func missingDeduction(g *cfg.Grammar, query deduction.Span) bool {
	tracer().Errorf("no deduction recorded for %s", query.Format(g))
	if gconf.GetBool("panic-on-missing-deduction") {
		panic(`Earley deduction map is missing an entry.

Configuration flag panic-on-missing-deduction is set to true. It is aimed
at helping to debug an engine and do a post-mortem of why a span queried
during derivation tracing was never justified. However, if this is a
production environment and you did not expect this to panic, please unset
panic-on-missing-deduction to its default (false).`)
	}
	return true
}
