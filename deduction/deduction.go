package deduction

import (
	"fmt"

	"github.com/npillmayer/chartly"
	"github.com/npillmayer/chartly/cfg"
)

// Label identifies what a span was matched as. It is a closed sum: a span
// is labelled either with a dotted rule (RuleLabel) or with a bare terminal
// symbol (TokenLabel).
type Label interface {
	isLabel()
}

// RuleLabel labels a span with a partially parsed production rule.
type RuleLabel struct {
	Point cfg.GrammarPoint
}

func (RuleLabel) isLabel() {}

// TokenLabel labels a span with a matched terminal symbol.
type TokenLabel struct {
	Sym cfg.Symbol
}

func (TokenLabel) isLabel() {}

// Span is a parse event: a label matched over the input range Extent.
// Spans are immutable values and hash structurally.
type Span struct {
	Label  Label
	Extent chartly.Span
}

// RuleSpan creates a span for a dotted rule over [from,to).
func RuleSpan(pt cfg.GrammarPoint, from, to uint64) Span {
	return Span{Label: RuleLabel{Point: pt}, Extent: chartly.MakeSpan(from, to)}
}

// TokenSpan creates a span for a terminal matched at input position at.
// Terminal spans always have width 1.
func TokenSpan(sym cfg.Symbol, at uint64) Span {
	return Span{Label: TokenLabel{Sym: sym}, Extent: chartly.MakeSpan(at, at+1)}
}

// Format renders a span with the grammar's token names, e.g.
// "A → Aa• [0, 2)" or "c [2, 3)".
func (s Span) Format(g *cfg.Grammar) string {
	switch l := s.Label.(type) {
	case RuleLabel:
		return fmt.Sprintf("%s %v", g.FormatPoint(l.Point), s.Extent)
	case TokenLabel:
		return fmt.Sprintf("%s %v", g.Token(l.Sym), s.Extent)
	}
	panic(fmt.Errorf("unknown deduction label type %T", s.Label))
}

// --- Deduction map ----------------------------------------------------

// Map records, for a completed span, one other span the completion of
// which justifies it. The map is append-only and the first justification
// discovered for a span wins; later ones are dropped.
type Map map[Span]Span

// NewMap creates an empty deduction map.
func NewMap() Map {
	return make(Map)
}

// Justify records that span is justified by the completion of by. If span
// already has a justification, the call is a no-op and returns false.
func (m Map) Justify(span, by Span) bool {
	if _, ok := m[span]; ok {
		return false
	}
	m[span] = by
	return true
}

// JustificationFor looks up the recorded justification of span.
func (m Map) JustificationFor(span Span) (Span, bool) {
	by, ok := m[span]
	return by, ok
}
