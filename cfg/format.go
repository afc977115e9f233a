package cfg

import (
	"fmt"
	"strings"
)

// Raw debug forms, without token names. Use Grammar.FormatPoint for
// human-readable output.

func (pt GrammarPoint) String() string {
	return fmt.Sprintf("(%d.%d@%d)", pt.Sym, pt.Rule, pt.Dot)
}

func (pt StarPoint) String() string {
	if pt.Done {
		return fmt.Sprintf("(%d ★•)", pt.Sym)
	}
	return fmt.Sprintf("(%d •★)", pt.Sym)
}

// FormatPoint renders a point as a dotted rule, e.g. "A → b•A" for grammar
// points and "A → •★" / "A → ★•" for star points.
func (g *Grammar) FormatPoint(pt Point) string {
	switch p := pt.(type) {
	case GrammarPoint:
		rule := g.ruleAt(p)
		sym := g.Token(p.Sym)
		parts := make([]string, len(rule))
		for i, s := range rule {
			parts[i] = g.Token(s)
		}
		head, tail := parts[:p.Dot], parts[p.Dot:]
		return fmt.Sprintf("%s → %s•%s", sym, strings.Join(head, ""), strings.Join(tail, ""))
	case StarPoint:
		sym := g.Token(p.Sym)
		if p.Done {
			return fmt.Sprintf("%s → ★•", sym)
		}
		return fmt.Sprintf("%s → •★", sym)
	}
	panic(fmt.Errorf("unknown point type %T: %w", pt, ErrInvalidGrammarPoint))
}

// FormatRule renders alternative i of sym, e.g. "A → bA".
func (g *Grammar) FormatRule(sym Symbol, i int) string {
	rule := g.ruleAt(GrammarPoint{Sym: sym, Rule: i})
	parts := make([]string, len(rule))
	for j, s := range rule {
		parts[j] = g.Token(s)
	}
	return fmt.Sprintf("%s → %s", g.Token(sym), strings.Join(parts, ""))
}

// FormatRulesFor renders all alternatives of sym on one line, piped, e.g.
// "A → Aa|bA|c". It returns the empty string for symbols without rules.
func (g *Grammar) FormatRulesFor(sym Symbol) string {
	if g.Alternatives(sym) == 0 {
		return ""
	}
	alts := make([]string, len(g.rules[sym]))
	for i, rule := range g.rules[sym] {
		parts := make([]string, len(rule))
		for j, s := range rule {
			parts[j] = g.Token(s)
		}
		alts[i] = strings.Join(parts, "")
	}
	return fmt.Sprintf("%s → %s", g.Token(sym), strings.Join(alts, "|"))
}

// FormatAllRules renders every symbol's alternatives, skipping symbols
// without rules.
func (g *Grammar) FormatAllRules() []string {
	var lines []string
	for sym := range g.rules {
		if line := g.FormatRulesFor(Symbol(sym)); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// FormatAllSymbols renders every registered symbol, marking terminals with
// a trailing '*'.
func (g *Grammar) FormatAllSymbols() []string {
	syms := make([]string, len(g.tokens))
	for id, tok := range g.tokens {
		if g.IsTerminal(Symbol(id)) {
			tok += "*"
		}
		syms[id] = tok
	}
	return syms
}

// Dump logs all symbols and rules of the grammar. Visible in debug mode
// only.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %q ----------------", g.name)
	tracer().Debugf("symbols: %s", strings.Join(g.FormatAllSymbols(), " "))
	for _, line := range g.FormatAllRules() {
		tracer().Debugf("%s", line)
	}
	tracer().Debugf("-------------------------------")
}
