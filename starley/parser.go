package starley

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/npillmayer/chartly/cfg"
	"github.com/npillmayer/chartly/deduction"
	"github.com/npillmayer/chartly/iteratable"
)

// Parser is the shared-prediction variant of the Earley parser. It has the
// same feeding and chart-growth contract as earley.Parser; only the closure
// differs.
//
// Parsers are not safe for concurrent use. All feeds must come from one
// caller, in input order.
type Parser struct {
	grammar *cfg.Grammar
	chart   []*iteratable.Set
}

// NewParser creates a parser for a grammar. The initial chart state is
// seeded with one item per alternative of the start symbol.
func NewParser(g *cfg.Grammar) *Parser {
	p := &Parser{grammar: g}
	s0 := iteratable.NewSet(g.Alternatives(cfg.StartSymbol))
	for r := 0; r < g.Alternatives(cfg.StartSymbol); r++ {
		s0.Add(cfg.Item{Point: cfg.GrammarPoint{Sym: cfg.StartSymbol, Rule: r, Dot: 0}, Origin: 0})
	}
	p.chart = append(p.chart, s0)
	return p
}

// Grammar returns the grammar the parser operates on.
func (p *Parser) Grammar() *cfg.Grammar {
	return p.grammar
}

// process runs one closure round over the items in frontier, at chart
// position pos, with next being the terminal at that position. Predictions
// and completions are routed through star items; scanning is identical to
// the naive engine (star items never scan).
func (p *Parser) process(pos uint64, frontier *iteratable.Set, next cfg.Symbol) (same, scanned *iteratable.Set) {
	same = iteratable.NewSet(frontier.Size())
	scanned = iteratable.NewSet(0)
	frontier.IterateOnce()
	for frontier.Next() {
		item := frontier.Item().(cfg.Item)
		switch pt := item.Point.(type) {
		case cfg.GrammarPoint:
			dotSym, ok := p.grammar.SymbolAfterDot(pt)
			switch {
			case !ok:
				// Complete star: some alternative of pt.Sym is fully
				// matched. Predictions always went through a star item, so
				// completion flips the undone star waiting at this item's
				// origin, instead of advancing each waiting item directly.
				p.chart[item.Origin].Each(func(el interface{}) {
					waiting := el.(cfg.Item)
					if star, isStar := waiting.Point.(cfg.StarPoint); isStar && !star.Done && star.Sym == pt.Sym {
						same.Add(waiting.Advance())
					}
				})
			case dotSym == next:
				// Scan: as in the naive engine.
				scanned.Add(item.Advance())
			case !p.grammar.IsTerminal(dotSym):
				// Predict star: a single star item per (symbol, position),
				// however many items predict the symbol here.
				same.Add(cfg.Item{Point: cfg.StarPoint{Sym: dotSym, Done: false}, Origin: pos})
			}
		case cfg.StarPoint:
			if pt.Done {
				// Complete: the star reports back to every item waiting at
				// its origin for its symbol.
				p.chart[item.Origin].Each(func(el interface{}) {
					waiting := el.(cfg.Item)
					if wpt, isGP := waiting.Point.(cfg.GrammarPoint); isGP {
						if wsym, wok := p.grammar.SymbolAfterDot(wpt); wok && wsym == pt.Sym {
							same.Add(waiting.Advance())
						}
					}
				})
			} else {
				// Predict: expand the star into one item per alternative.
				// This is where the per-alternative fan-out happens, once
				// per (symbol, position).
				for r := 0; r < p.grammar.Alternatives(pt.Sym); r++ {
					same.Add(cfg.Item{Point: cfg.GrammarPoint{Sym: pt.Sym, Rule: r, Dot: 0}, Origin: pos})
				}
			}
		default:
			panic(fmt.Errorf("unknown point type %T: %w", item.Point, cfg.ErrInvalidGrammarPoint))
		}
	}
	return same, scanned
}

// Feed hands the parser the next terminal token of the input. See
// earley.Parser.Feed for the contract; the two engines behave identically
// at this surface.
func (p *Parser) Feed(token string) error {
	next, err := p.grammar.TerminalID(token)
	if err != nil {
		return err
	}
	pos := uint64(len(p.chart) - 1)
	cur := p.chart[pos]
	tracer().Debugf("feed %q at position %d", token, pos)

	same, scanned := p.process(pos, cur, next)
	same.Subtract(cur)
	cur.Union(same)
	for !same.Empty() {
		moreSame, moreScanned := p.process(pos, same, next)
		same = moreSame.Subtract(cur)
		cur.Union(same)
		scanned.Union(moreScanned)
	}
	if next != cfg.EOFSymbol {
		p.chart = append(p.chart, scanned)
	}
	return nil
}

// Parse feeds all tokens of an input, followed by the end-of-input
// sentinel, and reports whether the input is accepted. A rejected input is
// not an error.
func (p *Parser) Parse(tokens []string) (bool, error) {
	for _, tok := range tokens {
		if err := p.Feed(tok); err != nil {
			return false, err
		}
	}
	if err := p.Feed(cfg.EOFToken); err != nil {
		return false, err
	}
	return len(p.CompleteItems()) > 0, nil
}

// CompleteItems returns the completed top-level parses at the last chart
// position. Star items never appear in the result.
func (p *Parser) CompleteItems() []deduction.Span {
	return p.CompleteItemsAt(len(p.chart) - 1)
}

// CompleteItemsAt is CompleteItems for an arbitrary chart position. The
// returned spans cover [0,at) and are ordered by rule index.
func (p *Parser) CompleteItemsAt(at int) []deduction.Span {
	sorted := treeset.NewWith(func(a, b interface{}) int {
		ra := a.(deduction.Span).Label.(deduction.RuleLabel).Point.Rule
		rb := b.(deduction.Span).Label.(deduction.RuleLabel).Point.Rule
		return utils.IntComparator(ra, rb)
	})
	p.chart[at].Each(func(el interface{}) {
		item := el.(cfg.Item)
		pt, ok := item.Point.(cfg.GrammarPoint)
		if !ok || pt.Sym != cfg.StartSymbol || item.Origin != 0 {
			return
		}
		if _, more := p.grammar.SymbolAfterDot(pt); !more {
			sorted.Add(deduction.RuleSpan(pt, 0, uint64(at)))
		}
	})
	spans := make([]deduction.Span, 0, sorted.Size())
	for _, v := range sorted.Values() {
		spans = append(spans, v.(deduction.Span))
	}
	return spans
}

// ChartLength returns the number of chart states.
func (p *Parser) ChartLength() int {
	return len(p.chart)
}

// State grants read access to the item set at chart position i. The set is
// owned by the parser and must not be modified.
func (p *Parser) State(i int) *iteratable.Set {
	return p.chart[i]
}
