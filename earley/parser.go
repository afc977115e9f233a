package earley

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/npillmayer/chartly/cfg"
	"github.com/npillmayer/chartly/deduction"
	"github.com/npillmayer/chartly/iteratable"
)

// Parser is an Earley parser for one input over one grammar. It owns the
// chart and the deduction map it builds; the grammar is shared read-only.
//
// Parsers are not safe for concurrent use. All feeds must come from one
// caller, in input order.
type Parser struct {
	grammar *cfg.Grammar
	chart   []*iteratable.Set // one state per input position, plus the initial state
	deduced deduction.Map
}

// NewParser creates a parser for a grammar. The initial chart state is
// seeded with one item per alternative of the start symbol.
func NewParser(g *cfg.Grammar) *Parser {
	p := &Parser{
		grammar: g,
		deduced: deduction.NewMap(),
	}
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

// process runs one closure round over the items in frontier, which live at
// chart position pos, with next being the terminal at that position. It
// returns the items produced by predictions and completions, which belong
// to the same position, and the items produced by scans, which belong to
// the next position.
func (p *Parser) process(pos uint64, frontier *iteratable.Set, next cfg.Symbol) (same, scanned *iteratable.Set) {
	same = iteratable.NewSet(frontier.Size())
	scanned = iteratable.NewSet(0)
	frontier.IterateOnce()
	for frontier.Next() {
		item := frontier.Item().(cfg.Item)
		pt := item.Point.(cfg.GrammarPoint) // the naive engine holds grammar points only
		dotSym, ok := p.grammar.SymbolAfterDot(pt)
		switch {
		case !ok:
			// Complete: the item's rule is fully matched. Every item waiting
			// at this item's origin for the rule's symbol moves forward one
			// step. No input is consumed, the advanced items belong to the
			// current position.
			itemSpan := deduction.RuleSpan(pt, item.Origin, pos)
			p.chart[item.Origin].Each(func(el interface{}) {
				waiting := el.(cfg.Item)
				wpt := waiting.Point.(cfg.GrammarPoint)
				if wsym, wok := p.grammar.SymbolAfterDot(wpt); wok && wsym == pt.Sym {
					adv := waiting.Advance()
					same.Add(adv)
					advSpan := deduction.RuleSpan(adv.Point.(cfg.GrammarPoint), adv.Origin, pos)
					p.deduced.Justify(advSpan, itemSpan)
				}
			})
		case dotSym == next:
			// Scan: the item was waiting for exactly this terminal, so it
			// proceeds into the next position.
			adv := item.Advance()
			scanned.Add(adv)
			advSpan := deduction.RuleSpan(adv.Point.(cfg.GrammarPoint), adv.Origin, pos+1)
			p.deduced.Justify(advSpan, deduction.TokenSpan(dotSym, pos))
		case !p.grammar.IsTerminal(dotSym):
			// Predict: expand the non-terminal after the dot, one fresh item
			// per production alternative, starting at the current position.
			for r := 0; r < p.grammar.Alternatives(dotSym); r++ {
				same.Add(cfg.Item{Point: cfg.GrammarPoint{Sym: dotSym, Rule: r, Dot: 0}, Origin: pos})
			}
		}
	}
	return same, scanned
}

// Feed hands the parser the next terminal token of the input. The current
// chart state is closed under predict/complete to a fixpoint, and the items
// produced by scanning the token become a new chart state. Feeding the
// "#eof" sentinel only flushes the final state and never appends one.
//
// Feed fails with cfg.ErrUnknownTerminal if token is not registered as a
// terminal in the grammar.
func (p *Parser) Feed(token string) error {
	next, err := p.grammar.TerminalID(token)
	if err != nil {
		return err
	}
	pos := uint64(len(p.chart) - 1)
	cur := p.chart[pos]
	tracer().Debugf("feed %q at position %d", token, pos)

	same, scanned := p.process(pos, cur, next)
	// Only the newly generated items matter; the others are already merged
	// and have been processed.
	same.Subtract(cur)
	cur.Union(same)
	// Closing the state may have created items which in turn predict or
	// complete. Keep processing the unseen items until a round produces
	// nothing new.
	for !same.Empty() {
		moreSame, moreScanned := p.process(pos, same, next)
		same = moreSame.Subtract(cur)
		cur.Union(same)
		scanned.Union(moreScanned)
	}
	tracer().Debugf("state %d closed: %s", pos, itemSetString(p.grammar, cur))
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
// position: spans for every fully matched start-symbol item with origin 0.
// An empty result means the input is not in the grammar's language.
func (p *Parser) CompleteItems() []deduction.Span {
	return p.CompleteItemsAt(len(p.chart) - 1)
}

// CompleteItemsAt is CompleteItems for an arbitrary chart position. The
// returned spans cover [0,at) and are ordered by rule index.
func (p *Parser) CompleteItemsAt(at int) []deduction.Span {
	return completedStartSpans(p.grammar, p.chart[at], uint64(at))
}

// completedStartSpans collects the fully matched start-symbol items with
// origin 0 from a state, as spans ending at position at, ordered by rule
// index. Shared with the starley engine.
func completedStartSpans(g *cfg.Grammar, state *iteratable.Set, at uint64) []deduction.Span {
	sorted := treeset.NewWith(func(a, b interface{}) int {
		ra := a.(deduction.Span).Label.(deduction.RuleLabel).Point.Rule
		rb := b.(deduction.Span).Label.(deduction.RuleLabel).Point.Rule
		return utils.IntComparator(ra, rb)
	})
	state.Each(func(el interface{}) {
		item := el.(cfg.Item)
		pt, ok := item.Point.(cfg.GrammarPoint)
		if !ok || pt.Sym != cfg.StartSymbol || item.Origin != 0 {
			return
		}
		if _, more := g.SymbolAfterDot(pt); !more {
			sorted.Add(deduction.RuleSpan(pt, 0, at))
		}
	})
	spans := make([]deduction.Span, 0, sorted.Size())
	for _, v := range sorted.Values() {
		spans = append(spans, v.(deduction.Span))
	}
	return spans
}

// ChartLength returns the number of chart states. At steady state this is
// the input length plus one.
func (p *Parser) ChartLength() int {
	return len(p.chart)
}

// State grants read access to the item set at chart position i, for
// inspection and formatting. The set is owned by the parser and must not
// be modified.
func (p *Parser) State(i int) *iteratable.Set {
	return p.chart[i]
}
