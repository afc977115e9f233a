package cfg

import (
	"errors"
	"fmt"

	"github.com/cnf/structhash"
)

// Symbol is an integer handle for a terminal or non-terminal symbol of a
// grammar. Ids are dense and assigned in registration order.
type Symbol int

// Reserved symbols, present in every grammar.
const (
	StartSymbol Symbol = 0 // the start non-terminal
	EOFSymbol   Symbol = 1 // the end-of-input sentinel terminal
)

// Printable forms of the reserved symbols.
const (
	StartToken = "<start>"
	EOFToken   = "#eof"
)

// Rule is one right-hand side of a production. The complete production is
// identified by the owning Symbol together with the index of the
// alternative.
type Rule []Symbol

// Errors reported during grammar construction and terminal lookup.
var (
	ErrEmptySymbol                 = errors.New("symbol cannot be empty")
	ErrDuplicateTerminalProduction = errors.New("a production rule exists for terminal symbol")
	ErrUnknownSymbol               = errors.New("symbol does not exist in the grammar")
	ErrTerminalHasProductions      = errors.New("production rules on terminal symbols are not allowed")
	ErrUnknownTerminal             = errors.New("token is not a registered terminal")
)

// ErrInvalidGrammarPoint signals a grammar point referencing a nonexistent
// rule or a dot past the rule's end. This is an internal invariant
// violation, not a recoverable condition: it is used as a panic value.
var ErrInvalidGrammarPoint = errors.New("invalid grammar point")

// --- Points ----------------------------------------------------------------

// Point is a position marker within the productions of one symbol. It is a
// closed sum: the only implementations are GrammarPoint and StarPoint.
// Points are immutable values and hash structurally, so they are usable as
// set members and map keys.
type Point interface {
	// Advance moves the dot one step forward, returning a new point.
	Advance() Point
	isPoint()
}

// GrammarPoint represents a partially parsed production rule: alternative
// Rule of symbol Sym, with the first Dot right-hand-side positions matched.
// Dot ranges over [0, len(rule)].
type GrammarPoint struct {
	Sym  Symbol
	Rule int
	Dot  int
}

func (GrammarPoint) isPoint() {}

// Advance moves the dot one step forward in the rule.
// The dot must not already be at the end of the rule; callers check
// completion first (see Grammar.SymbolAfterDot).
func (pt GrammarPoint) Advance() Point {
	return GrammarPoint{Sym: pt.Sym, Rule: pt.Rule, Dot: pt.Dot + 1}
}

// StarPoint represents a symbol to be parsed with any of its alternative
// production rules. A star item has length one, so its dot is just a flag:
// Done=false stands for "about to try any alternative of Sym", Done=true
// for "some alternative of Sym has completed". Which alternative matched is
// never tracked here; the deduction map resolves that.
type StarPoint struct {
	Sym  Symbol
	Done bool
}

func (StarPoint) isPoint() {}

// Advance completes the star item. The item must not be done yet.
func (pt StarPoint) Advance() Point {
	if pt.Done {
		panic(fmt.Errorf("star point for symbol %d advanced twice: %w", pt.Sym, ErrInvalidGrammarPoint))
	}
	return StarPoint{Sym: pt.Sym, Done: true}
}

// --- Items -----------------------------------------------------------------

// Item is a partial parse of a grammar rule at some position of the input:
// a point together with the chart position where its match began. Items are
// pure values; two items with equal fields are the same item.
type Item struct {
	Point  Point
	Origin uint64
}

// Advance moves the dot of the item one step forward.
func (it Item) Advance() Item {
	return Item{Point: it.Point.Advance(), Origin: it.Origin}
}

func (it Item) String() string {
	return fmt.Sprintf("[%v, %d]", it.Point, it.Origin)
}

// --- Grammar ---------------------------------------------------------------

// Grammar is the complete description of a context-free grammar, keeping
// track of its symbols and production rules.
//
// The token table is bijective: a token maps to exactly one symbol id and
// vice versa. A symbol id is either terminal or may own production
// alternatives, never both.
type Grammar struct {
	name      string
	ids       map[string]Symbol   // token → id
	tokens    []string            // id → token; insertion order assigns ids
	terminals map[Symbol]struct{} // ids registered as terminals
	rules     [][]Rule            // rules[sym] = ordered alternatives for sym
}

// NewGrammar creates an empty grammar with the two reserved symbols
// "<start>" and "#eof" already registered.
func NewGrammar(name string) *Grammar {
	g := &Grammar{
		name:      name,
		ids:       make(map[string]Symbol),
		terminals: make(map[Symbol]struct{}),
	}
	if err := g.AddSymbol(StartToken, false); err != nil {
		panic(err) // cannot happen
	}
	if err := g.AddSymbol(EOFToken, true); err != nil {
		panic(err) // cannot happen
	}
	return g
}

// Name returns the name given to the grammar at construction.
func (g *Grammar) Name() string {
	return g.name
}

// AddSymbol registers a terminal or non-terminal symbol. The new symbol
// receives the next sequential id.
func (g *Grammar) AddSymbol(token string, terminal bool) error {
	if token == "" {
		return ErrEmptySymbol
	}
	if _, ok := g.ids[token]; ok {
		return fmt.Errorf("symbol %q registered twice", token)
	}
	id := Symbol(len(g.tokens))
	if terminal && int(id) < len(g.rules) && len(g.rules[id]) > 0 {
		return fmt.Errorf("error adding terminal symbol %q: %w", token, ErrDuplicateTerminalProduction)
	}
	g.ids[token] = id
	g.tokens = append(g.tokens, token)
	if terminal {
		g.terminals[id] = struct{}{}
	}
	tracer().Debugf("grammar %q: symbol %q = %d, terminal=%v", g.name, token, id, terminal)
	return nil
}

// AddRule appends one production alternative for head, given the printable
// forms of its symbols. Every referenced token must already be registered,
// and head must not resolve to a terminal.
func (g *Grammar) AddRule(head string, rhs []string) error {
	sym, rule, err := g.convertRule(head, rhs)
	if err != nil {
		return err
	}
	if int(sym) >= len(g.rules) {
		grown := make([][]Rule, len(g.tokens))
		copy(grown, g.rules)
		g.rules = grown
	}
	g.rules[sym] = append(g.rules[sym], rule)
	tracer().Debugf("grammar %q: rule %s", g.name, g.FormatRule(sym, len(g.rules[sym])-1))
	return nil
}

// convertRule resolves a rule given in printable form to its integer
// representation.
func (g *Grammar) convertRule(head string, rhs []string) (Symbol, Rule, error) {
	sym, ok := g.ids[head]
	if !ok {
		return 0, nil, fmt.Errorf("%q: %w", head, ErrUnknownSymbol)
	}
	if len(rhs) == 0 {
		return 0, nil, fmt.Errorf("empty right-hand side for %q", head)
	}
	if g.IsTerminal(sym) {
		return 0, nil, fmt.Errorf("%q is a terminal symbol: %w", head, ErrTerminalHasProductions)
	}
	rule := make(Rule, len(rhs))
	for i, tok := range rhs {
		id, ok := g.ids[tok]
		if !ok {
			return 0, nil, fmt.Errorf("%q: %w", tok, ErrUnknownSymbol)
		}
		rule[i] = id
	}
	return sym, rule, nil
}

// TerminalID resolves a terminal token to its symbol id. It fails if the
// token was never registered or is registered as a non-terminal.
func (g *Grammar) TerminalID(token string) (Symbol, error) {
	id, ok := g.ids[token]
	if !ok {
		return 0, fmt.Errorf("%q: %w", token, ErrUnknownTerminal)
	}
	if !g.IsTerminal(id) {
		return 0, fmt.Errorf("%q is a non-terminal: %w", token, ErrUnknownTerminal)
	}
	return id, nil
}

// SymbolAfterDot returns the symbol right after the dot of pt, with
// ok=false if the dot is at the end of the rule, i.e. the rule is fully
// matched. It panics with ErrInvalidGrammarPoint for points referencing a
// nonexistent rule, as those cannot be produced by a correct engine.
func (g *Grammar) SymbolAfterDot(pt GrammarPoint) (sym Symbol, ok bool) {
	rule := g.ruleAt(pt)
	if pt.Dot >= len(rule) {
		return 0, false
	}
	return rule[pt.Dot], true
}

// ruleAt fetches the rule a grammar point refers to, checking the point's
// invariants.
func (g *Grammar) ruleAt(pt GrammarPoint) Rule {
	if int(pt.Sym) >= len(g.rules) || pt.Rule >= len(g.rules[pt.Sym]) {
		panic(fmt.Errorf("no rule #%d for symbol %d: %w", pt.Rule, pt.Sym, ErrInvalidGrammarPoint))
	}
	rule := g.rules[pt.Sym][pt.Rule]
	if pt.Dot > len(rule) {
		panic(fmt.Errorf("rule length is %d, dot at %d: %w", len(rule), pt.Dot, ErrInvalidGrammarPoint))
	}
	return rule
}

// Token returns the printable form of a symbol.
func (g *Grammar) Token(sym Symbol) string {
	if int(sym) >= len(g.tokens) {
		panic(fmt.Errorf("symbol %d not registered: %w", sym, ErrInvalidGrammarPoint))
	}
	return g.tokens[sym]
}

// IsTerminal returns true if sym is registered as a terminal.
func (g *Grammar) IsTerminal(sym Symbol) bool {
	_, ok := g.terminals[sym]
	return ok
}

// SymbolCount returns the number of registered symbols, including the two
// reserved ones.
func (g *Grammar) SymbolCount() int {
	return len(g.tokens)
}

// Alternatives returns the number of production alternatives registered
// for sym.
func (g *Grammar) Alternatives(sym Symbol) int {
	if int(sym) >= len(g.rules) {
		return 0
	}
	return len(g.rules[sym])
}

// Rule returns alternative i of sym. The returned slice is owned by the
// grammar and must not be modified.
func (g *Grammar) Rule(sym Symbol, i int) Rule {
	return g.ruleAt(GrammarPoint{Sym: sym, Rule: i})
}

// EachSymbol calls mapper for every registered symbol, in id order.
func (g *Grammar) EachSymbol(mapper func(Symbol)) {
	for id := range g.tokens {
		mapper(Symbol(id))
	}
}

// --- Fingerprint -----------------------------------------------------------

// grammarView is a hashable snapshot of a grammar's immutable content.
type grammarView struct {
	Name      string
	Tokens    []string
	Terminals []int
	Rules     [][][]int
}

// Fingerprint returns a stable hash over the symbols and rules of the
// grammar. Two grammars with the same registration history produce the same
// fingerprint.
func (g *Grammar) Fingerprint() string {
	view := grammarView{
		Name:   g.name,
		Tokens: g.tokens,
	}
	for id := range g.tokens {
		if g.IsTerminal(Symbol(id)) {
			view.Terminals = append(view.Terminals, id)
		}
	}
	view.Rules = make([][][]int, len(g.rules))
	for sym, alts := range g.rules {
		view.Rules[sym] = make([][]int, len(alts))
		for i, rule := range alts {
			rhs := make([]int, len(rule))
			for j, s := range rule {
				rhs[j] = int(s)
			}
			view.Rules[sym][i] = rhs
		}
	}
	return fmt.Sprintf("%x", structhash.Sha1(view, 1))
}
