package cfg

import (
	"fmt"
)

// GrammarBuilder is a fluent helper for constructing grammars in code.
// Clients add rules, consisting of non-terminal and terminal tokens;
// symbols are registered on first use. The first error encountered sticks
// and is reported by Grammar().
//
// Example:
//
//	b := cfg.NewGrammarBuilder("G")
//	b.LHS("<start>").N("A").N("A").End() // <start> → A A
//	b.LHS("A").N("A").T("a").End()       // A → A a
//	b.LHS("A").T("c").End()              // A → c
//	g, err := b.Grammar()
//
type GrammarBuilder struct {
	g   *Grammar
	err error
}

// NewGrammarBuilder creates a builder for a grammar with the given name.
func NewGrammarBuilder(name string) *GrammarBuilder {
	return &GrammarBuilder{g: NewGrammar(name)}
}

func (b *GrammarBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
		tracer().Errorf("grammar builder: %v", err)
	}
}

// declare registers a token on first use and checks kind consistency on
// repeated use.
func (b *GrammarBuilder) declare(token string, terminal bool) {
	if b.err != nil {
		return
	}
	if id, ok := b.g.ids[token]; ok {
		if b.g.IsTerminal(id) != terminal {
			b.fail(fmt.Errorf("token %q used both as terminal and non-terminal", token))
		}
		return
	}
	if err := b.g.AddSymbol(token, terminal); err != nil {
		b.fail(err)
	}
}

// Terminals registers tokens as terminal symbols.
func (b *GrammarBuilder) Terminals(tokens ...string) *GrammarBuilder {
	for _, tok := range tokens {
		b.declare(tok, true)
	}
	return b
}

// Nonterminals registers tokens as non-terminal symbols.
func (b *GrammarBuilder) Nonterminals(tokens ...string) *GrammarBuilder {
	for _, tok := range tokens {
		b.declare(tok, false)
	}
	return b
}

// LHS starts a new production rule for the non-terminal head.
func (b *GrammarBuilder) LHS(head string) *RuleBuilder {
	b.declare(head, false)
	return &RuleBuilder{b: b, head: head}
}

// Grammar returns the constructed grammar, or the first error encountered
// while building it.
func (b *GrammarBuilder) Grammar() (*Grammar, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.g, nil
}

// RuleBuilder collects the right-hand side of one production rule.
type RuleBuilder struct {
	b    *GrammarBuilder
	head string
	rhs  []string
}

// N appends a non-terminal to the right-hand side.
func (rb *RuleBuilder) N(token string) *RuleBuilder {
	rb.b.declare(token, false)
	rb.rhs = append(rb.rhs, token)
	return rb
}

// T appends a terminal to the right-hand side.
func (rb *RuleBuilder) T(token string) *RuleBuilder {
	rb.b.declare(token, true)
	rb.rhs = append(rb.rhs, token)
	return rb
}

// EOF appends the end-of-input sentinel terminal and ends the rule.
func (rb *RuleBuilder) EOF() *GrammarBuilder {
	rb.rhs = append(rb.rhs, EOFToken)
	return rb.End()
}

// End finishes the rule and registers it with the grammar.
func (rb *RuleBuilder) End() *GrammarBuilder {
	if rb.b.err != nil {
		return rb.b
	}
	if len(rb.rhs) == 0 {
		rb.b.fail(fmt.Errorf("empty right-hand side for %q", rb.head))
		return rb.b
	}
	if err := rb.b.g.AddRule(rb.head, rb.rhs); err != nil {
		rb.b.fail(err)
	}
	return rb.b
}
