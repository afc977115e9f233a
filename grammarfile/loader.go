package grammarfile

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strconv"
	"unicode"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/npillmayer/chartly/cfg"
)

// Rule is one production line as read from a grammar file, in printable
// form, with its weight. Clients who care about weights pick them up here;
// the cfg.Grammar built from the file does not carry them.
type Rule struct {
	Head   string
	RHS    []string
	Weight float64
}

// ErrSyntax flags a grammar file line the loader cannot make sense of.
// Returned errors wrap it together with the line number.
var ErrSyntax = errors.New("malformed grammar rule")

// Token classes produced by the lexer.
const (
	tokNewline int = iota
	tokArrow
	tokColon
	tokNumber
	tokSymbol
)

// lexer is the compiled DFA for the rule-file format, built once.
// Patterns earlier in the list win length ties, so the arrow and number
// patterns shadow the catch-all symbol pattern.
var lexer *lexmachine.Lexer

func init() {
	lexer = lexmachine.NewLexer()
	lexer.Add([]byte(`#[^\n]*`), skip)
	lexer.Add([]byte("[ \t\r]+"), skip)
	lexer.Add([]byte("\n"), makeToken(tokNewline))
	lexer.Add([]byte(`->`), makeToken(tokArrow))
	lexer.Add([]byte("→"), makeToken(tokArrow))
	lexer.Add([]byte(`:`), makeToken(tokColon))
	lexer.Add([]byte(`[0-9]+(\.[0-9]+)?`), makeToken(tokNumber))
	lexer.Add([]byte("[^ \t\r\n:#]+"), makeToken(tokSymbol))
	if err := lexer.Compile(); err != nil {
		panic(fmt.Errorf("error compiling grammar-file DFA: %v", err))
	}
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// LoadFile reads a grammar file from disk. The file's base name becomes the
// grammar's name.
func LoadFile(path string) (*cfg.Grammar, []Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return Load(f, path)
}

// Load reads a grammar in rule-file format from r. name becomes the
// grammar's name.
func Load(r io.Reader, name string) (*cfg.Grammar, []Rule, error) {
	input, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}
	return Parse(name, string(input))
}

// Parse builds a grammar from rule-file text. It returns the grammar
// together with the rules in file order, weights included.
//
// Registration is two-phase: first every token of every line is classified
// and registered as a symbol, then the rules are added. A rule may
// therefore reference a symbol whose defining line comes later in the file.
func Parse(name, input string) (*cfg.Grammar, []Rule, error) {
	parsed, err := scanRules(input)
	if err != nil {
		return nil, nil, err
	}
	g := cfg.NewGrammar(name)
	if err := registerSymbols(g, parsed); err != nil {
		return nil, nil, err
	}
	rules := make([]Rule, 0, parsed.Size())
	var failed error
	parsed.Each(func(_ int, el interface{}) {
		if failed != nil {
			return
		}
		line := el.(ruleLine)
		if err := g.AddRule(line.rule.Head, line.rule.RHS); err != nil {
			failed = fmt.Errorf("line %d: %w", line.line, err)
			return
		}
		rules = append(rules, line.rule)
	})
	if failed != nil {
		return nil, nil, failed
	}
	tracer().Infof("grammar %q: loaded %d rules", name, len(rules))
	return g, rules, nil
}

// ruleLine is a parsed rule together with the line it came from, for error
// reporting during registration.
type ruleLine struct {
	rule Rule
	line int
}

// scanRules tokenizes the input and groups the tokens into rule lines.
func scanRules(input string) (*arraylist.List, error) {
	s, err := lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	parsed := arraylist.New()
	line := make([]*lexmachine.Token, 0, 8)
	flush := func() error {
		if len(line) == 0 {
			return nil
		}
		rl, err := parseLine(line)
		if err != nil {
			return err
		}
		parsed.Add(rl)
		line = line[:0]
		return nil
	}
	for tok, err, eof := s.Next(); !eof; tok, err, eof = s.Next() {
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				return nil, fmt.Errorf("line %d: unexpected input: %w", ui.StartLine, ErrSyntax)
			}
			return nil, err
		}
		token := tok.(*lexmachine.Token)
		if token.Type == tokNewline {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		line = append(line, token)
	}
	if err := flush(); err != nil { // input need not end in a newline
		return nil, err
	}
	return parsed, nil
}

// parseLine turns the tokens of one line into a rule. The expected shape is
//
//	SYMBOL arrow (SYMBOL|NUMBER)+ [ colon NUMBER ]
//
func parseLine(toks []*lexmachine.Token) (ruleLine, error) {
	lineno := toks[0].StartLine
	fail := func(format string, args ...interface{}) (ruleLine, error) {
		msg := fmt.Sprintf(format, args...)
		return ruleLine{}, fmt.Errorf("line %d: %s: %w", lineno, msg, ErrSyntax)
	}
	if len(toks) < 3 {
		return fail("a rule needs a head, an arrow and a right-hand side")
	}
	if toks[0].Type != tokSymbol {
		return fail("rule head expected, got %q", toks[0].Lexeme)
	}
	if toks[1].Type != tokArrow {
		return fail("'→' expected, got %q", toks[1].Lexeme)
	}
	rule := Rule{Head: string(toks[0].Lexeme), Weight: 1}
	i := 2
	for ; i < len(toks); i++ {
		if toks[i].Type == tokColon {
			break
		}
		if toks[i].Type != tokSymbol && toks[i].Type != tokNumber {
			return fail("symbol expected, got %q", toks[i].Lexeme)
		}
		rule.RHS = append(rule.RHS, string(toks[i].Lexeme))
	}
	if len(rule.RHS) == 0 {
		return fail("empty right-hand side")
	}
	if i < len(toks) { // weight clause
		if i != len(toks)-2 || toks[i+1].Type != tokNumber {
			return fail("weight expected after ':'")
		}
		w, err := strconv.ParseFloat(string(toks[i+1].Lexeme), 64)
		if err != nil {
			return fail("cannot read weight %q", toks[i+1].Lexeme)
		}
		rule.Weight = w
	}
	return ruleLine{rule: rule, line: lineno}, nil
}

// registerSymbols walks all rule lines and registers every distinct token,
// in order of first appearance.
func registerSymbols(g *cfg.Grammar, parsed *arraylist.List) error {
	seen := map[string]bool{cfg.StartToken: true, cfg.EOFToken: true}
	var failed error
	add := func(tok string, line int) {
		if failed != nil || seen[tok] {
			return
		}
		seen[tok] = true
		if err := g.AddSymbol(tok, isTerminal(tok)); err != nil {
			failed = fmt.Errorf("line %d: %w", line, err)
		}
	}
	parsed.Each(func(_ int, el interface{}) {
		rl := el.(ruleLine)
		add(rl.rule.Head, rl.line)
		for _, tok := range rl.rule.RHS {
			add(tok, rl.line)
		}
	})
	return failed
}

// isTerminal classifies a token: a token with at least one letter, all of
// its letters uppercase, is a non-terminal; everything else is a terminal.
func isTerminal(tok string) bool {
	letters := false
	for _, r := range tok {
		if !unicode.IsLetter(r) {
			continue
		}
		letters = true
		if !unicode.IsUpper(r) {
			return true
		}
	}
	return !letters
}
