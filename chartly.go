package chartly

import (
	"fmt"
	"strings"
)

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input tokens. For every
// terminal and non-terminal matched during a parse, the chart tracks which
// input positions the match covers. A span denotes a start position and the
// position just behind the end, i.e. a half-open interval [from,to).
type Span [2]uint64 // (x…y)

// MakeSpan creates a span [from,to).
func MakeSpan(from, to uint64) Span {
	return Span{from, to}
}

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) String() string {
	return fmt.Sprintf("[%d, %d)", s[0], s[1])
}

// --- Input tokens -----------------------------------------------------

// Tokens splits an input string into terminal tokens, ready to be fed to a
// parser one by one. If sep is empty, every UTF-8 rune of the input becomes
// a token of its own; otherwise the input is split at sep.
//
// Inputs over multi-character terminals would typically use a blank
// separator:
//
//	chartly.Tokens("book that flight", " ")
//
func Tokens(input string, sep string) []string {
	if sep == "" {
		toks := make([]string, 0, len(input))
		for _, r := range input {
			toks = append(toks, string(r))
		}
		return toks
	}
	return strings.Split(input, sep)
}
