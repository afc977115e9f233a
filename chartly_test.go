package chartly

import (
	"testing"
)

func TestSpan(t *testing.T) {
	s := MakeSpan(2, 5)
	if s.From() != 2 || s.To() != 5 || s.Len() != 3 {
		t.Errorf("unexpected span %v", s)
	}
	if s.String() != "[2, 5)" {
		t.Errorf("unexpected span formatting %q", s.String())
	}
	if s.IsNull() || !(Span{}).IsNull() {
		t.Error("null span misdetected")
	}
}

func TestTokensPerRune(t *testing.T) {
	toks := Tokens("cac", "")
	if len(toks) != 3 || toks[0] != "c" || toks[1] != "a" || toks[2] != "c" {
		t.Errorf("unexpected tokens %v", toks)
	}
	umlauts := Tokens("äöü", "")
	if len(umlauts) != 3 || umlauts[1] != "ö" {
		t.Errorf("expected rune-wise splitting, got %v", umlauts)
	}
}

func TestTokensWithSeparator(t *testing.T) {
	toks := Tokens("book that flight", " ")
	if len(toks) != 3 || toks[0] != "book" || toks[2] != "flight" {
		t.Errorf("unexpected tokens %v", toks)
	}
}
