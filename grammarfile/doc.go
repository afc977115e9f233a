/*
Package grammarfile loads grammars from a simple weighted-rule text format.

The format is line oriented, one production rule per line:

	HEAD → sym1 sym2 … : weight

'#' starts a comment running to the end of the line, blank lines are
ignored, and the ASCII arrow "->" is accepted in place of "→". Tokens are
whitespace-separated. A token whose letters are all uppercase is treated as
a non-terminal; all-lowercase and non-alphabetic tokens are terminals. The
reserved start symbol "<start>" counts as a non-terminal.

The weight clause is optional and defaults to 1. Weights are parsed and
returned alongside the grammar, but the parsing core never consults them;
they do not select a preferred parse.

Rules may reference symbols before their defining line; registration with
the grammar is two-phase. Malformed lines, empty symbols and terminal rule
heads surface as errors carrying the offending line number, they are never
silently dropped.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package grammarfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chartly.cfg'.
func tracer() tracing.Trace {
	return tracing.Select("chartly.cfg")
}
