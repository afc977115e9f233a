/*
Package cfg holds the representation of context-free grammars (CFGs).

A grammar owns an integer-coded alphabet: every terminal and non-terminal
token is registered once and receives a dense integer id (a Symbol). All the
hot parsing loops operate on Symbols only; the bijective token table is
consulted at grammar-build time and when formatting output for humans.

Production rules are kept per non-terminal as an ordered list of
alternative right-hand sides. The ordering is significant, since it assigns
the rule indices used by grammar points.

Two symbols are reserved on construction: the start non-terminal "<start>"
and the end-of-input sentinel terminal "#eof".

Grammars are built once, via registration calls or a GrammarBuilder, and
are immutable thereafter. An immutable grammar may be shared read-only
between concurrently running parsers.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package cfg

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chartly.cfg'.
func tracer() tracing.Trace {
	return tracing.Select("chartly.cfg")
}
