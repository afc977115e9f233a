/*
Package earley implements an Earley chart parser.

The parser is fed terminal tokens one at a time. Every feed closes the
current chart state under the classic predict/scan/complete operations,
then appends one new state holding the items the scan produced. Feeding the
end-of-input sentinel "#eof" flushes pending predictions and completions
into the last state without appending a new one.

While completing items the parser records deduction backpointers, from
which a concrete derivation tree can be reconstructed after an accepting
parse (see TraceDeduction).

This is the naive engine: predicting a non-terminal introduces one item per
production alternative, for every item that predicts it. Package starley
implements the same recognition semantics with shared predictions.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package earley

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chartly.chart'.
func tracer() tracing.Trace {
	return tracing.Select("chartly.chart")
}
