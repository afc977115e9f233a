/*
Package starley implements an Earley recognizer with shared predictions.

The naive Earley engine (package earley) predicts a non-terminal by
introducing one item per production alternative, for every item that
predicts it. On grammars with many alternatives per non-terminal, or with
many items predicting the same non-terminal at one position, prediction
work is repeated needlessly.

This engine inserts a single star item per (non-terminal, position)
instead. A star item stands for "any alternative of symbol X"; its dot is
just a completion flag. Expanding the star into the per-alternative items
happens once, no matter how many items predicted the symbol, and completed
alternatives report back through the star rather than to each waiting item
individually.

Both engines produce the same grammar-point items in every chart state;
star items are an artifact of this engine only. This engine recognizes
only and does not record deduction backpointers; use the naive engine if
a derivation tree is needed.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package starley

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chartly.chart'.
func tracer() tracing.Trace {
	return tracing.Select("chartly.chart")
}
