/*
Package deduction contains the value types for recording why a parser
believed in a partial parse.

A deduction span identifies a parse event: a dotted rule, or a plain
terminal, matched over a half-open range of input positions. During a parse
the engine records, for every span completed for the first time, one other
span whose completion justifies it, a backpointer. Walking the
backpointers from a completed top-level span reconstructs one concrete
derivation tree, even when the grammar is ambiguous.

Only a single justification is kept per span; extracting all derivations of
an ambiguous parse is out of scope.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package deduction
