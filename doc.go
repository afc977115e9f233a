/*
Package chartly is an Earley chart-parsing toolbox.

Chartly recognizes token strings against arbitrary context-free grammars
and reconstructs a concrete derivation tree for accepted inputs, even when
the grammar is ambiguous. Package structure is as follows:

■ cfg: Package cfg holds the representation of context-free grammars:
an integer-coded symbol table, production rules, and dotted-rule positions
(grammar points and star points).

■ earley: Package earley implements the classic Earley recognizer, which
additionally records deduction backpointers and derives parse trees from
them.

■ starley: Package starley implements an optimized Earley recognizer which
shares nonterminal predictions across alternative productions ("star
items").

■ deduction: Package deduction contains the value types for deduction
spans and derivation trees.

■ grammarfile: Package grammarfile loads grammars from a simple weighted
rule text format.

■ iteratable: Package iteratable provides the insertion-ordered item sets
the engines build their charts from.

The base package contains data types which are used throughout all the
other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package chartly
