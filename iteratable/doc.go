/*
Package iteratable implements an iteratable set container.

Set is a special-purpose set type, suitable mainly for implementing
algorithms around parsers, e.g. the closure computations of chart parsers.
These kinds of algorithms are often more straightforward to describe as set
constructions and operations.

Sets remember insertion order, and iteration visits members in that order.
This is load-bearing for the parsers in this module: processing items in a
stable order makes the discovery order of deductions, and therefore the
derivation returned for ambiguous grammars, deterministic.

Elements may be added while an iteration is in progress; the iteration will
visit them. Unusually, the binary set operations are destructive: they
modify the receiver.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package iteratable
