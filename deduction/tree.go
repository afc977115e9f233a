package deduction

import (
	"strings"

	"github.com/npillmayer/chartly/cfg"
)

// Node is one node of a reconstructed derivation tree: a deduction span
// plus its ordered sub-derivations. Leaves are terminal spans of width 1.
// Trees are built lazily from a deduction map; they hold no reference back
// into the parser that produced them.
type Node struct {
	Span     Span
	Children []*Node
}

// IsLeaf returns true for terminal nodes.
func (n *Node) IsLeaf() bool {
	_, ok := n.Span.Label.(TokenLabel)
	return ok
}

// FormatTree renders the derivation tree as indented lines, one node per
// line. If tokens is non-nil it must be the parsed input, and every line is
// suffixed with the input excerpt the node's span covers.
func (n *Node) FormatTree(g *cfg.Grammar, tokens []string) []string {
	return n.formatTree(g, tokens, 0, nil)
}

func (n *Node) formatTree(g *cfg.Grammar, tokens []string, depth int, lines []string) []string {
	line := strings.Repeat("\t", depth) + n.Span.Format(g)
	if tokens != nil {
		from, to := n.Span.Extent.From(), n.Span.Extent.To()
		line += " " + strings.Join(tokens[from:to], "")
	}
	lines = append(lines, line)
	for _, c := range n.Children {
		lines = c.formatTree(g, tokens, depth+1, lines)
	}
	return lines
}

// Walk traverses the tree depth-first, calling visit with every node and
// its nesting level.
func (n *Node) Walk(visit func(node *Node, level int)) {
	n.walk(visit, 0)
}

func (n *Node) walk(visit func(*Node, int), level int) {
	visit(n, level)
	for _, c := range n.Children {
		c.walk(visit, level+1)
	}
}
