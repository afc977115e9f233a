package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/npillmayer/chartly"
	"github.com/npillmayer/chartly/cfg"
	"github.com/npillmayer/chartly/deduction"
	"github.com/npillmayer/chartly/earley"
	"github.com/npillmayer/chartly/grammarfile"
	"github.com/npillmayer/chartly/starley"
)

var parseFlags = struct {
	sep    *string
	engine *string
	chart  *bool
	tree   *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "parse <grammar file> <input>",
		Short:   "Parse an input with an Earley chart parser",
		Example: `  chartly parse flights.g "book that flight" --sep " " --tree`,
		Args:    cobra.ExactArgs(2),
		RunE:    runParse,
	}
	parseFlags.sep = cmd.Flags().StringP("sep", "s", "",
		"token separator (default: one token per character)")
	parseFlags.engine = cmd.Flags().StringP("engine", "e", "naive",
		"chart engine [naive|star]")
	parseFlags.chart = cmd.Flags().Bool("chart", false, "dump the chart after parsing")
	parseFlags.tree = cmd.Flags().Bool("tree", false, "render the derivation tree")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	g, _, err := grammarfile.LoadFile(args[0])
	if err != nil {
		return err
	}
	tokens := chartly.Tokens(args[1], *parseFlags.sep)
	switch *parseFlags.engine {
	case "naive":
		return parseNaive(g, tokens)
	case "star":
		return parseStar(g, tokens)
	}
	return fmt.Errorf("unknown engine %q, want naive or star", *parseFlags.engine)
}

func parseNaive(g *cfg.Grammar, tokens []string) error {
	p := earley.NewParser(g)
	accepted, err := p.Parse(tokens)
	if err != nil {
		return err
	}
	if *parseFlags.chart {
		p.DumpChart()
	}
	if !accepted {
		pterm.Error.Println("input rejected")
		return nil
	}
	items := p.CompleteItems()
	pterm.Info.Println(fmt.Sprintf("input accepted, %d complete parse(s)", len(items)))
	if *parseFlags.tree {
		root := p.TraceDeduction(items[0])
		if root == nil {
			return fmt.Errorf("cannot reconstruct a derivation for %s", items[0].Format(g))
		}
		renderTree(g, root, tokens)
	}
	return nil
}

func parseStar(g *cfg.Grammar, tokens []string) error {
	if *parseFlags.tree {
		return fmt.Errorf("the star engine recognizes only; use --engine naive for trees")
	}
	p := starley.NewParser(g)
	accepted, err := p.Parse(tokens)
	if err != nil {
		return err
	}
	if *parseFlags.chart {
		p.DumpChart()
	}
	if !accepted {
		pterm.Error.Println("input rejected")
		return nil
	}
	pterm.Info.Println(fmt.Sprintf("input accepted, %d complete parse(s)", len(p.CompleteItems())))
	return nil
}

// renderTree prints a derivation tree, each node labelled with its dotted
// rule, its span, and the input excerpt it covers.
func renderTree(g *cfg.Grammar, root *deduction.Node, tokens []string) {
	ll := pterm.LeveledList{}
	root.Walk(func(n *deduction.Node, level int) {
		text := n.Span.Format(g)
		if !n.IsLeaf() {
			from, to := n.Span.Extent.From(), n.Span.Extent.To()
			text += " " + strings.Join(tokens[from:to], "")
		}
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: text})
	})
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
}
