package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/npillmayer/chartly"
	"github.com/npillmayer/chartly/cfg"
	"github.com/npillmayer/chartly/earley"
	"github.com/npillmayer/chartly/grammarfile"
)

var replFlags = struct {
	sep  *string
	tree *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "repl <grammar file>",
		Short:   "Parse inputs interactively",
		Example: `  chartly repl flights.g --sep " "`,
		Args:    cobra.ExactArgs(1),
		RunE:    runRepl,
	}
	replFlags.sep = cmd.Flags().StringP("sep", "s", "",
		"token separator (default: one token per character)")
	replFlags.tree = cmd.Flags().Bool("tree", false,
		"render a derivation tree for accepted inputs")
	rootCmd.AddCommand(cmd)
}

// runRepl reads one input per line and parses each with a fresh parser over
// the loaded grammar. Quit with <ctrl>D.
func runRepl(cmd *cobra.Command, args []string) error {
	g, _, err := grammarfile.LoadFile(args[0])
	if err != nil {
		return err
	}
	pterm.Info.Println("grammar " + g.Name() + " loaded, quit with <ctrl>D")
	repl, err := readline.New("chartly> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		parseLine(g, line)
	}
	pterm.Println("Good bye!")
	return nil
}

func parseLine(g *cfg.Grammar, line string) {
	tokens := chartly.Tokens(line, *replFlags.sep)
	p := earley.NewParser(g)
	accepted, err := p.Parse(tokens)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	if !accepted {
		pterm.Error.Println("input rejected")
		return
	}
	items := p.CompleteItems()
	pterm.Info.Println(fmt.Sprintf("input accepted, %d complete parse(s)", len(items)))
	if *replFlags.tree {
		if root := p.TraceDeduction(items[0]); root != nil {
			renderTree(g, root, tokens)
		}
	}
}
