package main

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/npillmayer/chartly/grammarfile"
)

func init() {
	cmd := &cobra.Command{
		Use:     "show <grammar file>",
		Short:   "Show the symbols and rules of a grammar",
		Example: `  chartly show flights.g`,
		Args:    cobra.ExactArgs(1),
		RunE:    runShow,
	}
	rootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	g, rules, err := grammarfile.LoadFile(args[0])
	if err != nil {
		return err
	}
	pterm.Info.Println("grammar " + g.Name())
	pterm.Println("symbols: " + strings.Join(g.FormatAllSymbols(), " "))
	for _, line := range g.FormatAllRules() {
		pterm.Println(line)
	}
	weighted := false
	for _, r := range rules {
		if r.Weight != 1 {
			weighted = true
			break
		}
	}
	if weighted {
		pterm.Info.Println("grammar carries rule weights; parsing ignores them")
	}
	pterm.Info.Println("fingerprint: " + g.Fingerprint())
	return nil
}
