package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	trace *string
}{}

var rootCmd = &cobra.Command{
	Use:   "chartly",
	Short: "Parse inputs with Earley chart parsers",
	Long: `chartly reads a context-free grammar from a rule file and parses
inputs with an Earley chart parser. It can show the grammar, parse single
inputs, render derivation trees, and run an interactive parsing loop.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := tracing.TraceLevelFromString(*rootFlags.trace)
		tracing.Select("chartly.cfg").SetTraceLevel(level)
		tracing.Select("chartly.chart").SetTraceLevel(level)
	},
}

func init() {
	rootFlags.trace = rootCmd.PersistentFlags().StringP("trace", "t", "Info",
		"trace level [Debug|Info|Error]")
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
