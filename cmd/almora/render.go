package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render [grammar]",
	Short: "Print the canonical text of a builtin grammar",
	Long:  "Render a builtin grammar as text, or list the builtin grammars when none is named",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		for _, name := range grammarNames() {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	grammar, err := builtinGrammar(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(out, grammar)
	return nil
}
