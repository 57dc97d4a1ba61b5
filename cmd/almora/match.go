package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/almoralang/almora"
)

var (
	grammarName string
	bufferSize  int
)

var matchCmd = &cobra.Command{
	Use:   "match [file]",
	Short: "Match a grammar against a file or stdin",
	Long: `Match a builtin grammar against the given file, or against stdin when
no file is named.  With --buffer the input is streamed through a
fixed-size character window instead of being loaded whole.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVarP(&grammarName, "grammar", "g", "arithmetic", "Builtin grammar to match with")
	matchCmd.Flags().IntVarP(&bufferSize, "buffer", "b", 0, "Streaming window capacity in characters (0 loads the whole input)")
}

func runMatch(cmd *cobra.Command, args []string) error {
	grammar, err := builtinGrammar(grammarName)
	if err != nil {
		return err
	}

	var src io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		src = f
	}

	var reader almora.Reader
	if bufferSize > 0 {
		reader = almora.NewBufferedReader(src, bufferSize)
	} else {
		input, err := io.ReadAll(src)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		reader = almora.NewStringReader(string(input))
	}

	res, err := grammar.Test(almora.Beginning(), reader)
	if err != nil {
		return fmt.Errorf("matching: %w", err)
	}

	out := cmd.OutOrStdout()
	if res == nil {
		fmt.Fprintln(out, "no match")
		return nil
	}
	fmt.Fprintf(out, "matched %s (%d characters)\n", res.Span(), res.Len())
	return nil
}
