package main

import (
	"fmt"
	"sort"

	"github.com/almoralang/almora"
)

// The command line ships a couple of ready-made grammars; library users
// assemble their own through the builder API.
var builtinGrammars = map[string]func() *almora.Grammar{
	"arithmetic": arithmeticGrammar,
	"comments":   commentsGrammar,
}

func builtinGrammar(name string) (*almora.Grammar, error) {
	build, ok := builtinGrammars[name]
	if !ok {
		return nil, fmt.Errorf("unknown grammar %q, available: %v", name, grammarNames())
	}
	return build(), nil
}

func grammarNames() []string {
	names := make([]string, 0, len(builtinGrammars))
	for name := range builtinGrammars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// integer followed by any number of operator-integer pairs, with token
// boundaries so streamed input can be evicted as the parse advances
func arithmeticGrammar() *almora.Grammar {
	integer := almora.Token(almora.CharRangeAtLeast('0', '9', 1))
	operator := almora.Token(almora.Choice(
		almora.Word("+"),
		almora.Word("-"),
		almora.Word("*"),
		almora.Word("/"),
		almora.Word("%"),
	))
	root := almora.Seq(integer, almora.Seq(operator, integer).AtLeast(0))
	return almora.NewGrammarBuilder().SaveRoot(root)
}

// a single line or block comment
func commentsGrammar() *almora.Grammar {
	lineComment := almora.Seq(
		almora.Word("//"),
		almora.Until(almora.Word("\n"), 0),
		almora.Word("\n"),
	)
	blockComment := almora.Seq(
		almora.Word("/*"),
		almora.Until(almora.Word("*/"), 0),
		almora.Word("*/"),
	)
	root := almora.Choice(lineComment, blockComment)
	return almora.NewGrammarBuilder().SaveRoot(root)
}
