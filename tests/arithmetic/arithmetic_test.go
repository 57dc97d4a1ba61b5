package arithmetic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almoralang/almora"
)

// integer followed by any number of operator-integer pairs
func grammar() *almora.Grammar {
	integer := almora.CharRangeAtLeast('0', '9', 1)
	operator := almora.Choice(
		almora.Word("+"),
		almora.Word("-"),
		almora.Word("*"),
		almora.Word("/"),
		almora.Word("%"),
	)
	root := almora.Seq(integer, almora.Seq(operator, integer).AtLeast(0))
	return almora.NewGrammarBuilder().SaveRoot(root)
}

// Same grammar with token boundaries, so a streaming reader can evict
// matched input as the parse moves forward.
func tokenizedGrammar() *almora.Grammar {
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

func TestExpressions(t *testing.T) {
	g := grammar()

	tests := []struct {
		input  string
		length int
	}{
		{input: "7", length: 1},
		{input: "22+13", length: 5},
		{input: "1*2-30/4", length: 8},
		{input: "9%", length: 1},       // dangling operator is left behind
		{input: "5+6 tail", length: 3}, // matching stops where the grammar does
		{input: "100", length: 3},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res, err := g.Test(almora.Beginning(), almora.NewStringReader(tt.input))
			require.NoError(t, err)
			require.NotNil(t, res)
			assert.Equal(t, tt.length, res.Len())
		})
	}

	t.Run("leading operator does not match", func(t *testing.T) {
		res, err := g.Test(almora.Beginning(), almora.NewStringReader("+22"))
		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("span covers the matched expression", func(t *testing.T) {
		res, err := g.Test(almora.Beginning(), almora.NewStringReader("22+13"))
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, almora.Beginning(), res.Span().Start)
		assert.Equal(t, almora.Location{Line: 1, Column: 6, Index: 5}, res.Span().End)
	})
}

func TestStreamedExpression(t *testing.T) {
	t.Run("short input fits the window", func(t *testing.T) {
		r := almora.NewBufferedReader(strings.NewReader("22+13"), 10)

		res, err := grammar().Test(almora.Beginning(), r)
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, 5, res.Len())
	})

	t.Run("token boundaries keep a long input within a small window", func(t *testing.T) {
		input := "12+34+56+78+90"
		r := almora.NewBufferedReader(strings.NewReader(input), 8)

		res, err := tokenizedGrammar().Test(almora.Beginning(), r)
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, len(input), res.Len())
	})

	t.Run("without token boundaries the window overflows", func(t *testing.T) {
		input := "12+34+56+78+90"
		r := almora.NewBufferedReader(strings.NewReader(input), 8)

		res, err := grammar().Test(almora.Beginning(), r)
		assert.Nil(t, res)
		var overflow *almora.LookAheadOverflowError
		assert.ErrorAs(t, err, &overflow)
	})
}
