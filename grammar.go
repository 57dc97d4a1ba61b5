package almora

// Grammar owns the root rule of a fully assembled grammar, plus an
// optional ignored-pattern rule and the list of reserved words.  A
// grammar is built once through a GrammarBuilder and immutable
// afterwards: a single Grammar value is safe to use from many
// independent parses at once, as long as each parse brings its own
// reader.
type Grammar struct {
	// root holds the whole grammar; intermediate rules are only
	// reachable through it
	root *Rule

	// reservedWords are keywords excluded from identifiers
	reservedWords []string

	ignored *Rule
}

// Test matches the grammar's root rule against the reader at loc.
// Returns ErrNoGrammarDefined when no root rule was saved.
func (g *Grammar) Test(loc Location, r Reader) (*ParseInfo, error) {
	if g.root == nil {
		return nil, ErrNoGrammarDefined
	}
	return g.root.Test(loc, r)
}

// Ignored returns the whitespace/comment-skipping rule, if one was
// registered.
func (g *Grammar) Ignored() *Rule {
	return g.ignored
}

// ReservedWords returns the words registered through Reserved, in
// registration order.
func (g *Grammar) ReservedWords() []string {
	return g.reservedWords
}

// String returns the canonical rendering of the grammar: the root
// rule rendered as text.  The output is stable and suitable for
// golden-file comparisons.
func (g *Grammar) String() string {
	if g.root == nil {
		return "no grammar defined"
	}
	return g.root.String()
}

// GrammarBuilder assembles a Grammar.  Register reserved words and an
// ignored pattern as needed, then call SaveRoot to finalize; the
// returned grammar never changes afterwards.
type GrammarBuilder struct {
	grammar Grammar
}

func NewGrammarBuilder() *GrammarBuilder {
	return &GrammarBuilder{}
}

// Reserved records word as a reserved word and returns a literal rule
// matching it.
func (b *GrammarBuilder) Reserved(word string) *Rule {
	b.grammar.reservedWords = append(b.grammar.reservedWords, word)
	return Word(word)
}

// Ignore registers the rule used to skip whitespace and comments.
func (b *GrammarBuilder) Ignore(rule *Rule) {
	b.grammar.ignored = rule
}

// SaveRoot finalizes the grammar with its root rule.
func (b *GrammarBuilder) SaveRoot(root *Rule) *Grammar {
	b.grammar.root = root
	return &b.grammar
}
