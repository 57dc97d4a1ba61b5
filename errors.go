package almora

import (
	"errors"
	"fmt"
)

// ErrNoGrammarDefined is returned when a Grammar is tested before a
// root rule was saved into it.  This is a programmer error: it is
// always surfaced and never retried.
var ErrNoGrammarDefined = errors.New("no grammar defined: save a root rule before testing")

// NoLookBehindError is returned when a matcher queries a position
// that sits behind the reader's cursor and was therefore already
// discarded from the retained window.
type NoLookBehindError struct {
	Index int
}

func (e *NoLookBehindError) Error() string {
	return fmt.Sprintf("invalid search index %d: unable to look behind the cursor", e.Index)
}

// LookAheadOverflowError is returned when satisfying a query would
// require retaining more elements ahead of the cursor than the
// reader's buffer capacity allows.  Recovering means choosing a
// larger capacity or restructuring the grammar to bound its
// lookahead; the engine never retries on its own.
type LookAheadOverflowError struct {
	Index int
}

func (e *LookAheadOverflowError) Error() string {
	return fmt.Sprintf("could not look ahead element at index %d: buffer capacity is too small", e.Index)
}
