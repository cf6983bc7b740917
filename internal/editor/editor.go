// Package editor implements the host collaborators the insertdatetime
// command talks to: a selection panel that picks one of several candidate
// strings, and a text inserter that places the chosen string at the active
// insertion point(s).
package editor

import (
	"context"
	"errors"
)

// Canceled is the index reported by Select when the user dismisses the
// panel without choosing an entry.
const Canceled = -1

// Selection and insertion failures. Invalid specifiers never surface here;
// they are absorbed while building the candidate list.
var (
	ErrSelection = errors.New("selection error")
	ErrInsertion = errors.New("insertion error")
)

// Selector presents an ordered list of entries and reports the chosen
// index, or Canceled when the user backs out. The call is synchronous: it
// returns once the user has decided.
type Selector interface {
	Select(ctx context.Context, entries []string) (int, error)
}

// Inserter places text at every active insertion point in a single call.
type Inserter interface {
	Insert(text string) error
}
