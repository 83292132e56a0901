package searcher

import "github.com/pkg/errors"

var (
	// ErrActionNotFound is returned when committing an action the root has no
	// expanded child for
	ErrActionNotFound = errors.New("action not found among root children")
	// ErrNoLegalMoves is returned when a recommendation is asked of a root
	// without children
	ErrNoLegalMoves = errors.New("root has no expanded children")
)
