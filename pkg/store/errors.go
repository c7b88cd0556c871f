package store

import "errors"

var (
	// ErrNoCurrentQuad is returned by Model.Erase when the iterator has
	// not yet produced a quad (Next was never called, or already
	// exhausted) to erase.
	ErrNoCurrentQuad = errors.New("store: iterator has no current quad")

	// ErrIteratorClosed is returned by operations attempted on a closed
	// Iterator.
	ErrIteratorClosed = errors.New("store: iterator is closed")
)
