package store

import (
	"bytes"

	"github.com/aleksaelezovic/quadstore/internal/storage"
	"github.com/aleksaelezovic/quadstore/pkg/rdf"
)

// Iterator walks the quads a Model selected for one Pattern, under
// exactly one of the five search modes. It holds its own read
// transaction open until Close is called; mutating the Model through
// any means other than this Iterator's own Erase invalidates it.
type Iterator struct {
	model   *Model
	world   *rdf.World
	txn     storage.Transaction
	raw     storage.Iterator
	order   Ordering
	mode    SearchMode
	pattern Pattern

	prefix      int
	prefixBytes []byte

	skipGraphs bool
	prevSig    []byte

	cur    Quad
	curKey []byte
	done   bool
	closed bool
}

func newIterator(model *Model, txn storage.Transaction, order Ordering, mode SearchMode, prefix int, pattern Pattern, skipGraphs bool) (*Iterator, error) {
	permuted := permute(pattern.tuple(), order)
	full := encodeTuple(permuted)

	var seek []byte
	if prefix > 0 {
		seek = full[:prefix*17]
	}

	raw, err := txn.Scan(orderingTable(order), seek)
	if err != nil {
		txn.Rollback()
		return nil, err
	}

	it := &Iterator{
		model:      model,
		world:      model.world,
		txn:        txn,
		raw:        raw,
		order:      order,
		mode:       mode,
		pattern:    pattern,
		prefix:     prefix,
		skipGraphs: skipGraphs,
	}
	if prefix > 0 {
		it.prefixBytes = full[:prefix*17]
	}
	return it, nil
}

// Next advances to the next matching quad, returning false once the
// iterator is exhausted (or was already closed).
func (it *Iterator) Next() bool {
	if it.closed || it.done {
		it.curKey = nil
		return false
	}

	for {
		if !it.raw.Next() {
			it.done = true
			it.curKey = nil
			return false
		}
		key := it.raw.Key()

		if it.prefix > 0 && !bytes.Equal(key[:it.prefix*17], it.prefixBytes) {
			it.done = true
			it.curKey = nil
			return false
		}

		stored := decodeTuple(it.world, key)
		q := quadFromTuple(unpermute(stored, it.order))

		if (it.mode == ModeFilterRange || it.mode == ModeFilterAll) && !Match(it.pattern, q) {
			continue
		}

		if it.skipGraphs {
			sig := append([]byte{}, key[:3*17]...)
			if it.prevSig != nil && bytes.Equal(sig, it.prevSig) {
				continue
			}
			it.prevSig = sig
		}

		it.cur = q
		it.curKey = append([]byte{}, key...)
		if it.mode == ModeSingle {
			it.done = true
		}
		return true
	}
}

// Quad returns the quad Next most recently produced.
func (it *Iterator) Quad() Quad {
	return it.cur
}

// Model returns the Model this Iterator was opened against.
func (it *Iterator) Model() *Model {
	return it.model
}

// Close releases the iterator's underlying transaction. Safe to call
// more than once.
func (it *Iterator) Close() error {
	if it.closed {
		return nil
	}
	it.closed = true
	it.raw.Close()
	return it.txn.Rollback()
}

func orderingTable(o Ordering) storage.Table {
	return storage.Table(o)
}
