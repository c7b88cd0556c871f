// Package storage defines the minimal ordered key-value abstraction the
// quad store's indices are built on, and a badger-backed implementation
// of it.
package storage

import "errors"

var (
	// ErrNotFound is returned by Transaction.Get when the key is absent.
	ErrNotFound = errors.New("storage: key not found")
	// ErrTransactionRO is returned by Set/Delete on a read-only transaction.
	ErrTransactionRO = errors.New("storage: transaction is read-only")
)

// Table namespaces keys within a single underlying database by a
// one-byte prefix. The quad store uses one Table per materialized
// ordering (at most twelve), so a lower-bound Scan never has to cross
// orderings.
type Table byte

// Storage is the underlying ordered key-value engine. One Storage backs
// every materialized index of one Model; its Tables are keyed by
// ordering alone, not by Model.
type Storage interface {
	// Begin starts a new transaction. Only one writable transaction may
	// be open at a time; this mirrors the store's single-writer model.
	Begin(writable bool) (Transaction, error)

	// Close releases all resources held by the storage engine.
	Close() error
}

// Transaction reads and writes one table-namespaced key range at a time.
type Transaction interface {
	Get(table Table, key []byte) ([]byte, error)
	Set(table Table, key, value []byte) error
	Delete(table Table, key []byte) error

	// Scan returns an Iterator over keys >= start (or the whole table if
	// start is nil) within the given table, in ascending key order.
	Scan(table Table, start []byte) (Iterator, error)

	Commit() error
	Rollback() error
}

// Iterator walks a key range produced by Transaction.Scan.
type Iterator interface {
	// Next advances to the next item, returning false when exhausted.
	Next() bool
	// Key returns the current key, with the table prefix stripped.
	Key() []byte
	Close() error
}

// TablePrefix returns the single-byte namespace prefix for table.
func TablePrefix(table Table) []byte {
	return []byte{byte(table)}
}

// PrefixKey prepends table's namespace prefix to key.
func PrefixKey(table Table, key []byte) []byte {
	out := make([]byte, 0, 1+len(key))
	out = append(out, byte(table))
	out = append(out, key...)
	return out
}
