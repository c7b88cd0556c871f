package storage

import (
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
)

// BadgerStorage implements Storage on top of an in-memory badger
// instance. In-memory mode never touches disk, so the twelve indices it
// backs never outlive the process; that is by design, not a limitation
// of this adapter.
type BadgerStorage struct {
	db *badger.DB
}

// NewBadgerStorage opens a fresh in-memory badger database.
func NewBadgerStorage() (*BadgerStorage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("storage: open badger: %w", err)
	}
	return &BadgerStorage{db: db}, nil
}

// Begin starts a new transaction.
func (s *BadgerStorage) Begin(writable bool) (Transaction, error) {
	return &badgerTxn{txn: s.db.NewTransaction(writable), writable: writable}, nil
}

// Close releases the database, discarding all indices.
func (s *BadgerStorage) Close() error {
	return s.db.Close()
}

type badgerTxn struct {
	txn      *badger.Txn
	writable bool
}

func (t *badgerTxn) Get(table Table, key []byte) ([]byte, error) {
	item, err := t.txn.Get(PrefixKey(table, key))
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var value []byte
	err = item.Value(func(val []byte) error {
		value = append([]byte{}, val...)
		return nil
	})
	return value, err
}

func (t *badgerTxn) Set(table Table, key, value []byte) error {
	if !t.writable {
		return ErrTransactionRO
	}
	return t.txn.Set(PrefixKey(table, key), value)
}

func (t *badgerTxn) Delete(table Table, key []byte) error {
	if !t.writable {
		return ErrTransactionRO
	}
	return t.txn.Delete(PrefixKey(table, key))
}

func (t *badgerTxn) Scan(table Table, start []byte) (Iterator, error) {
	prefix := TablePrefix(table)

	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	it := t.txn.NewIterator(opts)

	seekKey := prefix
	if start != nil {
		seekKey = PrefixKey(table, start)
	}

	return &badgerIter{it: it, prefix: prefix, seekKey: seekKey}, nil
}

func (t *badgerTxn) Commit() error {
	return t.txn.Commit()
}

func (t *badgerTxn) Rollback() error {
	t.txn.Discard()
	return nil
}

type badgerIter struct {
	it      *badger.Iterator
	prefix  []byte
	seekKey []byte
	started bool
	valid   bool
}

func (i *badgerIter) Next() bool {
	if !i.started {
		i.it.Seek(i.seekKey)
		i.started = true
	} else {
		i.it.Next()
	}
	i.valid = i.it.Valid()
	return i.valid
}

func (i *badgerIter) Key() []byte {
	if !i.valid {
		return nil
	}
	key := i.it.Item().KeyCopy(nil)
	return key[len(i.prefix):]
}

func (i *badgerIter) Close() error {
	i.it.Close()
	return nil
}
