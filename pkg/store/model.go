// Package store implements the quad set: up to twelve redundant sorted
// orderings of the same (subject, predicate, object, graph) quads,
// pattern-driven index selection, and an iterator engine over the
// chosen index.
package store

import (
	"github.com/aleksaelezovic/quadstore/internal/storage"
	"github.com/aleksaelezovic/quadstore/pkg/rdf"
)

// Model owns a set of quads over a shared World, indexed under whichever
// orderings it was constructed with (SPO is always included, even if not
// requested, since duplicate detection and the default full scan both
// depend on it being present).
type Model struct {
	world        *rdf.World
	storage      storage.Storage
	materialized [numOrderings]bool
	numQuads     int
}

// NewModel creates a Model backed by s, materializing DefaultOrder plus
// whichever additional orderings are named (each normalized to its
// plain form; a caller may still pass a graph-prefixed Ordering
// directly). Passing no orderings yields a Model that still answers
// every pattern correctly, just more slowly (bestIndex degrades to
// ModeFilterAll on DefaultOrder whenever a requested ordering isn't
// present).
//
// trackGraphs additionally materializes the graph-prefixed twin of
// every selected plain ordering (DefaultOrder included, so GSPO is
// always present when trackGraphs is set), the same pairing
// sord_new applies per bit of its indices bitmask when its own graphs
// flag is set.
func NewModel(world *rdf.World, s storage.Storage, trackGraphs bool, orderings ...Ordering) *Model {
	m := &Model{world: world, storage: s}
	m.materialized[DefaultOrder] = true
	for _, o := range orderings {
		m.materialized[o.plain()] = true
	}
	if trackGraphs {
		for ord := Ordering(0); ord < numOrderings; ord++ {
			if m.materialized[ord] && !ord.IsGraphOrdering() {
				m.materialized[ord.graphVariant()] = true
			}
		}
	}
	return m
}

// Close releases the Model's underlying storage. The World is left
// untouched, since it may be shared with other Models.
func (m *Model) Close() error {
	return m.storage.Close()
}

// NumQuads reports how many quads the Model currently holds.
func (m *Model) NumQuads() int {
	return m.numQuads
}

// NumNodes reports how many distinct terms are interned in the Model's
// World.
func (m *Model) NumNodes() int {
	return m.world.NumNodes()
}

func (m *Model) hasIndex(o Ordering) bool {
	return m.materialized[o]
}

// Add inserts q into every materialized ordering and retains its
// components in the World. It reports false, with no error and no
// change to the Model, if q was already present: quads form a set.
func (m *Model) Add(q Quad) (bool, error) {
	txn, err := m.storage.Begin(true)
	if err != nil {
		return false, err
	}

	dupKey := encodeTuple(permute(q.tuple(), DefaultOrder))
	if _, err := txn.Get(orderingTable(DefaultOrder), dupKey); err == nil {
		txn.Rollback()
		return false, nil
	} else if err != storage.ErrNotFound {
		txn.Rollback()
		return false, err
	}

	for ord := Ordering(0); ord < numOrderings; ord++ {
		if !m.materialized[ord] {
			continue
		}
		key := encodeTuple(permute(q.tuple(), ord))
		if err := txn.Set(orderingTable(ord), key, []byte{}); err != nil {
			txn.Rollback()
			return false, err
		}
	}
	if err := txn.Commit(); err != nil {
		return false, err
	}

	for _, n := range q.tuple() {
		m.world.Retain(n)
	}
	m.numQuads++
	return true, nil
}

// Remove deletes q from every materialized ordering and releases its
// components. It reports false, with no error, if q was not present.
func (m *Model) Remove(q Quad) (bool, error) {
	txn, err := m.storage.Begin(true)
	if err != nil {
		return false, err
	}

	dupKey := encodeTuple(permute(q.tuple(), DefaultOrder))
	if _, err := txn.Get(orderingTable(DefaultOrder), dupKey); err != nil {
		txn.Rollback()
		if err == storage.ErrNotFound {
			return false, nil
		}
		return false, err
	}

	for ord := Ordering(0); ord < numOrderings; ord++ {
		if !m.materialized[ord] {
			continue
		}
		key := encodeTuple(permute(q.tuple(), ord))
		if err := txn.Delete(orderingTable(ord), key); err != nil {
			txn.Rollback()
			return false, err
		}
	}
	if err := txn.Commit(); err != nil {
		return false, err
	}

	for _, n := range q.tuple() {
		m.world.Release(n)
	}
	m.numQuads--
	return true, nil
}

// Find opens an Iterator over every quad matching p, using whichever
// materialized ordering bestIndex judges cheapest for p's bound
// components.
func (m *Model) Find(p Pattern) (*Iterator, error) {
	order, mode, prefix := bestIndex(m.hasIndex, p)
	skipGraphs := p.Graph == nil && order.IsGraphOrdering()

	txn, err := m.storage.Begin(false)
	if err != nil {
		return nil, err
	}
	return newIterator(m, txn, order, mode, prefix, p, skipGraphs)
}

// Ask reports whether any quad matches p.
func (m *Model) Ask(p Pattern) (bool, error) {
	it, err := m.Find(p)
	if err != nil {
		return false, err
	}
	defer it.Close()
	return it.Next(), nil
}

// Contains reports whether any quad matches p: a wildcard-capable
// convenience over Find, identical to Ask under a different name.
// Ask takes its (S,P,O,G) bound separately; Contains takes the same
// binding bundled as a Pattern — in this API the two are the same
// call.
func (m *Model) Contains(p Pattern) (bool, error) {
	return m.Ask(p)
}

// Count reports how many quads match p. The all-wildcard pattern is
// answered directly from the Model's own counter without scanning.
func (m *Model) Count(p Pattern) (int, error) {
	if p == (Pattern{}) {
		return m.numQuads, nil
	}
	it, err := m.Find(p)
	if err != nil {
		return 0, err
	}
	defer it.Close()

	n := 0
	for it.Next() {
		n++
	}
	return n, nil
}

// Get returns the first quad matching p, if any.
func (m *Model) Get(p Pattern) (Quad, bool, error) {
	it, err := m.Find(p)
	if err != nil {
		return Quad{}, false, err
	}
	defer it.Close()

	if it.Next() {
		return it.Quad(), true, nil
	}
	return Quad{}, false, nil
}

// Erase removes the quad it is currently positioned on and repositions
// it so a subsequent Next call continues from there, exactly as if the
// removed quad had never been visited. It is the only supported way to
// mutate a Model while one of its iterators is still open.
func (m *Model) Erase(it *Iterator) (bool, error) {
	if it.closed {
		return false, ErrIteratorClosed
	}
	if it.curKey == nil {
		return false, ErrNoCurrentQuad
	}

	removed, err := m.Remove(it.cur)
	if err != nil || !removed {
		return removed, err
	}

	resumeKey := it.curKey
	it.raw.Close()
	it.txn.Rollback()

	txn, err := m.storage.Begin(false)
	if err != nil {
		it.closed = true
		return true, err
	}
	raw, err := txn.Scan(orderingTable(it.order), resumeKey)
	if err != nil {
		txn.Rollback()
		it.closed = true
		return true, err
	}
	it.txn = txn
	it.raw = raw
	return true, nil
}

// RemoveGraph removes every quad whose graph is g, returning how many
// were removed. The reference implementation never finished the
// equivalent operation; this one is grounded on its own best_index/find
// machinery instead of a half-built direct index walk.
func (m *Model) RemoveGraph(g *rdf.Node) (int, error) {
	it, err := m.Find(Pattern{Graph: g})
	if err != nil {
		return 0, err
	}
	quads := make([]Quad, 0)
	for it.Next() {
		quads = append(quads, it.Quad())
	}
	if err := it.Close(); err != nil {
		return 0, err
	}

	removed := 0
	for _, q := range quads {
		ok, err := m.Remove(q)
		if err != nil {
			return removed, err
		}
		if ok {
			removed++
		}
	}
	return removed, nil
}

// NodeIsInlineObject reports whether n appears as the object of exactly
// one statement and nowhere as a subject, the condition a writer uses to
// decide whether a blank node object can be abbreviated inline rather
// than given its own subject clause.
func (m *Model) NodeIsInlineObject(n *rdf.Node) (bool, error) {
	asObject, err := m.Count(Pattern{Object: n})
	if err != nil {
		return false, err
	}
	if asObject != 1 {
		return false, nil
	}
	asSubject, err := m.Count(Pattern{Subject: n})
	if err != nil {
		return false, err
	}
	return asSubject == 0, nil
}
