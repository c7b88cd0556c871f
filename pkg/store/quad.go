package store

import "github.com/aleksaelezovic/quadstore/pkg/rdf"

// Quad is a single (subject, predicate, object, graph) statement. Graph
// is nil for a statement in the default graph; this mirrors the
// reference implementation, where the default graph is simply the
// absence of a graph node rather than a distinct sentinel term.
type Quad struct {
	Subject   *rdf.Node
	Predicate *rdf.Node
	Object    *rdf.Node
	Graph     *rdf.Node
}

// tuple returns q's four components in logical (S,P,O,G) order.
func (q Quad) tuple() [4]*rdf.Node {
	return [4]*rdf.Node{q.Subject, q.Predicate, q.Object, q.Graph}
}

func quadFromTuple(t [4]*rdf.Node) Quad {
	return Quad{Subject: t[0], Predicate: t[1], Object: t[2], Graph: t[3]}
}

// permute reorders a logical (S,P,O,G) tuple into storage order for ord.
func permute(t [4]*rdf.Node, ord Ordering) [4]*rdf.Node {
	perm := orderings[ord]
	var out [4]*rdf.Node
	for slot, logical := range perm {
		out[slot] = t[logical]
	}
	return out
}

// unpermute reverses permute: given a tuple read back from storage in
// ord's order, it returns the logical (S,P,O,G) tuple.
func unpermute(stored [4]*rdf.Node, ord Ordering) [4]*rdf.Node {
	perm := orderings[ord]
	var out [4]*rdf.Node
	for slot, logical := range perm {
		out[logical] = stored[slot]
	}
	return out
}

// encodeTuple concatenates each node's 17-byte index key, in the given
// order, into a single storage key.
func encodeTuple(t [4]*rdf.Node) []byte {
	buf := make([]byte, 0, 4*17)
	for _, n := range t {
		k := rdf.Key(n)
		buf = append(buf, k[:]...)
	}
	return buf
}

// decodeTuple reverses encodeTuple, recovering each component via the
// World's reverse key index.
func decodeTuple(w *rdf.World, raw []byte) [4]*rdf.Node {
	var out [4]*rdf.Node
	for i := range out {
		var key [17]byte
		copy(key[:], raw[i*17:(i+1)*17])
		out[i] = w.Lookup(key)
	}
	return out
}

// Pattern selects quads by binding zero or more components; a nil field
// is a wildcard. An all-nil Pattern matches every quad in the Model.
type Pattern struct {
	Subject   *rdf.Node
	Predicate *rdf.Node
	Object    *rdf.Node
	Graph     *rdf.Node
}

func (p Pattern) tuple() [4]*rdf.Node {
	return [4]*rdf.Node{p.Subject, p.Predicate, p.Object, p.Graph}
}

// Match reports whether q satisfies p: every bound field of p must equal
// (by interned identity) the corresponding field of q; wildcard fields
// always match.
func Match(p Pattern, q Quad) bool {
	pt, qt := p.tuple(), q.tuple()
	for i := range pt {
		if pt[i] != nil && pt[i] != qt[i] {
			return false
		}
	}
	return true
}
