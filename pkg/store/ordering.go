package store

// Ordering names one of the twelve ways a Model can sort its quads.
// The first six are plain (S,P,O) permutations; the last six are their
// graph-prefixed counterparts, each one storage position to the right
// of its plain twin (GSPO sorts like SPO but with the graph as the
// leading component, and so on).
type Ordering uint8

const (
	SPO Ordering = iota
	SOP
	OPS
	OSP
	PSO
	POS
	GSPO
	GSOP
	GOPS
	GOSP
	GPSO
	GPOS

	numOrderings
)

// DefaultOrder is the one ordering every Model always materializes,
// regardless of which others are requested; it backs full scans and
// duplicate detection on Add.
const DefaultOrder = SPO

// DefaultGraphOrder is DefaultOrder's graph-prefixed counterpart.
const DefaultGraphOrder = GSPO

var orderNames = [numOrderings]string{
	SPO: "SPO", SOP: "SOP", OPS: "OPS", OSP: "OSP", PSO: "PSO", POS: "POS",
	GSPO: "GSPO", GSOP: "GSOP", GOPS: "GOPS", GOSP: "GOSP", GPSO: "GPSO", GPOS: "GPOS",
}

func (o Ordering) String() string {
	if int(o) < len(orderNames) {
		return orderNames[o]
	}
	return "UNKNOWN"
}

// IsGraphOrdering reports whether o places the graph component first.
func (o Ordering) IsGraphOrdering() bool {
	return o >= GSPO
}

// plain returns o's non-graph counterpart, or o itself if it already is one.
func (o Ordering) plain() Ordering {
	if o.IsGraphOrdering() {
		return o - GSPO
	}
	return o
}

// graphVariant returns o's graph-prefixed counterpart, or o itself if it
// already is one.
func (o Ordering) graphVariant() Ordering {
	if o.IsGraphOrdering() {
		return o
	}
	return o + GSPO
}

// orderings[ordering][storageSlot] gives the logical component (0=S,
// 1=P, 2=O, 3=G) stored at storageSlot under that ordering. This is the
// same permutation table the reference implementation's orderings[]
// array encodes.
var orderings = [numOrderings][4]int{
	SPO:  {0, 1, 2, 3},
	SOP:  {0, 2, 1, 3},
	OPS:  {2, 1, 0, 3},
	OSP:  {2, 0, 1, 3},
	PSO:  {1, 0, 2, 3},
	POS:  {1, 2, 0, 3},
	GSPO: {3, 0, 1, 2},
	GSOP: {3, 0, 2, 1},
	GOPS: {3, 2, 1, 0},
	GOSP: {3, 2, 0, 1},
	GPSO: {3, 1, 0, 2},
	GPOS: {3, 1, 2, 0},
}
